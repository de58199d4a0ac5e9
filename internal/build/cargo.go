package build

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tracedeck/recship/internal/platform"
)

// Default cargo package selector for the agent binary.
const defaultCrate = "recorder-agent"

// Feature enabled only for release builds.
const releaseFeature = "telemetry"

// Invokes cargo for the target profile and mode.
//
// Release builds additionally enable the telemetry feature. A non-zero
// cargo exit aborts the run with [ErrBuildFailed].
func (o *Orchestrator) compile(ctx context.Context, opts Options) error {
	args := []string{"build", "--package", opts.Crate, "--target", opts.Profile.Triple}
	if opts.Mode == Release {
		args = append(args, "--release", "--features", releaseFeature)
	}

	res, err := o.runner.Run(ctx, opts.Root, nil, "cargo", args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("%w: cargo exited with code %d: %s", ErrBuildFailed, res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	return nil
}

// Returns the path where cargo writes the binary for a mode and profile.
//
// Cargo places target-qualified output under target/<triple>/<mode>/.
// The path is derived, never searched, so a convention drift surfaces as
// [ErrArtifactNotFound] rather than a stale binary.
func ArtifactPath(root string, mode Mode, p platform.Profile) string {
	return filepath.Join(root, "target", p.Triple, string(mode), p.BinaryName)
}
