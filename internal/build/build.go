package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tracedeck/recship/internal/paths"
	"github.com/tracedeck/recship/internal/platform"
	"github.com/tracedeck/recship/internal/runner"
)

// Build mode for a compiler invocation.
type Mode string

const (
	Release Mode = "release"
	Debug   Mode = "debug"
)

// Controls a single-platform build run.
type Options struct {
	Profile      platform.Profile // Target profile, passed explicitly to allow cross builds.
	Mode         Mode             // Release or Debug; anything else fails fast.
	Root         string           // Cargo workspace root.
	PackagesRoot string           // Directory containing the per-platform package directories.
	CacheDir     string           // Shared cache directory. Defaults to paths.CacheBin().
	Crate        string           // Cargo package selector. Defaults to "recorder-agent".
}

// Runs single-platform builds against external tools.
type Orchestrator struct {
	runner runner.Runner
}

// Creates a new [Orchestrator] using the given runner for tool invocations.
func New(r runner.Runner) *Orchestrator {
	return &Orchestrator{runner: r}
}

// Executes a build end-to-end for one platform profile.
//
// On success the binary exists, byte-identical to the compiler's output,
// in both the profile's package directory and the shared cache directory,
// and is ad-hoc signed in the package directory on macOS. Any failure
// after the best-effort termination step aborts the run.
func (o *Orchestrator) Run(ctx context.Context, opts Options) error {
	if opts.Mode != Release && opts.Mode != Debug {
		return fmt.Errorf("%w: %q", ErrInvalidMode, opts.Mode)
	}
	if opts.CacheDir == "" {
		opts.CacheDir = paths.CacheBin()
	}
	if opts.Crate == "" {
		opts.Crate = defaultCrate
	}

	slog.Info("building",
		"target", opts.Profile.Triple,
		"mode", opts.Mode,
		"package", opts.Profile.PackageDir,
	)

	outcome := o.terminate(ctx, opts.Profile)
	slog.Debug("terminated running instance", "binary", opts.Profile.BinaryName, "outcome", outcome)

	if err := o.compile(ctx, opts); err != nil {
		return err
	}

	src := ArtifactPath(opts.Root, opts.Mode, opts.Profile)
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("%w: expected %s after successful compile", ErrArtifactNotFound, src)
	}

	pkgCopy := filepath.Join(opts.PackagesRoot, opts.Profile.PackageDir, opts.Profile.BinaryName)
	if err := copyVerified(src, pkgCopy); err != nil {
		return err
	}

	cacheCopy := filepath.Join(opts.CacheDir, opts.Profile.BinaryName)
	if err := copyVerified(src, cacheCopy); err != nil {
		return err
	}
	slog.Debug("copied artifact", "package", pkgCopy, "cache", cacheCopy)

	if opts.Profile.OS == platform.MacOS {
		if err := o.sign(ctx, pkgCopy); err != nil {
			return err
		}
	}

	return nil
}
