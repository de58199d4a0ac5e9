// Package matrix coordinates builds across every supported platform.
//
// Phase 1 runs one build per profile in parallel, each staging its binary
// as a compressed archive. Phase 2 starts only after every phase 1 job
// has completed, successfully or not, and rehydrates the staged archives
// into their package directories. Whether a single platform failure
// aborts the run is controlled by RequireAll; the conservative default
// is to abort, since a release missing a platform is usually a mistake.
package matrix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tracedeck/recship/internal/artifact"
	"github.com/tracedeck/recship/internal/platform"
)

var ErrIncomplete = errors.New("matrix incomplete")

// Produces one binary for a profile and returns its path.
type Builder interface {
	Build(ctx context.Context, p platform.Profile) (string, error)
}

// Adapter that allows a plain function to be used as a [Builder].
type BuildFunc func(ctx context.Context, p platform.Profile) (string, error)

func (f BuildFunc) Build(ctx context.Context, p platform.Profile) (string, error) {
	return f(ctx, p)
}

// Controls a matrix run.
type Options struct {
	Profiles     []platform.Profile // Profiles to build. Defaults to the supported set.
	StagingDir   string             // Directory for staged artifact archives.
	PackagesRoot string             // Directory containing the package directories.
	RequireAll   bool               // Abort before collection unless every build succeeded.
}

// Result of a matrix run.
type Result struct {
	Built     []platform.Profile // Profiles whose build and staging succeeded.
	Collected []platform.Profile // Profiles whose binaries landed in package directories.
}

// Runs the build matrix: parallel per-profile builds, a completion
// barrier, then artifact collection.
//
// Every build job runs to completion before collection is considered;
// a failed job never cancels its siblings. With RequireAll set, any
// failure aborts after the barrier with [ErrIncomplete]. Otherwise the
// archives that were staged are collected and the rest are skipped.
func Run(ctx context.Context, b Builder, opts Options) (*Result, error) {
	if len(opts.Profiles) == 0 {
		opts.Profiles = platform.Supported()
	}

	slog.Info("running build matrix", "platforms", len(opts.Profiles), "require_all", opts.RequireAll)

	failures := buildAll(ctx, b, opts)

	var failed []string
	var built []platform.Profile
	for i, p := range opts.Profiles {
		if failures[i] != nil {
			slog.Error("platform build failed", "package", p.PackageDir, "error", failures[i])
			failed = append(failed, p.PackageDir)
			continue
		}
		built = append(built, p)
	}

	if opts.RequireAll && len(failed) > 0 {
		return &Result{Built: built}, fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(failed, ", "))
	}

	collected, err := artifact.Collect(opts.Profiles, opts.StagingDir, opts.PackagesRoot)
	if err != nil {
		return &Result{Built: built, Collected: collected}, err
	}

	return &Result{Built: built, Collected: collected}, nil
}

// Runs one build-and-stage job per profile in parallel and waits for all
// of them. Returns per-profile errors indexed like opts.Profiles.
func buildAll(ctx context.Context, b Builder, opts Options) []error {
	failures := make([]error, len(opts.Profiles))

	var g errgroup.Group
	for i, p := range opts.Profiles {
		i, p := i, p
		g.Go(func() error {
			failures[i] = buildOne(ctx, b, p, opts.StagingDir)
			return nil
		})
	}

	// Errors are reported per profile; the group itself never fails.
	g.Wait()

	return failures
}

// Builds one profile and stages its binary archive.
func buildOne(ctx context.Context, b Builder, p platform.Profile, stagingDir string) error {
	binary, err := b.Build(ctx, p)
	if err != nil {
		return err
	}
	return artifact.Stage(p, binary, stagingDir)
}
