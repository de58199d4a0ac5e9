package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/tracedeck/recship/internal/platform"
	"github.com/tracedeck/recship/internal/runner"
)

// Controls a publish run.
type Options struct {
	Profiles     []platform.Profile // Platform packages to publish. Defaults to the supported set.
	PackagesRoot string             // Directory containing the package directories.
	UmbrellaDir  string             // Umbrella package directory name under PackagesRoot.
	Registry     string             // Optional registry URL override.
}

// Result of a publish run.
type Result struct {
	Published []string // Package names published in this run.
	Skipped   []string // Package names skipped (no manifest, no binary, or already published).
	Failed    []string // Package names whose publish was rejected.
}

// Publishes packages to the registry through the npm CLI.
type Publisher struct {
	runner runner.Runner
}

// Creates a new [Publisher] using the given runner for npm invocations.
func New(r runner.Runner) *Publisher {
	return &Publisher{runner: r}
}

// Publishes every platform package, then the umbrella package.
//
// Platform packages are failure-isolated: a conflict means the version is
// already on the registry and is skipped, and any other rejection is
// recorded without stopping the remaining packages. The umbrella publish
// runs last and its error is returned, as the pipeline's failure signal.
func (p *Publisher) Run(ctx context.Context, opts Options) (*Result, error) {
	if len(opts.Profiles) == 0 {
		opts.Profiles = platform.Supported()
	}

	res := &Result{}

	for _, profile := range opts.Profiles {
		p.publishPlatform(ctx, opts, profile, res)
	}

	if err := p.publishUmbrella(ctx, opts, res); err != nil {
		return res, err
	}

	slog.Info("publish complete",
		"published", len(res.Published),
		"skipped", len(res.Skipped),
		"failed", len(res.Failed),
	)

	return res, nil
}

// Publishes one platform package, recording the outcome in res.
func (p *Publisher) publishPlatform(ctx context.Context, opts Options, profile platform.Profile, res *Result) {
	dir := filepath.Join(opts.PackagesRoot, profile.PackageDir)

	manifest, err := ReadManifest(dir)
	if err != nil {
		slog.Error("unreadable manifest", "package", profile.PackageDir, "error", err)
		res.Failed = append(res.Failed, profile.PackageName)
		return
	}
	if manifest == nil {
		slog.Warn("no manifest, skipping package", "package", profile.PackageDir)
		res.Skipped = append(res.Skipped, profile.PackageName)
		return
	}

	switch err := p.publishDir(ctx, opts, dir); {
	case err == nil:
		slog.Info("published", "package", manifest.Name, "version", manifest.Version)
		res.Published = append(res.Published, manifest.Name)
	case errors.Is(err, ErrPublishConflict):
		slog.Info("version already published, skipping", "package", manifest.Name, "version", manifest.Version)
		res.Skipped = append(res.Skipped, manifest.Name)
	default:
		slog.Error("publish rejected", "package", manifest.Name, "error", err)
		res.Failed = append(res.Failed, manifest.Name)
	}
}

// Publishes the umbrella package. Unlike platform packages, a failure
// here is returned to the caller.
func (p *Publisher) publishUmbrella(ctx context.Context, opts Options, res *Result) error {
	dir := filepath.Join(opts.PackagesRoot, opts.UmbrellaDir)

	manifest, err := ReadManifest(dir)
	if err != nil {
		return err
	}
	if manifest == nil {
		return fmt.Errorf("%w: umbrella package has no manifest in %s", ErrManifest, dir)
	}

	slog.Info("publishing umbrella package",
		"package", manifest.Name,
		"platforms", len(manifest.OptionalDependencies),
	)

	if err := p.publishDir(ctx, opts, dir); err != nil {
		if errors.Is(err, ErrPublishConflict) {
			slog.Info("umbrella version already published, skipping", "package", manifest.Name)
			res.Skipped = append(res.Skipped, manifest.Name)
			return nil
		}
		return err
	}

	res.Published = append(res.Published, manifest.Name)
	return nil
}

// Issues one npm publish call scoped to a single package directory.
func (p *Publisher) publishDir(ctx context.Context, opts Options, dir string) error {
	args := []string{"publish", "--access", "public"}
	if opts.Registry != "" {
		args = append(args, "--registry", opts.Registry)
	}

	res, err := p.runner.Run(ctx, dir, nil, "npm", args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}
	if res.ExitCode == 0 {
		return nil
	}

	if isConflict(res.Stderr) {
		return fmt.Errorf("%w: %s", ErrPublishConflict, dir)
	}
	return fmt.Errorf("%w: npm exited with code %d: %s", ErrPublishFailed, res.ExitCode, strings.TrimSpace(res.Stderr))
}

// Reports whether npm stderr describes a "version already exists"
// rejection rather than a real failure.
func isConflict(stderr string) bool {
	return strings.Contains(stderr, "EPUBLISHCONFLICT") ||
		strings.Contains(stderr, "cannot publish over")
}
