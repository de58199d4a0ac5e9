package cli

import (
	"context"
	"log/slog"

	"github.com/tracedeck/recship/internal/build"
	"github.com/tracedeck/recship/internal/matrix"
	"github.com/tracedeck/recship/internal/platform"
	"github.com/tracedeck/recship/internal/runner"
)

// Represents the 'recship matrix' command.
type MatrixCmd struct {
	Release      bool   `help:"Build with optimizations and release features." xor:"mode"`
	Debug        bool   `help:"Build without optimizations." xor:"mode"`
	AllowPartial bool   `help:"Collect whatever succeeded instead of aborting on a platform failure."`
	Staging      string `help:"Override the artifact staging directory." placeholder:"DIR"`
}

// Executes the matrix command.
//
// Runs a build per supported profile in parallel, stages each binary,
// and collects the staged artifacts into their package directories.
func (c *MatrixCmd) Run(ctx context.Context) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	mode, err := buildMode(c.Release, c.Debug)
	if err != nil {
		return err
	}

	staging := cfg.StagingDir
	if c.Staging != "" {
		staging = c.Staging
	}

	orc := build.New(runner.Local{})
	builder := matrix.BuildFunc(func(ctx context.Context, p platform.Profile) (string, error) {
		err := orc.Run(ctx, build.Options{
			Profile:      p,
			Mode:         mode,
			Root:         ".",
			PackagesRoot: cfg.PackagesRoot,
			Crate:        cfg.Crate,
		})
		if err != nil {
			return "", err
		}
		return build.ArtifactPath(".", mode, p), nil
	})

	res, err := matrix.Run(ctx, builder, matrix.Options{
		StagingDir:   staging,
		PackagesRoot: cfg.PackagesRoot,
		RequireAll:   cfg.RequireAllPlatforms && !c.AllowPartial,
	})
	if err != nil {
		return err
	}

	slog.Info("matrix complete", "built", len(res.Built), "collected", len(res.Collected))
	return nil
}
