package cli

import (
	"context"
	"log/slog"

	"github.com/tracedeck/recship/internal/publish"
	"github.com/tracedeck/recship/internal/runner"
)

// Represents the 'recship publish' command.
type PublishCmd struct {
	Registry string `help:"Override the registry URL." placeholder:"URL"`
}

// Executes the publish command.
//
// Publishes each platform package that has a manifest, then the umbrella
// package. Platform rejections are reported but only an umbrella failure
// fails the command.
func (c *PublishCmd) Run(ctx context.Context) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	registry := cfg.Registry
	if c.Registry != "" {
		registry = c.Registry
	}

	res, err := publish.New(runner.Local{}).Run(ctx, publish.Options{
		PackagesRoot: cfg.PackagesRoot,
		UmbrellaDir:  cfg.UmbrellaDir,
		Registry:     registry,
	})
	if err != nil {
		return err
	}

	if len(res.Failed) > 0 {
		slog.Warn("some platform packages were rejected", "failed", res.Failed)
	}
	return nil
}
