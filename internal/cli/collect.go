package cli

import (
	"context"
	"log/slog"

	"github.com/tracedeck/recship/internal/artifact"
	"github.com/tracedeck/recship/internal/platform"
)

// Represents the 'recship collect' command.
type CollectCmd struct {
	Artifacts string `help:"Directory containing staged artifact archives." placeholder:"DIR"`
}

// Executes the collect command.
//
// Moves every staged artifact into its package directory. Used by the CI
// coordinator job after all build jobs have uploaded their artifacts;
// profiles with no artifact are skipped.
func (c *CollectCmd) Run(ctx context.Context) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	staging := cfg.StagingDir
	if c.Artifacts != "" {
		staging = c.Artifacts
	}

	collected, err := artifact.Collect(platform.Supported(), staging, cfg.PackagesRoot)
	if err != nil {
		return err
	}

	slog.Info("collection complete", "collected", len(collected), "supported", len(platform.Supported()))
	return nil
}
