package cli

import (
	"context"

	"github.com/tracedeck/recship/internal/build"
	"github.com/tracedeck/recship/internal/runner"
)

// Represents the 'recship build' command.
type BuildCmd struct {
	Release bool   `help:"Build with optimizations and release features." xor:"mode"`
	Debug   bool   `help:"Build without optimizations." xor:"mode"`
	Target  string `short:"t" help:"Target platform as os/arch. Defaults to the host." placeholder:"OS/ARCH"`
}

// Executes the build command.
//
// Builds the agent for the resolved profile and places the binary into
// the platform's package directory and the shared cache.
func (c *BuildCmd) Run(ctx context.Context) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	mode, err := buildMode(c.Release, c.Debug)
	if err != nil {
		return err
	}

	profile, err := resolveTarget(c.Target)
	if err != nil {
		return err
	}

	return build.New(runner.Local{}).Run(ctx, build.Options{
		Profile:      profile,
		Mode:         mode,
		Root:         ".",
		PackagesRoot: cfg.PackagesRoot,
		Crate:        cfg.Crate,
	})
}
