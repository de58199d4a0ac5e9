package cli

import (
	"context"
	"fmt"
)

// Represents the 'recship resolve' command.
type ResolveCmd struct {
	Target string `arg:"" optional:"" help:"Target platform as os/arch. Defaults to the host."`
}

// Executes the resolve command, printing the profile for a platform.
func (c *ResolveCmd) Run(ctx context.Context) error {
	p, err := resolveTarget(c.Target)
	if err != nil {
		return err
	}

	fmt.Printf("platform:  %s/%s\n", p.OS, p.Arch)
	fmt.Printf("triple:    %s\n", p.Triple)
	fmt.Printf("binary:    %s\n", p.BinaryName)
	fmt.Printf("directory: %s\n", p.PackageDir)
	fmt.Printf("package:   %s\n", p.PackageName)
	return nil
}
