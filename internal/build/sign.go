package build

import (
	"context"
	"fmt"
	"strings"
)

// Ad-hoc signs the binary at path in place.
//
// Only meaningful for macOS artifacts; the orchestrator gates the call on
// the profile's OS. Re-signing an already-signed binary succeeds because
// --force replaces any existing signature. An unsigned macOS binary is
// unshippable, so any failure is fatal.
func (o *Orchestrator) sign(ctx context.Context, path string) error {
	res, err := o.runner.Run(ctx, "", nil, "codesign", "--force", "--sign", "-", path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("%w: codesign exited with code %d: %s", ErrSigningFailed, res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	return nil
}
