// Package build orchestrates a single-platform build of the recorder agent.
//
// A build run is strictly sequential: terminate any running instance of
// the binary (best effort), invoke cargo for the target profile, locate
// the produced binary at its mode-derived path, copy it into the platform's
// package directory and into the shared cache directory, and ad-hoc sign
// the package copy on macOS. Every step after termination is fatal on
// failure; no partial artifact is considered valid.
//
// Tool invocations go through the runner package so the orchestrator can
// be tested without cargo or codesign installed.
//
// Example usage:
//
//	orc := build.New(runner.Local{})
//	err := orc.Run(ctx, build.Options{
//	    Profile:      profile,
//	    Mode:         build.Release,
//	    Root:         ".",
//	    PackagesRoot: "npm",
//	})
//	if err != nil {
//	    return err
//	}
package build
