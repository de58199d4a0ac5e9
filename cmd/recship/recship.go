package main

import (
	"log/slog"
	"os"

	"github.com/tracedeck/recship/internal"
	"github.com/tracedeck/recship/internal/cli"
)

// The entry point for the recship tool.
//
// Initializes logging, displays startup information, and executes the root
// command. If any error occurs during execution, it exits with a non-zero
// code after reporting the failing step.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("recship is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Creates a logger seeded from build-time linker flags.
//
// The level is reconfigured after flag parsing via cli.Execute.
func logger() *slog.Logger {
	if internal.IsDebug() {
		internal.LogLevel().Set(slog.LevelDebug)
	} else if internal.IsQuiet() {
		internal.LogLevel().Set(slog.LevelWarn)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: internal.LogLevel(),
	})
	return slog.New(handler).WithGroup(internal.Name)
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
