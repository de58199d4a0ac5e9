package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/tracedeck/recship/internal"
	"github.com/tracedeck/recship/internal/build"
	"github.com/tracedeck/recship/internal/platform"
	"github.com/tracedeck/recship/internal/settings"
)

// Represents the root command for the recship tool.
var RootCmd struct {
	Quiet   bool   `short:"q" help:"Suppress informational output."`
	Verbose bool   `short:"v" help:"Enable debug output."`
	Config  string `short:"c" help:"Path to the configuration file." placeholder:"PATH" default:"recship.yaml"`

	Build   BuildCmd   `cmd:"" help:"Build the agent for one platform and place the binary."`
	Matrix  MatrixCmd  `cmd:"" help:"Build every supported platform and collect the artifacts."`
	Collect CollectCmd `cmd:"" help:"Move staged artifacts into their package directories."`
	Publish PublishCmd `cmd:"" help:"Publish platform packages and the umbrella package."`
	Resolve ResolveCmd `cmd:"" help:"Print the build profile for a platform."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Builds, packages, and publishes the recorder agent.\n\nEach command covers one stage of the release pipeline."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Adjusts the global log level based on CLI flags and build-time defaults.
func configureLogger() {
	switch {
	case RootCmd.Verbose || internal.IsDebug():
		internal.LogLevel().Set(slog.LevelDebug)
	case RootCmd.Quiet || internal.IsQuiet():
		internal.LogLevel().Set(slog.LevelWarn)
	default:
		internal.LogLevel().Set(slog.LevelInfo)
	}
}

// Loads the configuration file named by the --config flag.
func loadSettings() (settings.Settings, error) {
	return settings.Load(RootCmd.Config)
}

// Maps the --release/--debug flag pair to a build mode.
//
// Exactly one of the two must be set; this is validated before any build
// work starts.
func buildMode(release, debug bool) (build.Mode, error) {
	if release == debug {
		return "", fmt.Errorf("%w: exactly one of --release or --debug is required", build.ErrInvalidMode)
	}
	if release {
		return build.Release, nil
	}
	return build.Debug, nil
}

// Resolves a target profile from an "os/arch" string, or the host
// profile when the string is empty.
func resolveTarget(target string) (platform.Profile, error) {
	if target == "" {
		return platform.Host()
	}

	osName, arch, ok := strings.Cut(target, "/")
	if !ok {
		return platform.Profile{}, fmt.Errorf("invalid target %q: expected os/arch (e.g. linux/x64)", target)
	}
	return platform.Resolve(platform.OS(osName), platform.Arch(arch))
}
