package build

import (
	"context"
	goruntime "runtime"
	"strings"

	"github.com/tracedeck/recship/internal/platform"
	"github.com/tracedeck/recship/internal/runner"
)

// Outcome of a best-effort termination attempt.
type terminateOutcome int

const (
	terminated terminateOutcome = iota
	notRunning
	accessDenied
)

func (o terminateOutcome) String() string {
	switch o {
	case terminated:
		return "terminated"
	case notRunning:
		return "not running"
	case accessDenied:
		return "access denied"
	default:
		return "unknown"
	}
}

// Kills any running instance of the profile's binary on the host.
//
// Windows locks running executables, so a stale instance would make the
// package-directory copy fail with "file in use". The attempt is best
// effort: every outcome, including a missing kill tool, is reported but
// never escalated to a failure.
func (o *Orchestrator) terminate(ctx context.Context, p platform.Profile) terminateOutcome {
	name, args := killCommand(p.BinaryName)

	res, err := o.runner.Run(ctx, "", nil, name, args...)
	if err != nil {
		return notRunning
	}

	return classifyTermination(res)
}

// Returns the host-appropriate kill command for a binary name.
func killCommand(binary string) (string, []string) {
	if goruntime.GOOS == "windows" {
		return "taskkill", []string{"/IM", binary, "/F"}
	}
	return "pkill", []string{"-x", strings.TrimSuffix(binary, ".exe")}
}

// Classifies a kill tool result into a [terminateOutcome].
//
// Exit 0 means a process was found and killed. Both taskkill and pkill
// use a non-zero exit for "no such process"; permission problems are
// recognized from stderr.
func classifyTermination(res *runner.Result) terminateOutcome {
	if res.ExitCode == 0 {
		return terminated
	}

	stderr := strings.ToLower(res.Stderr)
	if strings.Contains(stderr, "denied") || strings.Contains(stderr, "not permitted") {
		return accessDenied
	}

	return notRunning
}
