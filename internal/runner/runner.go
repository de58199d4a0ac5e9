package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Output of an external tool invocation.
type Result struct {
	ExitCode int    // Exit code of the process.
	Stdout   string // Captured standard output.
	Stderr   string // Captured standard error.
}

// Runs external tools.
//
// dir sets the working directory when non-empty. env entries of the form
// "key=value" are merged over the inherited environment.
type Runner interface {
	Run(ctx context.Context, dir string, env []string, name string, args ...string) (*Result, error)
}

// Adapter that allows a plain function to be used as a [Runner].
type Func func(ctx context.Context, dir string, env []string, name string, args ...string) (*Result, error)

func (f Func) Run(ctx context.Context, dir string, env []string, name string, args ...string) (*Result, error) {
	return f(ctx, dir, env, name, args...)
}

// Executes tools on the local machine.
type Local struct{}

// Runs a command and captures its output.
//
// The process exit code is returned in the result; only failures to start
// or to wait for the process are reported as errors.
func (Local) Run(ctx context.Context, dir string, env []string, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), env)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
	}

	return &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// Merges override env vars on top of a base env slice.
//
// Later entries win. Malformed entries without an equals sign are dropped.
func mergeEnv(base, overrides []string) []string {
	merged := make(map[string]string, len(base)+len(overrides))
	order := make([]string, 0, len(base)+len(overrides))

	for _, entry := range append(append([]string{}, base...), overrides...) {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := merged[k]; !seen {
			order = append(order, k)
		}
		merged[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+merged[k])
	}
	return result
}
