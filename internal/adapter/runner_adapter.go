package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// RunResult captures the observable behaviour of one program run.
type RunResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// RunnerAdapter executes Go programs so their output can be compared with
// their source.
type RunnerAdapter interface {
	// RunGo runs `go run <pkg>` inside dir and captures both output streams.
	// A non-zero exit is reported through RunResult.ExitCode, not as an error.
	RunGo(ctx context.Context, dir, pkg string) (RunResult, error)
}

// LocalRunnerAdapter runs programs with the go tool found on PATH.
type LocalRunnerAdapter struct {
	goBin string
}

// NewLocalRunnerAdapter constructs a LocalRunnerAdapter.
func NewLocalRunnerAdapter() *LocalRunnerAdapter {
	return &LocalRunnerAdapter{goBin: "go"}
}

// RunGo runs the package and waits for it to exit.
func (a *LocalRunnerAdapter) RunGo(ctx context.Context, dir, pkg string) (RunResult, error) {
	var stdout, stderr bytes.Buffer

	// #nosec G204 - pkg is a package path inside the user's module
	cmd := exec.CommandContext(ctx, a.goBin, "run", pkg)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := RunResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()

			return result, nil
		}

		return result, fmt.Errorf("go run %s: %w", pkg, err)
	}

	return result, nil
}
