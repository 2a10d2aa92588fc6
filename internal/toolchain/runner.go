package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner executes external commands. It exists so callers can stub
// subprocess execution in tests.
type Runner interface {
	LookPath(name string) (string, error)
	Run(ctx context.Context, name string, args ...string) (RunResult, error)
}

type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

type execRunner struct{}

func NewExecRunner() Runner {
	return execRunner{}
}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The tool ran but reported issues; its output is still the report.
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		return result, err
	}

	return result, nil
}
