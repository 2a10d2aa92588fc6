package format

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/codetidy/codetidy/internal/toolchain"
)

// Formatter runs external code formatters in place.
type Formatter struct {
	runner toolchain.Runner
	tools  *toolchain.Manager
	logger *slog.Logger
}

func NewFormatter(runner toolchain.Runner, tools *toolchain.Manager, logger *slog.Logger) *Formatter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Formatter{
		runner: runner,
		tools:  tools,
		logger: logger,
	}
}

// Black formats a Python file in place and returns the file's content after
// the run. When black fails the file is left untouched and the pre-existing
// content is returned.
func (f *Formatter) Black(ctx context.Context, path string) (string, error) {
	f.tools.Ensure(ctx, toolchain.Black())

	result, err := f.runner.Run(ctx, "black", path)
	if err != nil {
		return "", fmt.Errorf("failed to run black: %w", err)
	}
	if result.ExitCode != 0 {
		f.logger.Warn("black exited non-zero", "path", path, "exit_code", result.ExitCode, "stderr", result.Stderr)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read formatted file: %w", err)
	}

	return string(content), nil
}
