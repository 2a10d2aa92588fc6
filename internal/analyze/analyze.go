package analyze

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codetidy/codetidy/internal/toolchain"
)

// Analyzer runs external static-analysis tools and returns their raw output.
type Analyzer struct {
	runner toolchain.Runner
	tools  *toolchain.Manager
	logger *slog.Logger
}

func NewAnalyzer(runner toolchain.Runner, tools *toolchain.Manager, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		runner: runner,
		tools:  tools,
		logger: logger,
	}
}

// Pylint lints a Python file and returns pylint's stdout as the report.
// Pylint exits non-zero whenever it finds issues, so a non-zero exit is
// logged but the output is still returned.
func (a *Analyzer) Pylint(ctx context.Context, path string) (string, error) {
	a.tools.Ensure(ctx, toolchain.Pylint())

	result, err := a.runner.Run(ctx, "pylint", path)
	if err != nil {
		return "", fmt.Errorf("failed to run pylint: %w", err)
	}
	if result.ExitCode != 0 {
		a.logger.Warn("pylint exited non-zero", "path", path, "exit_code", result.ExitCode)
	}

	return result.Stdout, nil
}

// Lintr lints an R file through Rscript and returns the lint output.
func (a *Analyzer) Lintr(ctx context.Context, path string) (string, error) {
	a.tools.Ensure(ctx, toolchain.Lintr())

	expr := fmt.Sprintf(`lintr::lint("%s")`, path)
	result, err := a.runner.Run(ctx, "Rscript", "-e", expr)
	if err != nil {
		return "", fmt.Errorf("failed to run lintr: %w", err)
	}
	if result.ExitCode != 0 {
		a.logger.Warn("lintr exited non-zero", "path", path, "exit_code", result.ExitCode)
	}

	return result.Stdout, nil
}
