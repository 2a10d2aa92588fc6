package toolchain

import (
	"context"
	"log/slog"
)

type Command struct {
	Name string
	Args []string
}

// Tool describes an external executable and how to obtain it when missing.
type Tool struct {
	Name    string
	Probe   Command
	Install Command

	// ProbeByRun decides availability from the probe's exit status instead
	// of a PATH lookup. Needed for lintr, which is an R library rather
	// than a binary.
	ProbeByRun bool
}

func Pylint() Tool {
	return Tool{
		Name:    "pylint",
		Probe:   Command{Name: "pylint", Args: []string{"--version"}},
		Install: Command{Name: "python3", Args: []string{"-m", "pip", "install", "pylint"}},
	}
}

func Black() Tool {
	return Tool{
		Name:    "black",
		Probe:   Command{Name: "black", Args: []string{"--version"}},
		Install: Command{Name: "python3", Args: []string{"-m", "pip", "install", "black"}},
	}
}

func Lintr() Tool {
	return Tool{
		Name:       "lintr",
		Probe:      Command{Name: "Rscript", Args: []string{"-e", "library(lintr)"}},
		Install:    Command{Name: "Rscript", Args: []string{"-e", `install.packages("lintr")`}},
		ProbeByRun: true,
	}
}

// Manager checks tool availability and triggers installs for missing tools.
type Manager struct {
	runner Runner
	logger *slog.Logger
}

func NewManager(runner Runner, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		runner: runner,
		logger: logger,
	}
}

// Ensure probes for the tool and, when it is missing, runs its install
// command once. The install is not verified; a failed install surfaces
// later when the tool itself is invoked.
func (m *Manager) Ensure(ctx context.Context, tool Tool) {
	if m.available(ctx, tool) {
		return
	}

	m.logger.Info("tool not found, installing", "tool", tool.Name)

	result, err := m.runner.Run(ctx, tool.Install.Name, tool.Install.Args...)
	if err != nil {
		m.logger.Warn("tool install failed", "tool", tool.Name, "error", err)
		return
	}
	if result.ExitCode != 0 {
		m.logger.Warn("tool install exited non-zero", "tool", tool.Name, "exit_code", result.ExitCode, "stderr", result.Stderr)
	}
}

func (m *Manager) available(ctx context.Context, tool Tool) bool {
	if tool.ProbeByRun {
		result, err := m.runner.Run(ctx, tool.Probe.Name, tool.Probe.Args...)
		return err == nil && result.ExitCode == 0
	}

	_, err := m.runner.LookPath(tool.Probe.Name)
	return err == nil
}
