package analyze

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/codetidy/internal/toolchain"
)

type fakeRunner struct {
	present map[string]bool
	stdout  map[string]string
	exit    map[string]int
	runs    []string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.present[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (toolchain.RunResult, error) {
	key := name + " " + strings.Join(args, " ")
	f.runs = append(f.runs, key)
	return toolchain.RunResult{
		Stdout:   f.stdout[key],
		ExitCode: f.exit[key],
	}, nil
}

func newAnalyzer(runner *fakeRunner) *Analyzer {
	return NewAnalyzer(runner, toolchain.NewManager(runner, nil), nil)
}

func TestPylintReturnsReport(t *testing.T) {
	runner := &fakeRunner{
		present: map[string]bool{"pylint": true},
		stdout:  map[string]string{"pylint main.py": "Your code has been rated at 8.00/10\n"},
	}

	report, err := newAnalyzer(runner).Pylint(context.Background(), "main.py")

	require.NoError(t, err)
	assert.Equal(t, "Your code has been rated at 8.00/10\n", report)
}

func TestPylintKeepsPartialOutputOnNonZeroExit(t *testing.T) {
	runner := &fakeRunner{
		present: map[string]bool{"pylint": true},
		stdout:  map[string]string{"pylint bad.py": "bad.py:1:0: E0001: invalid syntax\n"},
		exit:    map[string]int{"pylint bad.py": 2},
	}

	report, err := newAnalyzer(runner).Pylint(context.Background(), "bad.py")

	require.NoError(t, err)
	assert.Contains(t, report, "invalid syntax")
}

func TestPylintInstallsMissingToolBeforeAnalysis(t *testing.T) {
	runner := &fakeRunner{}

	_, err := newAnalyzer(runner).Pylint(context.Background(), "main.py")

	require.NoError(t, err)
	require.Equal(t, []string{
		"python3 -m pip install pylint",
		"pylint main.py",
	}, runner.runs)
}

func TestLintrQuotesPathInExpression(t *testing.T) {
	runner := &fakeRunner{
		exit:   map[string]int{"Rscript -e library(lintr)": 0},
		stdout: map[string]string{`Rscript -e lintr::lint("script.R")`: "script.R:1:1: style: ...\n"},
	}

	report, err := newAnalyzer(runner).Lintr(context.Background(), "script.R")

	require.NoError(t, err)
	assert.Contains(t, report, "style:")
	assert.Contains(t, runner.runs, `Rscript -e lintr::lint("script.R")`)
}
