package format

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/codetidy/internal/toolchain"
)

type fakeRunner struct {
	rewrite map[string]string
	exit    int
	runs    [][]string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (toolchain.RunResult, error) {
	f.runs = append(f.runs, append([]string{name}, args...))
	if name == "black" && len(args) == 1 {
		if content, ok := f.rewrite[args[0]]; ok {
			if err := os.WriteFile(args[0], []byte(content), 0o644); err != nil {
				return toolchain.RunResult{}, err
			}
		}
	}
	return toolchain.RunResult{ExitCode: f.exit}, nil
}

func TestBlackReturnsPostFormatContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(path, []byte("x=1\n"), 0o644))

	runner := &fakeRunner{rewrite: map[string]string{path: "x = 1\n"}}
	f := NewFormatter(runner, toolchain.NewManager(runner, nil), nil)

	content, err := f.Black(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", content)
}

func TestBlackReturnsOriginalContentWhenFormatterFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.py")
	require.NoError(t, os.WriteFile(path, []byte("def f(:\n"), 0o644))

	runner := &fakeRunner{exit: 123}
	f := NewFormatter(runner, toolchain.NewManager(runner, nil), nil)

	content, err := f.Black(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "def f(:\n", content)
}
