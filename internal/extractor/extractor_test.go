package extractor

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	ferrors "git.home.luguber.info/inful/docconf/internal/foundation/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(dir, "fake-doxygen")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestCommandExtractorRunsInDir(t *testing.T) {
	binDir := t.TempDir()
	workDir := t.TempDir()
	script := writeScript(t, binDir, `echo "$#" > args.txt; mkdir -p doxyxml; echo '<doxygen/>' > doxyxml/index.xml`)

	var results []Result
	ext := NewCommandExtractor(script, workDir)
	ext.OnResult = func(r Result) { results = append(results, r) }

	require.NoError(t, ext.Run(context.Background()))

	args, err := os.ReadFile(filepath.Join(workDir, "args.txt"))
	require.NoError(t, err)
	assert.Equal(t, "0\n", string(args), "extractor must be invoked without arguments")
	assert.FileExists(t, filepath.Join(workDir, "doxyxml", "index.xml"))
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].ExitCode)
}

func TestCommandExtractorExitStatusIsWarning(t *testing.T) {
	script := writeScript(t, t.TempDir(), "echo failing >&2; exit 3")

	var got Result
	ext := NewCommandExtractor(script, t.TempDir())
	ext.OnResult = func(r Result) { got = r }

	err := ext.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, got.ExitCode)
	assert.Contains(t, got.Stderr, "failing")

	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryExtractor, ce.Category())
	assert.Equal(t, ferrors.SeverityWarning, ce.Severity())
	assert.False(t, ce.IsFatal())
	assert.Equal(t, 3, ce.Context()["exit_code"])
}

func TestCommandExtractorRelativeCommandResolvesAgainstDir(t *testing.T) {
	workDir := t.TempDir()
	writeScript(t, workDir, "echo ran > ran.txt")
	chdir(t, t.TempDir())

	ext := NewCommandExtractor("."+string(filepath.Separator)+"fake-doxygen", workDir)
	require.NoError(t, ext.Run(context.Background()))
	assert.FileExists(t, filepath.Join(workDir, "ran.txt"))
}

func TestCommandExtractorMissingBinary(t *testing.T) {
	ext := NewCommandExtractor("docconf-test-no-such-extractor", t.TempDir())

	err := ext.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractorNotFound)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryExtractor))
	ce, _ := ferrors.AsClassified(err)
	assert.True(t, ce.IsFatal())
}

func TestCommandExtractorCanceled(t *testing.T) {
	script := writeScript(t, t.TempDir(), "exit 0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewCommandExtractor(script, t.TempDir()).Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, DefaultCommand, NewCommandExtractor("", "").Command)
	assert.NoError(t, NoopExtractor{}.Run(context.Background()))

	calls := 0
	f := Func(func(context.Context) error { calls++; return nil })
	require.NoError(t, f.Run(context.Background()))
	assert.Equal(t, 1, calls)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
