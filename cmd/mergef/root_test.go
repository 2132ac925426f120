package mergef

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitHard, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitPartial, ExitCode(&exitError{code: ExitPartial, err: errors.New("boom")}))
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mergef version")
}

func TestPatternsListShowsBuiltins(t *testing.T) {
	t.Setenv("MERGEF_CONFIG_DIR", t.TempDir())

	out, err := runCommand(t, "patterns", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "classic_part")
	assert.Contains(t, out, "disc_format")
	assert.Contains(t, out, "builtin")
}

func TestPatternsAddListRemove(t *testing.T) {
	t.Setenv("MERGEF_CONFIG_DIR", t.TempDir())

	out, err := runCommand(t, "patterns", "add", "season", `^(.+?) season (\d+)$`, ` season 1$`,
		"--description", "season folders")
	require.NoError(t, err)
	assert.Contains(t, out, `Added pattern "season"`)

	out, err = runCommand(t, "patterns", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "season")
	assert.Contains(t, out, "season folders")

	out, err = runCommand(t, "patterns", "remove", "season")
	require.NoError(t, err)
	assert.Contains(t, out, `Removed pattern "season"`)
}

func TestPatternsRemoveBuiltinFails(t *testing.T) {
	t.Setenv("MERGEF_CONFIG_DIR", t.TempDir())

	_, err := runCommand(t, "patterns", "remove", "classic_part")
	require.Error(t, err)
	assert.Equal(t, ExitHard, ExitCode(err))
}

func TestMergeCommandDryRun(t *testing.T) {
	t.Setenv("MERGEF_CONFIG_DIR", t.TempDir())

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Movie part1"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Movie part2"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Movie part2", "b.txt"), []byte("x"), 0644))

	out, err := runCommand(t, "--dry-run", "merge", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `Group "Movie"`)
	assert.Contains(t, out, "dry run")

	// nothing moved
	assert.DirExists(t, filepath.Join(dir, "Movie part1"))
	assert.FileExists(t, filepath.Join(dir, "Movie part2", "b.txt"))
}

func TestMergeCommandExecutes(t *testing.T) {
	t.Setenv("MERGEF_CONFIG_DIR", t.TempDir())

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Movie part1"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Movie part2"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Movie part2", "b.txt"), []byte("x"), 0644))

	out, err := runCommand(t, "merge", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "All groups merged")
	assert.FileExists(t, filepath.Join(dir, "Movie", "b.txt"))
}

func TestMergeCommandUnknownPatternIsHardFailure(t *testing.T) {
	t.Setenv("MERGEF_CONFIG_DIR", t.TempDir())

	_, err := runCommand(t, "merge", t.TempDir(), "--pattern", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitHard, ExitCode(err))
}

func TestMergeCommandBadPathIsHardFailure(t *testing.T) {
	t.Setenv("MERGEF_CONFIG_DIR", t.TempDir())

	_, err := runCommand(t, "merge", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, ExitHard, ExitCode(err))
}

func TestMergeCommandNoPaths(t *testing.T) {
	t.Setenv("MERGEF_CONFIG_DIR", t.TempDir())

	_, err := runCommand(t, "merge")
	require.Error(t, err)
	assert.Equal(t, ExitHard, ExitCode(err))
}
