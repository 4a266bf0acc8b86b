package job

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskArgs_TrimsAndDropsBlankLines(t *testing.T) {
	args := ParseTaskArgs("A\n  B  \n\nC\n")
	assert.Equal(t, TaskArgs{`"A"`, `"B"`, `"C"`}, args)
}

func TestParseTaskArgs_WhitespaceOnlyLines(t *testing.T) {
	args := ParseTaskArgs(" \t\n\r\n   \n")
	assert.Empty(t, args)
}

func TestParseTaskArgs_CRLF(t *testing.T) {
	args := ParseTaskArgs("sub-01\r\nsub-02\r\n")
	assert.Equal(t, TaskArgs{`"sub-01"`, `"sub-02"`}, args)
}

func TestParseTaskArgs_KeepsInteriorWhitespace(t *testing.T) {
	args := ParseTaskArgs("  -s sub-01 -all  \n")
	assert.Equal(t, TaskArgs{`"-s sub-01 -all"`}, args)
}

func TestReadTaskArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "args.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\nfour\nfive\n"), 0644))

	args, err := ReadTaskArgs(path)
	require.NoError(t, err)
	assert.Equal(t, TaskArgs{`"one"`, `"two"`, `"three"`, `"four"`, `"five"`}, args)
}

func TestReadTaskArgs_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	_, err := ReadTaskArgs(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileRead))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "Unable to read command argument file")
}

func TestReadTaskArgs_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n  \n"), 0644))

	_, err := ReadTaskArgs(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoTasks))
	assert.Contains(t, err.Error(), path)
}

func TestResolveCommand_ExistingScriptIsMounted(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/bash\necho hi\n"), 0755))
	t.Chdir(dir)

	cmd, err := ResolveCommand("run.sh")
	require.NoError(t, err)

	canonical, err := filepath.EvalSymlinks(script)
	require.NoError(t, err)
	assert.Equal(t, canonical, cmd.Entrypoint)
	assert.Equal(t, canonical, cmd.Mount)
	assert.Equal(t, "-v "+canonical+":"+canonical, cmd.VolumeArg())
}

func TestResolveCommand_SymlinkIsCanonicalized(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.sh")
	require.NoError(t, os.WriteFile(target, []byte("#!/bin/bash\n"), 0755))
	link := filepath.Join(dir, "link.sh")
	require.NoError(t, os.Symlink(target, link))

	cmd, err := ResolveCommand(link)
	require.NoError(t, err)

	canonical, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, canonical, cmd.Entrypoint)
}

func TestResolveCommand_InContainerExecutable(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd, err := ResolveCommand("recon-all")
	require.NoError(t, err)
	assert.Equal(t, Command{Entrypoint: "recon-all"}, cmd)
	assert.Empty(t, cmd.VolumeArg())
}

func TestResolveCommand_MissingScriptPassesThrough(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd, err := ResolveCommand("/opt/tools/process.sh")
	require.NoError(t, err)
	assert.Equal(t, "/opt/tools/process.sh", cmd.Entrypoint)
	assert.Empty(t, cmd.Mount)
}

func TestResolveCommand_ExistingNonScriptPassesThrough(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run.py"), []byte("print()\n"), 0644))
	t.Chdir(dir)

	cmd, err := ResolveCommand("run.py")
	require.NoError(t, err)
	assert.Equal(t, Command{Entrypoint: "run.py"}, cmd)
}

func TestResolveCommand_NonUTF8ScriptPath(t *testing.T) {
	dir := t.TempDir()
	name := "bad\xff.sh"
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/bash\n"), 0755); err != nil {
		t.Skipf("filesystem rejects non-UTF-8 names: %v", err)
	}
	t.Chdir(dir)

	_, err := ResolveCommand(name)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathResolution))
	assert.Contains(t, err.Error(), "is not valid UTF-8")
}
