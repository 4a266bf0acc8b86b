package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FakeSbatch is a shell script standing in for sbatch. It records its
// arguments and stdin, prints a submission line, and exits with a fixed code.
type FakeSbatch struct {
	// Path is the executable to configure as the sbatch command
	Path string

	argsFile  string
	stdinFile string
}

// NewFakeSbatch writes a fake sbatch into a temp dir that exits with code.
func NewFakeSbatch(t *testing.T, code int) *FakeSbatch {
	t.Helper()
	dir := t.TempDir()
	f := &FakeSbatch{
		Path:      filepath.Join(dir, "sbatch"),
		argsFile:  filepath.Join(dir, "args"),
		stdinFile: filepath.Join(dir, "stdin"),
	}

	body := fmt.Sprintf(`#!/bin/sh
for a in "$@"; do printf '%%s\n' "$a"; done > %q
cat > %q
echo "Submitted batch job 4242"
exit %d
`, f.argsFile, f.stdinFile, code)

	if err := os.WriteFile(f.Path, []byte(body), 0755); err != nil {
		t.Fatalf("failed to write fake sbatch: %v", err)
	}
	return f
}

// Args returns the arguments sbatch was invoked with.
func (f *FakeSbatch) Args(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(f.argsFile)
	if err != nil {
		t.Fatalf("fake sbatch was not invoked: %v", err)
	}
	out := strings.TrimSuffix(string(data), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Script returns what sbatch read from stdin.
func (f *FakeSbatch) Script(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.stdinFile)
	if err != nil {
		t.Fatalf("fake sbatch was not invoked: %v", err)
	}
	return string(data)
}

// Invoked reports whether the fake ran at all.
func (f *FakeSbatch) Invoked() bool {
	_, err := os.Stat(f.argsFile)
	return err == nil
}
