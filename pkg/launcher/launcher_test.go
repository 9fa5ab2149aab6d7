package launcher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript writes an executable shell script and returns its path
func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stubs are not runnable on Windows")
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestLauncher_Run_Success(t *testing.T) {
	interp := writeScript(t, "python3", `echo "gui says: $1"`)

	var stdout bytes.Buffer
	l := &Launcher{
		Interpreter: interp,
		Script:      "check_component_tags_gui.py",
		Stdout:      &stdout,
	}

	code, err := l.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "gui says: check_component_tags_gui.py")
}

func TestLauncher_Run_NonZeroExit(t *testing.T) {
	interp := writeScript(t, "python3", "exit 3")

	l := &Launcher{Interpreter: interp, Script: "gui.py"}

	code, err := l.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, code)
	assert.Contains(t, err.Error(), "exited with code 3")
}

func TestLauncher_Run_MissingInterpreter(t *testing.T) {
	l := &Launcher{
		Interpreter: filepath.Join(t.TempDir(), "no-such-python"),
		Script:      "gui.py",
	}

	code, err := l.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, err.Error(), "starting gui process")
}

func TestLauncher_Run_Timeout(t *testing.T) {
	interp := writeScript(t, "python3", "sleep 10")

	l := &Launcher{
		Interpreter: interp,
		Script:      "gui.py",
		Timeout:     100 * time.Millisecond,
	}

	start := time.Now()
	code, err := l.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestLauncher_Run_WorkingDirectory(t *testing.T) {
	interp := writeScript(t, "python3", "pwd")
	dir := t.TempDir()

	var stdout bytes.Buffer
	l := &Launcher{
		Interpreter: interp,
		Script:      "gui.py",
		Dir:         dir,
		Stdout:      &stdout,
	}

	code, err := l.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	got, resolveErr := filepath.EvalSymlinks(filepath.Clean(stripNewline(stdout.String())))
	require.NoError(t, resolveErr)
	want, resolveErr := filepath.EvalSymlinks(dir)
	require.NoError(t, resolveErr)
	assert.Equal(t, want, got)
}

func stripNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
