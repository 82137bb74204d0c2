package executor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunSuccess(t *testing.T) {
	requireShell(t)

	err := New().Run(context.Background(), t.TempDir(), "sh", "-c", "echo ignored")
	assert.NoError(t, err)
}

func TestRunExitCode(t *testing.T) {
	requireShell(t)

	err := New().Run(context.Background(), t.TempDir(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "boom", exitErr.Stderr)

	code, ok := ExitCode(fmt.Errorf("mux movie.mp4: %w", err))
	assert.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestRunInDir(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	err := New().Run(context.Background(), dir, "sh", "-c", "touch marker && test -f marker")
	assert.NoError(t, err)
}

func TestRunMissingBinary(t *testing.T) {
	err := New().Run(context.Background(), t.TempDir(), "definitely-not-a-real-binary-xyz")
	require.Error(t, err)

	_, ok := ExitCode(err)
	assert.False(t, ok)
}

func TestLookPath(t *testing.T) {
	_, err := New().LookPath("definitely-not-a-real-binary-xyz")
	assert.Error(t, err)
}

func TestExitErrorMessage(t *testing.T) {
	err := &ExitError{Name: "ffmpeg", Code: 1}
	assert.Equal(t, "command 'ffmpeg' exited with status 1", err.Error())

	err.Stderr = "Invalid data found"
	assert.Contains(t, err.Error(), "stderr: Invalid data found")
}

func TestTail(t *testing.T) {
	assert.Equal(t, "abc", tail("abc", 5))
	assert.Equal(t, "cde", tail("abcde", 3))
}
