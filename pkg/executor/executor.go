package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// maxStderr bounds how much tool stderr is kept on an ExitError.
const maxStderr = 4096

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Run executes an external command in dir. Stdout is discarded; stderr is
// kept only to enrich the error.
func (e *implExecutor) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = io.Discard

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{
				Name:   name,
				Code:   exitErr.ExitCode(),
				Stderr: tail(strings.TrimSpace(stderr.String()), maxStderr),
			}
		}
		return fmt.Errorf("command '%s' failed: %w", name, err)
	}

	return nil
}

// LookPath resolves a binary on PATH
func (e *implExecutor) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("lookup %s: %w", name, err)
	}
	return path, nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
