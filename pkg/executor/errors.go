package executor

import (
	"errors"
	"fmt"
)

// ExitError reports a command that ran and exited non-zero.
type ExitError struct {
	Name   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command '%s' exited with status %d\nstderr: %s", e.Name, e.Code, e.Stderr)
	}
	return fmt.Sprintf("command '%s' exited with status %d", e.Name, e.Code)
}

// ExitCode extracts the tool exit status from err. The second return is
// false when err does not carry one.
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
