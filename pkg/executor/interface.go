package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Run executes name with args in dir, discarding stdout. A non-zero exit
	// is reported as *ExitError.
	Run(ctx context.Context, dir string, name string, args ...string) error
	// LookPath resolves name the way Run will.
	LookPath(name string) (string, error)
}
