// Command muxflow renames, converts and muxes video/subtitle pairs in a
// directory by driving ffmpeg.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/mux-flow/pkg/executor"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	root := newRootCommand()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "muxflow: %v\n", err)
	}
	return exitCode(err)
}

// exitCode propagates the tool's status when ffmpeg failed, 1 otherwise.
func exitCode(err error) int {
	if code, ok := executor.ExitCode(err); ok && code > 0 {
		return code
	}
	return 1
}

// reportedError marks an error that has already been logged.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
