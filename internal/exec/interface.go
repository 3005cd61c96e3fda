// Package exec provides an interface for command execution.
package exec

import (
	"context"
)

// CommandRunner defines the interface for running external commands.
// This abstraction allows mocking command execution in tests.
type CommandRunner interface {
	// Capture executes a command string through the host shell and keeps
	// stdout, stderr and the exit code apart. The working directory is set
	// to workDir if non-empty. A non-zero exit is reported in
	// Result.ExitCode, never as Result.Err.
	Capture(ctx context.Context, workDir string, command string) Result
}

// Result holds the outcome of a captured shell command.
type Result struct {
	// Command is the command string that was executed.
	Command string `json:"command"`
	// ExitCode is the process exit code, or -1 if the process never started.
	ExitCode int `json:"exit_code"`
	// Stdout is everything the command wrote to standard output.
	Stdout string `json:"stdout,omitempty"`
	// Stderr is everything the command wrote to standard error.
	Stderr string `json:"stderr,omitempty"`
	// Err is set when the command could not be launched at all.
	Err error `json:"-"`
}

// Success reports whether the command ran and exited with code zero.
func (r Result) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}
