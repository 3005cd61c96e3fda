package exec

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// bannerWidth is the width of the rule printed around each checked command.
const bannerWidth = 50

// Check runs command through runner and prints the command, its description,
// exit code and both output streams to w. It returns true only when the
// command exits with code zero. Launch failures are printed and reported as
// false; Check never returns an error.
func Check(ctx context.Context, runner CommandRunner, w io.Writer, command, description string) bool {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "Testing: %s\n", description)
	fmt.Fprintf(w, "Command: %s\n", command)
	fmt.Fprintln(w, rule)

	result := runner.Capture(ctx, "", command)
	if result.Err != nil {
		fmt.Fprintf(w, "Error running command: %v\n", result.Err)
		return false
	}

	fmt.Fprintf(w, "Exit code: %d\n", result.ExitCode)
	if result.Stdout != "" {
		fmt.Fprintf(w, "STDOUT:\n%s\n", result.Stdout)
	}
	if result.Stderr != "" {
		fmt.Fprintf(w, "STDERR:\n%s\n", result.Stderr)
	}
	return result.Success()
}
