package main

import (
	"github.com/spf13/cobra"

	iexec "github.com/ShayCichocki/featcheck/internal/exec"
)

var execDescription string

var execCmd = &cobra.Command{
	Use:   "exec <command>",
	Short: "Run a shell command and report its outcome",
	Long: `Run a command through the host shell, print its exit code and both output
streams, and exit 0 only if the command exited 0.

The command has no timeout. It is not part of the verification verdict.

Examples:
  featcheck exec "javac -d build src/server/*.java" --desc "Compile server"
  featcheck exec "mvn -q test"`,
	Args: cobra.ExactArgs(1),
	RunE: runExec,
}

func init() {
	execCmd.Flags().StringVar(&execDescription, "desc", "", "Human-readable label for the command (default: the command itself)")
}

func runExec(cmd *cobra.Command, args []string) error {
	command := args[0]
	description := execDescription
	if description == "" {
		description = command
	}

	if !iexec.Check(cmd.Context(), iexec.NewRunner(), cmd.OutOrStdout(), command, description) {
		return &exitError{code: 1}
	}
	return nil
}
