package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/featcheck/internal/config"
)

var (
	flagConfig        string
	flagBase          string
	flagManifest      string
	flagExpectedTotal int
	flagJSON          bool
	flagNoColor       bool
	flagLogLevel      string
	flagLogFile       string
)

// exitError carries a non-zero exit code for a run that already reported
// its own outcome.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var rootCmd = &cobra.Command{
	Use:   "featcheck",
	Short: "Feature-completion verifier",
	Long: `featcheck checks that every feature in a manifest has its files on disk,
summarizes key source files, and reconciles the result with a checklist of
claimed work items.

With no subcommand, runs the verification (same as "featcheck verify").

Exit code 0 means every feature is implemented and the checklist matches its
expected total; any other outcome exits 1.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runVerify,
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit code. Errors other
// than exitError are printed first.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if !errors.As(err, &ee) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return 1
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default: user config merged with "+config.ProjectConfigName+")")
	pf.StringVar(&flagBase, "base", "", "Base directory for manifest paths")
	pf.StringVar(&flagManifest, "manifest", "", "YAML manifest file (default: built-in manifest)")
	pf.IntVar(&flagExpectedTotal, "expected-total", 0, "Expected number of checklist items")
	pf.BoolVar(&flagJSON, "json", false, "Output in JSON format")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.LoadFromPath(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("base") {
		cfg.Project.BasePath = flagBase
	}
	if flags.Changed("manifest") {
		cfg.Project.Manifest = flagManifest
	}
	if flags.Changed("expected-total") {
		cfg.Checklist.ExpectedTotal = flagExpectedTotal
	}
	if flags.Changed("json") {
		cfg.Output.JSON = flagJSON
	}
	if flagNoColor {
		cfg.Output.Color = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	return cfg, nil
}
