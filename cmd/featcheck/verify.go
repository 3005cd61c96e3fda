package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/featcheck/internal/config"
	"github.com/ShayCichocki/featcheck/internal/finalverify"
	"github.com/ShayCichocki/featcheck/internal/logging"
	"github.com/ShayCichocki/featcheck/internal/manifest"
	"github.com/ShayCichocki/featcheck/internal/report"
	"github.com/ShayCichocki/featcheck/internal/structure"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify features against the filesystem and checklist",
	Long: `Run the full verification:

  1. Feature verification: every path of every manifest feature must exist
  2. Code structure analysis: keyword counts for key files (informational)
  3. Checklist ledger: claimed items must equal the expected total

Examples:
  featcheck verify                          # Built-in manifest under src/server
  featcheck verify --base ./src/server      # Different base directory
  featcheck verify --manifest features.yaml # Custom manifest
  featcheck verify --json | jq '.gaps'      # Machine-readable output`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer logger.Sync()

	result, err := runOnce(cmd.Context(), cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if code := finalverify.ExitCode(result.Verdict); code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// runOnce performs one verification and writes the report to w.
func runOnce(ctx context.Context, cfg *config.Config, logger *zap.Logger, w io.Writer) (*finalverify.VerificationResult, error) {
	m, err := cfg.LoadManifest()
	if err != nil {
		return nil, err
	}

	logger.Debug("starting verification",
		zap.String("base_path", cfg.Project.BasePath),
		zap.Int("features", len(m.Features)),
		zap.Int("key_files", len(cfg.Project.KeyFiles)))

	verifier := finalverify.NewVerifier(
		manifest.NewChecker(cfg.Project.BasePath, logger),
		structure.NewAnalyzer(cfg.Project.BasePath, cfg.Markers(), logger),
		logger,
	)

	result, err := verifier.Verify(ctx, finalverify.Input{
		Manifest: m,
		KeyFiles: cfg.Project.KeyFiles,
		Ledger:   cfg.Ledger(),
	})
	if err != nil {
		return nil, fmt.Errorf("verification aborted: %w", err)
	}

	if cfg.Output.JSON {
		if err := report.WriteJSON(w, result); err != nil {
			return nil, fmt.Errorf("write JSON report: %w", err)
		}
	} else {
		report.NewPrinter(w, cfg.Output.Color).Print(result)
	}
	return result, nil
}
