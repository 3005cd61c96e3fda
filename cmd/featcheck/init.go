package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/featcheck/internal/config"
	"github.com/ShayCichocki/featcheck/internal/manifest"
)

// initManifestName is the manifest file written by init.
const initManifestName = "features.yaml"

var (
	initForce    bool
	initBasePath string
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create a project config and manifest",
	Long: `Write a .featcheck.yaml project config and a features.yaml manifest
populated with the built-in features, ready to edit.

Paths in both files are relative to the directory featcheck is run from.

Examples:
  featcheck init                      # Initialize current directory
  featcheck init ./myproject          # Initialize specific directory
  featcheck init --base app/src       # Set the base directory
  featcheck init --force              # Overwrite existing files`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
	initCmd.Flags().StringVar(&initBasePath, "base-path", filepath.Join("src", "server"), "Base directory written to the project config")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	absPath, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", absPath, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing featcheck in %s...\n\n", absPath)

	configPath := filepath.Join(absPath, config.ProjectConfigName)
	manifestPath := filepath.Join(absPath, initManifestName)

	if !initForce {
		for _, p := range []string{configPath, manifestPath} {
			if _, err := os.Stat(p); err == nil {
				printStatus(cmd, "✗", filepath.Base(p)+" already exists (use --force to overwrite)", color.FgYellow)
				return &exitError{code: 1}
			}
		}
	}

	data, err := manifest.Default().Marshal()
	if err != nil {
		return fmt.Errorf("rendering manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", manifestPath, err)
	}
	printStatus(cmd, "✓", "Created "+initManifestName, color.FgGreen)

	cfg := config.Default()
	cfg.Project.BasePath = initBasePath
	cfg.Project.Manifest = initManifestName
	if err := config.SaveToPath(cfg, configPath); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	printStatus(cmd, "✓", "Created "+config.ProjectConfigName, color.FgGreen)

	if _, err := os.Stat(filepath.Join(absPath, initBasePath)); err != nil {
		printStatus(cmd, "⚠", "Base directory "+initBasePath+" does not exist yet", color.FgYellow)
	}

	fmt.Fprintf(out, "\n%s featcheck initialization complete!\n\n", color.GreenString("✓"))
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  1. Edit %s to list your features\n", initManifestName)
	fmt.Fprintln(out, "  2. Run 'featcheck verify' from this directory")
	return nil
}

// printStatus prints a status line with color
func printStatus(cmd *cobra.Command, symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	if flagNoColor {
		c.DisableColor()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.Sprint(symbol), message)
}
