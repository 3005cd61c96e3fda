// Package config handles configuration loading and management for featcheck.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ShayCichocki/featcheck/internal/checklist"
	"github.com/ShayCichocki/featcheck/internal/manifest"
	"github.com/ShayCichocki/featcheck/internal/structure"
)

// ProjectConfigName is the project-level override file searched for in the
// current directory and its parents.
const ProjectConfigName = ".featcheck.yaml"

// EnvPrefix is the prefix for environment variable overrides, e.g.
// FEATCHECK_PROJECT_BASE_PATH.
const EnvPrefix = "FEATCHECK"

// Config holds all configuration for featcheck.
type Config struct {
	Project   ProjectConfig   `mapstructure:"project"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Checklist ChecklistConfig `mapstructure:"checklist"`
	Output    OutputConfig    `mapstructure:"output"`
	Log       LogConfig       `mapstructure:"log"`
}

// ProjectConfig locates the tree being verified.
type ProjectConfig struct {
	// BasePath is the root for all manifest and key file paths.
	BasePath string `mapstructure:"base_path"`
	// Manifest is an optional YAML manifest; empty uses the built-in one.
	Manifest string `mapstructure:"manifest"`
	// KeyFiles are analyzed for structure.
	KeyFiles []string `mapstructure:"key_files"`
}

// AnalysisConfig holds the structure analysis markers.
type AnalysisConfig struct {
	StructuralMarker  string   `mapstructure:"structural_marker"`
	VisibilityMarkers []string `mapstructure:"visibility_markers"`
}

// ChecklistConfig holds the checklist ledger settings.
type ChecklistConfig struct {
	ExpectedTotal int `mapstructure:"expected_total"`
	// Items overrides the built-in ledger when non-empty.
	Items []string `mapstructure:"items"`
}

// OutputConfig holds report display settings.
type OutputConfig struct {
	Color bool `mapstructure:"color"`
	JSON  bool `mapstructure:"json"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// File receives logs; empty means stderr.
	File string `mapstructure:"file"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (FEATCHECK_*)
// 2. Project config (.featcheck.yaml in current directory or parent)
// 3. User config (~/.config/featcheck/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := newViper()

	// Load user config from XDG path
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Load project config if present
	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading project config %s: %w", projectConfig, err)
		}
		anchorPaths(projectViper, filepath.Dir(projectConfig))
		// Merge project config (takes precedence)
		if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	return unmarshal(v)
}

// anchorPaths rewrites relative path keys read from a config file so they
// resolve against dir, the directory holding that file, instead of the
// working directory.
func anchorPaths(v *viper.Viper, dir string) {
	for _, key := range []string{"project.base_path", "project.manifest"} {
		if !v.IsSet(key) {
			continue
		}
		p := os.ExpandEnv(v.GetString(key))
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		v.Set(key, filepath.Join(dir, p))
	}
}

// LoadUser loads only the user config file, with defaults for missing keys
// but without the project config or environment overrides. It is the
// starting point for edits that are saved back with Save.
func LoadUser() (*Config, error) {
	return LoadFile(GetUserConfigPath())
}

// LoadFile reads a single config file the same way LoadUser does. A
// missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return unmarshal(v)
		}
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	v := newViper()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	return unmarshal(v)
}

// newViper returns a viper instance with defaults and env overrides wired.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Project.BasePath = os.ExpandEnv(cfg.Project.BasePath)
	cfg.Project.Manifest = os.ExpandEnv(cfg.Project.Manifest)
	return cfg, nil
}

// Save writes the configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return SaveToPath(cfg, filepath.Join(userConfigDir, "config.yaml"))
}

// SaveToPath writes the configuration as YAML to path.
func SaveToPath(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	v.Set("project.base_path", cfg.Project.BasePath)
	v.Set("project.manifest", cfg.Project.Manifest)
	v.Set("project.key_files", cfg.Project.KeyFiles)
	v.Set("analysis.structural_marker", cfg.Analysis.StructuralMarker)
	v.Set("analysis.visibility_markers", cfg.Analysis.VisibilityMarkers)
	v.Set("checklist.expected_total", cfg.Checklist.ExpectedTotal)
	if len(cfg.Checklist.Items) > 0 {
		v.Set("checklist.items", cfg.Checklist.Items)
	}
	v.Set("output.color", cfg.Output.Color)
	v.Set("output.json", cfg.Output.JSON)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("project.base_path", d.Project.BasePath)
	v.SetDefault("project.manifest", d.Project.Manifest)
	v.SetDefault("project.key_files", d.Project.KeyFiles)

	v.SetDefault("analysis.structural_marker", d.Analysis.StructuralMarker)
	v.SetDefault("analysis.visibility_markers", d.Analysis.VisibilityMarkers)

	v.SetDefault("checklist.expected_total", d.Checklist.ExpectedTotal)
	v.SetDefault("checklist.items", []string{})

	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("output.json", d.Output.JSON)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// getUserConfigDir returns the XDG config directory for featcheck.
func getUserConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "featcheck")
	}

	// Fall back to ~/.config/featcheck
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "featcheck")
	}
	return filepath.Join(home, ".config", "featcheck")
}

// findProjectConfig searches for .featcheck.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ProjectConfigName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	markers := structure.DefaultMarkers()
	return &Config{
		Project: ProjectConfig{
			BasePath: filepath.Join("src", "server"),
			Manifest: "",
			KeyFiles: structure.DefaultKeyFiles(),
		},
		Analysis: AnalysisConfig{
			StructuralMarker:  markers.Structural,
			VisibilityMarkers: markers.Visibility,
		},
		Checklist: ChecklistConfig{
			ExpectedTotal: checklist.DefaultExpectedTotal,
		},
		Output: OutputConfig{
			Color: true,
			JSON:  false,
		},
		Log: LogConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// Markers returns the structure analysis markers.
func (c *Config) Markers() structure.Markers {
	return structure.Markers{
		Structural: c.Analysis.StructuralMarker,
		Visibility: c.Analysis.VisibilityMarkers,
	}
}

// Ledger builds the checklist ledger, using the built-in items unless
// overridden.
func (c *Config) Ledger() *checklist.Ledger {
	items := c.Checklist.Items
	if len(items) == 0 {
		items = checklist.DefaultItems()
	}
	return checklist.New(items, c.Checklist.ExpectedTotal)
}

// LoadManifest returns the configured manifest, or the built-in one when no
// manifest file is set.
func (c *Config) LoadManifest() (*manifest.Manifest, error) {
	if c.Project.Manifest == "" {
		return manifest.Default(), nil
	}
	return manifest.Load(c.Project.Manifest)
}
