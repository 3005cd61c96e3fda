package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Keys lists every configuration key in display order.
var Keys = []string{
	"project.base_path",
	"project.manifest",
	"project.key_files",
	"analysis.structural_marker",
	"analysis.visibility_markers",
	"checklist.expected_total",
	"checklist.items",
	"output.color",
	"output.json",
	"log.level",
	"log.file",
}

// GetValue returns a configuration value by dot-notation key.
// List values are joined with commas.
func GetValue(cfg *Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "project.base_path":
		return cfg.Project.BasePath, nil
	case "project.manifest":
		if cfg.Project.Manifest == "" {
			return "(built-in)", nil
		}
		return cfg.Project.Manifest, nil
	case "project.key_files":
		return strings.Join(cfg.Project.KeyFiles, ","), nil
	case "analysis.structural_marker":
		return strconv.Quote(cfg.Analysis.StructuralMarker), nil
	case "analysis.visibility_markers":
		quoted := make([]string, len(cfg.Analysis.VisibilityMarkers))
		for i, m := range cfg.Analysis.VisibilityMarkers {
			quoted[i] = strconv.Quote(m)
		}
		return strings.Join(quoted, ","), nil
	case "checklist.expected_total":
		return strconv.Itoa(cfg.Checklist.ExpectedTotal), nil
	case "checklist.items":
		if len(cfg.Checklist.Items) == 0 {
			return "(built-in)", nil
		}
		return strconv.Itoa(len(cfg.Checklist.Items)) + " items", nil
	case "output.color":
		return strconv.FormatBool(cfg.Output.Color), nil
	case "output.json":
		return strconv.FormatBool(cfg.Output.JSON), nil
	case "log.level":
		return cfg.Log.Level, nil
	case "log.file":
		if cfg.Log.File == "" {
			return "(stderr)", nil
		}
		return cfg.Log.File, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// SetValue sets a configuration value by dot-notation key.
// List values are given comma-separated.
func SetValue(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "project.base_path":
		cfg.Project.BasePath = value
	case "project.manifest":
		cfg.Project.Manifest = value
	case "project.key_files":
		cfg.Project.KeyFiles = splitList(value)
	case "analysis.structural_marker":
		cfg.Analysis.StructuralMarker = value
	case "analysis.visibility_markers":
		cfg.Analysis.VisibilityMarkers = strings.Split(value, ",")
	case "checklist.expected_total":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid expected total %q: must be a non-negative integer", value)
		}
		cfg.Checklist.ExpectedTotal = n
	case "output.color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		cfg.Output.Color = b
	case "output.json":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		cfg.Output.JSON = b
	case "log.level":
		switch value {
		case "debug", "info", "warn", "error":
			cfg.Log.Level = value
		default:
			return fmt.Errorf("invalid log level %q: use debug, info, warn or error", value)
		}
	case "log.file":
		cfg.Log.File = value
	case "checklist.items":
		return fmt.Errorf("checklist.items can only be set in a config file")
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// splitList splits a comma-separated list, trimming blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
