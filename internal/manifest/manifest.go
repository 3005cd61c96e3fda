// Package manifest maps claimed features to the files that must exist for
// each feature to count as implemented.
package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Feature is a named feature and the relative paths that implement it.
type Feature struct {
	// Name is the human-readable feature name.
	Name string `json:"name" yaml:"name"`
	// Paths are the files, relative to the base directory, that must all exist.
	Paths []string `json:"paths" yaml:"paths"`
}

// Manifest is an ordered list of features.
type Manifest struct {
	Features []Feature `json:"features" yaml:"features"`
}

// Validate returns an error for the first malformed entry.
func (m *Manifest) Validate() error {
	for i, f := range m.Features {
		if f.Name == "" {
			return fmt.Errorf("feature %d: empty name", i+1)
		}
		if len(f.Paths) == 0 {
			return fmt.Errorf("feature %q: no required paths", f.Name)
		}
		for _, p := range f.Paths {
			if p == "" {
				return fmt.Errorf("feature %q: empty path", f.Name)
			}
		}
	}
	return nil
}

// UnmarshalYAML accepts either a single path string or a list of paths.
func (f *Feature) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name  string    `yaml:"name"`
		Paths yaml.Node `yaml:"paths"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	f.Name = raw.Name
	f.Paths = nil

	switch raw.Paths.Kind {
	case 0:
		// no paths key; Validate reports it
	case yaml.ScalarNode:
		f.Paths = []string{raw.Paths.Value}
	case yaml.SequenceNode:
		if err := raw.Paths.Decode(&f.Paths); err != nil {
			return fmt.Errorf("feature %q paths: %w", raw.Name, err)
		}
	default:
		return fmt.Errorf("feature %q: paths must be a string or a list (line %d)", raw.Name, raw.Paths.Line)
	}
	return nil
}

// Load reads a YAML manifest from path and validates it.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

// Marshal renders the manifest as YAML. Single-path features are written as
// a plain string.
func (m *Manifest) Marshal() ([]byte, error) {
	type entry struct {
		Name  string      `yaml:"name"`
		Paths interface{} `yaml:"paths"`
	}
	out := struct {
		Features []entry `yaml:"features"`
	}{}
	for _, f := range m.Features {
		e := entry{Name: f.Name, Paths: f.Paths}
		if len(f.Paths) == 1 {
			e.Paths = f.Paths[0]
		}
		out.Features = append(out.Features, e)
	}
	return yaml.Marshal(out)
}

// Default returns the built-in manifest of enterprise features.
func Default() *Manifest {
	return &Manifest{
		Features: []Feature{
			{Name: "REST API Handler", Paths: []string{"RestApiHandler.java"}},
			{Name: "Password Security", Paths: []string{"PasswordHasher.java"}},
			{Name: "JSON Processing", Paths: []string{"JsonParser.java"}},
			{Name: "Session Management", Paths: []string{"SessionManager.java"}},
			{Name: "Enhanced DAOs", Paths: []string{"EnhancedUserDAO.java", "EnhancedBookDAO.java", "EnhancedBorrowDAO.java"}},
			{Name: "AI Recommendations", Paths: []string{"RecommendationEngine.java"}},
			{Name: "Internationalization", Paths: []string{"I18nManager.java"}},
			{Name: "Cloud Integration", Paths: []string{"CloudIntegrationManager.java"}},
			{Name: "Backup System", Paths: []string{"BackupManager.java"}},
			{Name: "Advanced Search", Paths: []string{"AdvancedSearch.java"}},
		},
	}
}
