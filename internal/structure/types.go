// Package structure derives rough size metrics from source files by counting
// keyword occurrences.
package structure

// Markers are the literal substrings counted in each file.
type Markers struct {
	// Structural is the declaration keyword counted as a class proxy.
	Structural string `json:"structural"`
	// Visibility are qualifiers whose summed count is a method proxy.
	Visibility []string `json:"visibility"`
}

// DefaultMarkers returns the markers used for Java-style sources.
func DefaultMarkers() Markers {
	return Markers{
		Structural: "class ",
		Visibility: []string{"public ", "private ", "protected "},
	}
}

// Summary is the shape of one analyzed file.
// Counts are only meaningful when Found is true and Err is nil.
type Summary struct {
	Filename          string `json:"filename"`
	Found             bool   `json:"found"`
	Lines             int    `json:"lines"`
	StructuralMarkers int    `json:"structural_markers"`
	VisibilityMarkers int    `json:"visibility_markers"`
	Err               error  `json:"-"`
	// Error mirrors Err for JSON output.
	Error string `json:"error,omitempty"`
}

// DefaultKeyFiles returns the files analyzed when none are configured.
func DefaultKeyFiles() []string {
	return []string{
		"RestApiHandler.java",
		"RecommendationEngine.java",
		"I18nManager.java",
		"CloudIntegrationManager.java",
		"PasswordHasher.java",
		"JsonParser.java",
	}
}
