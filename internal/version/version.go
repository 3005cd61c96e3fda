// Package version reports the featcheck release.
package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embedded string

// override is set at link time with
// -ldflags "-X github.com/ShayCichocki/featcheck/internal/version.override=1.2.3".
var override string

// Get returns the release version. A link-time override wins over the
// embedded VERSION file; "dev" is returned when neither is set.
func Get() string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	if v := strings.TrimSpace(embedded); v != "" {
		return v
	}
	return "dev"
}
