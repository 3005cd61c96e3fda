package version

import (
	"regexp"
	"testing"
)

func TestGet(t *testing.T) {
	v := Get()
	if !regexp.MustCompile(`^\d+\.\d+\.\d+$`).MatchString(v) {
		t.Errorf("version %q is not semver", v)
	}
}

func TestGetPrecedence(t *testing.T) {
	savedOverride, savedEmbedded := override, embedded
	t.Cleanup(func() { override, embedded = savedOverride, savedEmbedded })

	tests := []struct {
		name     string
		override string
		embedded string
		want     string
	}{
		{"override wins", " 2.0.0\n", "0.1.0\n", "2.0.0"},
		{"embedded", "", "0.1.0\n", "0.1.0"},
		{"neither", "", "  \n", "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override, embedded = tt.override, tt.embedded
			if got := Get(); got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}
		})
	}
}
