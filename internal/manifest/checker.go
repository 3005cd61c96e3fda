package manifest

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Result is the outcome of checking one feature.
type Result struct {
	Feature Feature `json:"feature"`
	// Present is true only when every path of the feature exists.
	Present bool `json:"present"`
	// Missing lists the absent paths in declaration order.
	Missing []string `json:"missing,omitempty"`
}

// Report aggregates the results of checking a whole manifest.
type Report struct {
	Results     []Result `json:"results"`
	Implemented int      `json:"implemented"`
	Total       int      `json:"total"`
}

// Complete reports whether every feature is implemented. There is no
// partial credit.
func (r *Report) Complete() bool {
	return r.Implemented == r.Total
}

// Checker checks manifest features against files under a base directory.
type Checker struct {
	basePath string
	logger   *zap.Logger
}

// NewChecker creates a Checker rooted at basePath.
func NewChecker(basePath string, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{basePath: basePath, logger: logger}
}

// Check evaluates every feature of m. Missing files are reported in the
// Report; only a malformed manifest returns an error.
func (c *Checker) Check(m *Manifest) (*Report, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		Results: make([]Result, 0, len(m.Features)),
		Total:   len(m.Features),
	}

	for _, f := range m.Features {
		res := Result{Feature: f, Present: true}
		for _, p := range f.Paths {
			if !c.exists(p) {
				res.Present = false
				res.Missing = append(res.Missing, p)
			}
		}
		if res.Present {
			report.Implemented++
		}
		c.logger.Debug("feature checked",
			zap.String("feature", f.Name),
			zap.Bool("present", res.Present),
			zap.Strings("missing", res.Missing))
		report.Results = append(report.Results, res)
	}

	return report, nil
}

// exists reports whether rel is a regular, readable file under the base path.
func (c *Checker) exists(rel string) bool {
	path := filepath.Join(c.basePath, rel)

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
