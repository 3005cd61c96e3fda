package structure

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ErrInvalidUTF8 is reported for files that are not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// Analyzer counts markers in files under a base directory.
type Analyzer struct {
	basePath string
	markers  Markers
	logger   *zap.Logger
}

// NewAnalyzer creates an Analyzer for basePath using the given markers.
func NewAnalyzer(basePath string, markers Markers, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		basePath: basePath,
		markers:  markers,
		logger:   logger,
	}
}

// Analyze summarizes each file in order. Missing or unreadable files produce
// a row of their own and never stop the remaining files from being analyzed.
func (a *Analyzer) Analyze(filenames []string) []Summary {
	summaries := make([]Summary, 0, len(filenames))
	for _, name := range filenames {
		summaries = append(summaries, a.analyzeFile(name))
	}
	return summaries
}

func (a *Analyzer) analyzeFile(name string) Summary {
	s := Summary{Filename: name}
	path := filepath.Join(a.basePath, name)

	if _, err := os.Stat(path); err != nil {
		a.logger.Debug("key file not found", zap.String("file", name))
		return s
	}
	s.Found = true

	data, err := os.ReadFile(path)
	if err != nil {
		s.Err = err
	} else if !utf8.Valid(data) {
		s.Err = ErrInvalidUTF8
	}
	if s.Err != nil {
		s.Error = s.Err.Error()
		a.logger.Warn("key file unreadable", zap.String("file", name), zap.Error(s.Err))
		return s
	}

	s.Lines, s.StructuralMarkers, s.VisibilityMarkers = Count(string(data), a.markers)
	return s
}

// Count returns the line count and marker counts for content. Markers are
// matched as literal, non-overlapping substrings; comments and string
// literals are counted like any other text.
func Count(content string, m Markers) (lines, structural, visibility int) {
	lines = strings.Count(content, "\n") + 1
	if m.Structural != "" {
		structural = strings.Count(content, m.Structural)
	}
	for _, v := range m.Visibility {
		if v == "" {
			continue
		}
		visibility += strings.Count(content, v)
	}
	return lines, structural, visibility
}

// String formats the summary the way it is printed in reports.
func (s Summary) String() string {
	switch {
	case !s.Found:
		return fmt.Sprintf("%-25s NOT FOUND", s.Filename)
	case s.Err != nil:
		return fmt.Sprintf("%-25s Error reading file: %v", s.Filename, s.Err)
	default:
		return fmt.Sprintf("%-25s %4d lines, %2d classes, ~%2d methods",
			s.Filename, s.Lines, s.StructuralMarkers, s.VisibilityMarkers)
	}
}
