package finalverify

import (
	"fmt"
	"strings"
)

// GapKind classifies a gap.
type GapKind string

const (
	// GapMissingFeature is a feature with at least one absent file.
	GapMissingFeature GapKind = "missing_feature"
	// GapLedgerDrift is a checklist whose length differs from the expected total.
	GapLedgerDrift GapKind = "ledger_drift"
)

// Gap is one reason a run failed.
type Gap struct {
	Kind GapKind `json:"kind"`
	// Subject is the feature name, or "checklist" for ledger drift.
	Subject string `json:"subject"`
	// Description explains the gap.
	Description string `json:"description"`
	// MissingPaths lists absent files for missing features.
	MissingPaths []string `json:"missing_paths,omitempty"`
	// SuggestedAction is what would close the gap.
	SuggestedAction string `json:"suggested_action"`
}

// GapAnalyzer turns a failed verification result into actionable gaps.
type GapAnalyzer struct{}

// NewGapAnalyzer creates a new gap analyzer.
func NewGapAnalyzer() *GapAnalyzer {
	return &GapAnalyzer{}
}

// GapAnalysisResult contains the gaps and a one-line analysis.
type GapAnalysisResult struct {
	Gaps     []Gap
	Analysis string
}

// AnalyzeGaps lists every missing feature in manifest order, followed by
// the ledger drift if any.
func (a *GapAnalyzer) AnalyzeGaps(result *VerificationResult) *GapAnalysisResult {
	analysis := &GapAnalysisResult{Gaps: []Gap{}}
	if result == nil {
		return analysis
	}

	if result.Features != nil {
		for _, r := range result.Features.Results {
			if r.Present {
				continue
			}
			analysis.Gaps = append(analysis.Gaps, Gap{
				Kind:            GapMissingFeature,
				Subject:         r.Feature.Name,
				Description:     fmt.Sprintf("%d of %d required files missing", len(r.Missing), len(r.Feature.Paths)),
				MissingPaths:    r.Missing,
				SuggestedAction: "add " + strings.Join(r.Missing, ", "),
			})
		}
	}

	claimed := len(result.Checklist.Items)
	expected := result.Checklist.ExpectedTotal
	if claimed != expected {
		action := fmt.Sprintf("remove %d claimed item(s) or raise the expected total", claimed-expected)
		if claimed < expected {
			action = fmt.Sprintf("record %d more item(s) or lower the expected total", expected-claimed)
		}
		analysis.Gaps = append(analysis.Gaps, Gap{
			Kind:            GapLedgerDrift,
			Subject:         "checklist",
			Description:     fmt.Sprintf("claimed %d, expected %d", claimed, expected),
			SuggestedAction: action,
		})
	}

	analysis.Analysis = a.summarize(analysis.Gaps)
	return analysis
}

func (a *GapAnalyzer) summarize(gaps []Gap) string {
	if len(gaps) == 0 {
		return "No gaps found"
	}
	features, drift := 0, false
	for _, g := range gaps {
		switch g.Kind {
		case GapMissingFeature:
			features++
		case GapLedgerDrift:
			drift = true
		}
	}
	parts := []string{}
	if features > 0 {
		parts = append(parts, fmt.Sprintf("%d feature(s) incomplete", features))
	}
	if drift {
		parts = append(parts, "checklist out of sync with expected total")
	}
	return strings.Join(parts, "; ")
}
