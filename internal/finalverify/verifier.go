package finalverify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ShayCichocki/featcheck/internal/checklist"
	"github.com/ShayCichocki/featcheck/internal/manifest"
	"github.com/ShayCichocki/featcheck/internal/structure"
)

// Verifier runs the three verification layers:
// 1. Feature verification (all features must be present)
// 2. Code structure analysis (advisory)
// 3. Checklist ledger count
type Verifier struct {
	checker  *manifest.Checker
	analyzer *structure.Analyzer
	gaps     *GapAnalyzer
	logger   *zap.Logger
}

// NewVerifier creates a new verifier.
func NewVerifier(checker *manifest.Checker, analyzer *structure.Analyzer, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{
		checker:  checker,
		analyzer: analyzer,
		gaps:     NewGapAnalyzer(),
		logger:   logger,
	}
}

// Input contains everything a verification run reads.
type Input struct {
	// Manifest maps features to required files.
	Manifest *manifest.Manifest
	// KeyFiles are analyzed for structure. Missing ones are reported, not failed.
	KeyFiles []string
	// Ledger is the claimed checklist.
	Ledger *checklist.Ledger
}

// Verdict is the final outcome of a run.
type Verdict struct {
	FeaturesComplete      bool `json:"features_complete"`
	ChecklistCountMatches bool `json:"checklist_count_matches"`
	OverallSuccess        bool `json:"overall_success"`
}

// NewVerdict combines the two independent signals.
func NewVerdict(featuresComplete, checklistCountMatches bool) Verdict {
	return Verdict{
		FeaturesComplete:      featuresComplete,
		ChecklistCountMatches: checklistCountMatches,
		OverallSuccess:        featuresComplete && checklistCountMatches,
	}
}

// ExitCode maps a verdict to the process exit code: 0 on success, 1 otherwise.
func ExitCode(v Verdict) int {
	if v.OverallSuccess {
		return 0
	}
	return 1
}

// ChecklistSnapshot is the ledger as seen by one run.
type ChecklistSnapshot struct {
	Items         []checklist.Item `json:"items"`
	ExpectedTotal int              `json:"expected_total"`
}

// VerificationResult contains the results of all three layers.
type VerificationResult struct {
	// RunID identifies this run in logs and JSON output.
	RunID string `json:"run_id"`
	// Verdict is the combined outcome.
	Verdict Verdict `json:"verdict"`
	// Layers contains results from each verification layer.
	Layers VerificationLayers `json:"layers"`
	// Features is the manifest check report.
	Features *manifest.Report `json:"features"`
	// Structure holds one summary per key file.
	Structure []structure.Summary `json:"structure"`
	// Checklist is the ledger snapshot.
	Checklist ChecklistSnapshot `json:"checklist"`
	// Gaps lists what is missing when the verdict is false.
	Gaps []Gap `json:"gaps,omitempty"`
	// GapSummary is a one-line digest of Gaps.
	GapSummary string `json:"gap_summary,omitempty"`
	// FailureReason explains why verification failed (if it did).
	FailureReason string `json:"failure_reason,omitempty"`
	// CompletionPercentage is the percentage of features present (0-100).
	CompletionPercentage float64 `json:"completion_percentage"`
	// Duration is the total time taken.
	Duration time.Duration `json:"duration"`
}

// VerificationLayers contains results from each layer.
type VerificationLayers struct {
	Features  *LayerResult `json:"features"`
	Structure *LayerResult `json:"structure"`
	Checklist *LayerResult `json:"checklist"`
}

// LayerResult contains the result from a single verification layer.
type LayerResult struct {
	// Name is the layer name (e.g., "Feature Verification").
	Name string `json:"name"`
	// Passed indicates if this layer passed.
	Passed bool `json:"passed"`
	// Advisory layers never affect the verdict.
	Advisory bool `json:"advisory,omitempty"`
	// Output is a one-line summary of the layer.
	Output string `json:"output"`
	// Duration is the time taken for this layer.
	Duration time.Duration `json:"duration"`
}

// Verify runs all three layers in sequence. Every layer runs regardless of
// earlier outcomes and the run is never cut short. The only error is a
// missing input or a malformed manifest.
func (v *Verifier) Verify(_ context.Context, input Input) (*VerificationResult, error) {
	startTime := time.Now()

	if input.Manifest == nil {
		return nil, fmt.Errorf("verify: no manifest provided")
	}
	if input.Ledger == nil {
		return nil, fmt.Errorf("verify: no checklist ledger provided")
	}

	result := &VerificationResult{
		RunID: uuid.New().String(),
	}
	log := v.logger.With(zap.String("run_id", result.RunID))

	// Layer 1: Feature Verification (STRICT)
	layer1, report, err := v.runFeatures(input)
	if err != nil {
		return nil, fmt.Errorf("feature verification: %w", err)
	}
	result.Layers.Features = layer1
	result.Features = report
	if report.Total > 0 {
		result.CompletionPercentage = float64(report.Implemented) / float64(report.Total) * 100
	} else {
		result.CompletionPercentage = 100
	}
	log.Info("layer complete", zap.String("layer", layer1.Name), zap.Bool("passed", layer1.Passed))

	// Layer 2: Code Structure Analysis (advisory)
	layer2, summaries := v.runStructure(input)
	result.Layers.Structure = layer2
	result.Structure = summaries
	log.Info("layer complete", zap.String("layer", layer2.Name), zap.String("output", layer2.Output))

	// Layer 3: Checklist Ledger
	layer3 := v.runChecklist(input)
	result.Layers.Checklist = layer3
	result.Checklist = ChecklistSnapshot{
		Items:         input.Ledger.Items(),
		ExpectedTotal: input.Ledger.ExpectedTotal(),
	}
	log.Info("layer complete", zap.String("layer", layer3.Name), zap.Bool("passed", layer3.Passed))

	result.Verdict = NewVerdict(layer1.Passed, layer3.Passed)
	if !result.Verdict.OverallSuccess {
		result.FailureReason = failureReason(result.Verdict)
		gaps := v.gaps.AnalyzeGaps(result)
		result.Gaps = gaps.Gaps
		result.GapSummary = gaps.Analysis
	}

	result.Duration = time.Since(startTime)
	log.Info("verification finished",
		zap.Bool("success", result.Verdict.OverallSuccess),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// runFeatures runs Layer 1: Feature Verification.
func (v *Verifier) runFeatures(input Input) (*LayerResult, *manifest.Report, error) {
	startTime := time.Now()
	layer := &LayerResult{Name: "Feature Verification"}

	report, err := v.checker.Check(input.Manifest)
	if err != nil {
		return nil, nil, err
	}

	layer.Passed = report.Complete()
	layer.Output = fmt.Sprintf("Features: %d/%d implemented", report.Implemented, report.Total)
	layer.Duration = time.Since(startTime)
	return layer, report, nil
}

// runStructure runs Layer 2: Code Structure Analysis.
func (v *Verifier) runStructure(input Input) (*LayerResult, []structure.Summary) {
	startTime := time.Now()
	layer := &LayerResult{
		Name:     "Code Structure Analysis",
		Passed:   true,
		Advisory: true,
	}

	if v.analyzer == nil {
		layer.Output = "No analyzer configured (skipped)"
		layer.Duration = time.Since(startTime)
		return layer, nil
	}

	summaries := v.analyzer.Analyze(input.KeyFiles)
	found := 0
	for _, s := range summaries {
		if s.Found && s.Err == nil {
			found++
		}
	}
	layer.Output = fmt.Sprintf("Analyzed %d/%d key files", found, len(summaries))
	layer.Duration = time.Since(startTime)
	return layer, summaries
}

// runChecklist runs Layer 3: Checklist Ledger.
func (v *Verifier) runChecklist(input Input) *LayerResult {
	startTime := time.Now()
	layer := &LayerResult{
		Name:   "Checklist Ledger",
		Passed: input.Ledger.CountMatches(),
		Output: fmt.Sprintf("Completed: %d/%d", input.Ledger.Len(), input.Ledger.ExpectedTotal()),
	}
	layer.Duration = time.Since(startTime)
	return layer
}

// failureReason explains which signals failed.
func failureReason(v Verdict) string {
	var reasons []string
	if !v.FeaturesComplete {
		reasons = append(reasons, "not all features are implemented")
	}
	if !v.ChecklistCountMatches {
		reasons = append(reasons, "checklist count does not match expected total")
	}
	return strings.Join(reasons, "; ")
}
