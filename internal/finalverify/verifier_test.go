package finalverify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ShayCichocki/featcheck/internal/checklist"
	"github.com/ShayCichocki/featcheck/internal/manifest"
	"github.com/ShayCichocki/featcheck/internal/structure"
)

// setupProject writes every default manifest file except those in skip.
func setupProject(t *testing.T, skip ...string) string {
	t.Helper()
	dir := t.TempDir()
	skipped := make(map[string]bool)
	for _, s := range skip {
		skipped[s] = true
	}
	for _, f := range manifest.Default().Features {
		for _, p := range f.Paths {
			if skipped[p] {
				continue
			}
			content := "public class " + p + " {\n    private int x;\n}\n"
			if err := os.WriteFile(filepath.Join(dir, p), []byte(content), 0644); err != nil {
				t.Fatalf("write %s: %v", p, err)
			}
		}
	}
	return dir
}

func newVerifier(dir string) *Verifier {
	return NewVerifier(
		manifest.NewChecker(dir, nil),
		structure.NewAnalyzer(dir, structure.DefaultMarkers(), nil),
		nil,
	)
}

func shortLedger() *checklist.Ledger {
	items := checklist.DefaultItems()
	return checklist.New(items[:len(items)-1], checklist.DefaultExpectedTotal)
}

func TestVerifyScenarios(t *testing.T) {
	tests := []struct {
		name     string
		skip     []string
		keyFiles []string
		ledger   *checklist.Ledger
		want     Verdict
		exitCode int
	}{
		{
			name:     "A: everything present",
			keyFiles: structure.DefaultKeyFiles(),
			ledger:   checklist.Default(),
			want:     Verdict{FeaturesComplete: true, ChecklistCountMatches: true, OverallSuccess: true},
			exitCode: 0,
		},
		{
			name:     "B: one file of multi-file feature missing",
			skip:     []string{"EnhancedBorrowDAO.java"},
			keyFiles: structure.DefaultKeyFiles(),
			ledger:   checklist.Default(),
			want:     Verdict{FeaturesComplete: false, ChecklistCountMatches: true, OverallSuccess: false},
			exitCode: 1,
		},
		{
			name:     "C: ledger one short",
			keyFiles: structure.DefaultKeyFiles(),
			ledger:   shortLedger(),
			want:     Verdict{FeaturesComplete: true, ChecklistCountMatches: false, OverallSuccess: false},
			exitCode: 1,
		},
		{
			name:     "D: missing key file is advisory",
			keyFiles: append(structure.DefaultKeyFiles(), "DoesNotExist.java"),
			ledger:   checklist.Default(),
			want:     Verdict{FeaturesComplete: true, ChecklistCountMatches: true, OverallSuccess: true},
			exitCode: 0,
		},
		{
			name:     "mismatch dominates missing files",
			skip:     []string{"AdvancedSearch.java"},
			keyFiles: structure.DefaultKeyFiles(),
			ledger:   shortLedger(),
			want:     Verdict{FeaturesComplete: false, ChecklistCountMatches: false, OverallSuccess: false},
			exitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupProject(t, tt.skip...)
			result, err := newVerifier(dir).Verify(context.Background(), Input{
				Manifest: manifest.Default(),
				KeyFiles: tt.keyFiles,
				Ledger:   tt.ledger,
			})
			if err != nil {
				t.Fatalf("Verify failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, result.Verdict); diff != "" {
				t.Errorf("verdict mismatch (-want +got):\n%s", diff)
			}
			if got := ExitCode(result.Verdict); got != tt.exitCode {
				t.Errorf("ExitCode = %d, want %d", got, tt.exitCode)
			}
			if len(result.Structure) != len(tt.keyFiles) {
				t.Errorf("expected %d structure rows, got %d", len(tt.keyFiles), len(result.Structure))
			}
			if !result.Layers.Structure.Advisory || !result.Layers.Structure.Passed {
				t.Error("structure layer should be advisory and always pass")
			}
			if result.RunID == "" {
				t.Error("expected a run ID")
			}
			if result.Verdict.OverallSuccess && len(result.Gaps) != 0 {
				t.Errorf("successful run should have no gaps, got %v", result.Gaps)
			}
			if !result.Verdict.OverallSuccess && result.FailureReason == "" {
				t.Error("failed run should explain why")
			}
			if !result.Verdict.OverallSuccess && result.GapSummary == "" {
				t.Error("failed run should summarize its gaps")
			}
			if result.Verdict.OverallSuccess && result.GapSummary != "" {
				t.Errorf("successful run should have no gap summary, got %q", result.GapSummary)
			}
		})
	}
}

func TestVerifyScenarioBOnlyAffectedFeatureMissing(t *testing.T) {
	dir := setupProject(t, "EnhancedUserDAO.java")
	result, err := newVerifier(dir).Verify(context.Background(), Input{
		Manifest: manifest.Default(),
		Ledger:   checklist.Default(),
	})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	for _, r := range result.Features.Results {
		wantPresent := r.Feature.Name != "Enhanced DAOs"
		if r.Present != wantPresent {
			t.Errorf("feature %q present = %v, want %v", r.Feature.Name, r.Present, wantPresent)
		}
	}
	if result.CompletionPercentage != 90 {
		t.Errorf("completion = %v, want 90", result.CompletionPercentage)
	}
}

func TestVerifyIdempotent(t *testing.T) {
	dir := setupProject(t, "BackupManager.java")
	v := newVerifier(dir)
	input := Input{
		Manifest: manifest.Default(),
		KeyFiles: structure.DefaultKeyFiles(),
		Ledger:   checklist.Default(),
	}

	first, err := v.Verify(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := v.Verify(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}

	if first.Verdict != second.Verdict {
		t.Errorf("verdicts differ: %+v vs %+v", first.Verdict, second.Verdict)
	}
	if diff := cmp.Diff(first.Features, second.Features); diff != "" {
		t.Errorf("feature results differ (-first +second):\n%s", diff)
	}
	if first.RunID == second.RunID {
		t.Error("each run should get its own ID")
	}
}

func TestVerifyMalformedManifest(t *testing.T) {
	v := newVerifier(t.TempDir())
	_, err := v.Verify(context.Background(), Input{
		Manifest: &manifest.Manifest{Features: []manifest.Feature{{Name: "Broken"}}},
		Ledger:   checklist.Default(),
	})
	if err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}

func TestVerifyMissingInputs(t *testing.T) {
	v := newVerifier(t.TempDir())
	if _, err := v.Verify(context.Background(), Input{Ledger: checklist.Default()}); err == nil {
		t.Error("expected error without manifest")
	}
	if _, err := v.Verify(context.Background(), Input{Manifest: manifest.Default()}); err == nil {
		t.Error("expected error without ledger")
	}
}

func TestNewVerdictTruthTable(t *testing.T) {
	for _, features := range []bool{true, false} {
		for _, ledger := range []bool{true, false} {
			v := NewVerdict(features, ledger)
			if v.OverallSuccess != (features && ledger) {
				t.Errorf("NewVerdict(%v, %v).OverallSuccess = %v", features, ledger, v.OverallSuccess)
			}
			code := ExitCode(v)
			if code != 0 && code != 1 {
				t.Errorf("exit code %d outside {0,1}", code)
			}
			if (code == 0) != v.OverallSuccess {
				t.Errorf("exit code %d does not match success %v", code, v.OverallSuccess)
			}
		}
	}
}
