// Package finalverify combines the independent completion checks into one
// pass/fail verdict.
//
// # Overview
//
// A verification run has three layers, always executed in this order:
//
//  1. Feature Verification - STRICT: every path of every manifest feature
//     must exist under the base directory
//  2. Code Structure Analysis - advisory keyword counts for key files; never
//     affects the verdict
//  3. Checklist Ledger - the claimed item count must equal the expected total
//
// Layers 1 and 3 are computed by separate packages (internal/manifest and
// internal/checklist) and only meet here:
//
//	OverallSuccess = FeaturesComplete && ChecklistCountMatches
//
// A ledger that claims more or fewer items than expected fails the run even
// when every file exists, and the reverse.
//
// # Usage
//
//	verifier := finalverify.NewVerifier(
//	    manifest.NewChecker(basePath, logger),
//	    structure.NewAnalyzer(basePath, structure.DefaultMarkers(), logger),
//	    logger,
//	)
//	result, err := verifier.Verify(ctx, finalverify.Input{
//	    Manifest: manifest.Default(),
//	    KeyFiles: structure.DefaultKeyFiles(),
//	    Ledger:   checklist.Default(),
//	})
//	if err != nil {
//	    return err // malformed manifest
//	}
//	os.Exit(finalverify.ExitCode(result.Verdict))
//
// # Gap Analysis
//
// When the verdict is false, GapAnalyzer lists what is missing: each
// incomplete feature with its absent paths, and the ledger drift if the
// counts disagree.
//
// # Error Handling
//
// Missing files and count mismatches are results, not errors. Verify only
// returns an error for a malformed manifest; callers map it to exit code 1.
package finalverify
