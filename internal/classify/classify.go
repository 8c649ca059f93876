// Package classify implements the Candidate Classifier: it flags files that
// cross one or more refactoring thresholds and ranks them deterministically.
package classify

import (
	"sort"

	"github.com/hotspot-dev/hotspot/internal/model"
)

// Candidates evaluates every analysis against thresholds and returns the
// subset that crossed at least one, sorted by spec section 4.F's tie-break
// chain: complexity_score desc, cyclomatic_complexity desc, lines_of_code
// desc, path asc.
func Candidates(files []model.FileAnalysis, thresholds model.RefactoringThresholds) []model.RefactoringCandidate {
	var candidates []model.RefactoringCandidate
	for _, f := range files {
		if reasons := reasonsFor(f, thresholds); len(reasons) > 0 {
			candidates = append(candidates, model.RefactoringCandidate{FileAnalysis: f, Reasons: reasons})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].FileAnalysis, candidates[j].FileAnalysis
		if a.ComplexityScore != b.ComplexityScore {
			return a.ComplexityScore > b.ComplexityScore
		}
		if a.CyclomaticComplexity != b.CyclomaticComplexity {
			return a.CyclomaticComplexity > b.CyclomaticComplexity
		}
		if a.LinesOfCode != b.LinesOfCode {
			return a.LinesOfCode > b.LinesOfCode
		}
		return a.Path < b.Path
	})

	return candidates
}

// reasonsFor checks thresholds in the fixed evaluation order spec section
// 4.F mandates: HighComplexityScore, HighCyclomaticComplexity, LargeFile,
// TooManyFunctions. Comparisons are inclusive (>=).
func reasonsFor(f model.FileAnalysis, t model.RefactoringThresholds) []model.RefactoringReason {
	var reasons []model.RefactoringReason

	if f.ComplexityScore >= t.MaxComplexityScore {
		reasons = append(reasons, model.RefactoringReason{Kind: model.HighComplexityScore, Value: f.ComplexityScore})
	}
	if f.CyclomaticComplexity >= t.MaxCyclomaticComplexity {
		reasons = append(reasons, model.RefactoringReason{Kind: model.HighCyclomaticComplexity, Value: float64(f.CyclomaticComplexity)})
	}
	if f.LinesOfCode >= t.MaxLinesOfCode {
		reasons = append(reasons, model.RefactoringReason{Kind: model.LargeFile, Value: float64(f.LinesOfCode)})
	}
	if f.Functions+f.Methods >= t.MaxFunctions {
		reasons = append(reasons, model.RefactoringReason{Kind: model.TooManyFunctions, Value: float64(f.Functions + f.Methods)})
	}

	return reasons
}
