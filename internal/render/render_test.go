package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hotspot-dev/hotspot/internal/model"
)

func sampleReport() model.AnalysisReport {
	return model.AnalysisReport{
		RunID:       "test-run",
		GeneratedAt: "2026-08-03T00:00:00Z",
		Files: []model.FileAnalysis{
			{Path: "a.go", Language: model.Go, LinesOfCode: 10, Functions: 1, ComplexityScore: 1.5},
			{Path: "b.go", Language: model.Go, LinesOfCode: 900, Functions: 5, ComplexityScore: 12.0},
		},
		Summary: model.ProjectSummary{TotalFiles: 2, TotalLines: 910},
		Candidates: []model.RefactoringCandidate{
			{FileAnalysis: model.FileAnalysis{Path: "b.go"}, Reasons: []model.RefactoringReason{
				{Kind: model.LargeFile, Value: 900},
			}},
		},
		Warnings: []model.ParseWarning{
			{Path: "c.go", Kind: model.ParseError, Message: "syntax error"},
		},
	}
}

func TestJSONFullIncludesAllTopLevelFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := JSON(&buf, sampleReport(), ModeFull); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"RunID", "GeneratedAt", "Files", "Summary", "Warnings", "Candidates"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing field %q in full JSON output", key)
		}
	}
}

func TestJSONFilesModeIsAnArray(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := JSON(&buf, sampleReport(), ModeFiles); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var decoded []model.FileAnalysis
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected a JSON array, got: %s (%v)", buf.String(), err)
	}
	if len(decoded) != 2 {
		t.Errorf("decoded = %d entries, want 2", len(decoded))
	}
}

func TestJSONSummaryModeIsAnObject(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := JSON(&buf, sampleReport(), ModeSummary); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var decoded model.ProjectSummary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected a JSON object, got: %s (%v)", buf.String(), err)
	}
	if decoded.TotalFiles != 2 {
		t.Errorf("TotalFiles = %d, want 2", decoded.TotalFiles)
	}
}

func TestTableRendersFilesAndCandidates(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Table(&buf, sampleReport(), "complexity", 0, true)
	out := buf.String()
	if !strings.Contains(out, "a.go") || !strings.Contains(out, "b.go") {
		t.Errorf("table output missing file paths: %s", out)
	}
	if !strings.Contains(out, "Refactoring candidates") {
		t.Errorf("table output missing candidates section: %s", out)
	}
	if !strings.Contains(out, "warning(s)") {
		t.Errorf("table output missing warning summary: %s", out)
	}
}

func TestTableRespectsLimit(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Table(&buf, sampleReport(), "complexity", 1, true)
	out := buf.String()
	if !strings.Contains(out, "b.go") {
		t.Errorf("expected the higher-complexity file to survive the limit: %s", out)
	}
	if strings.Contains(out, "a.go") {
		t.Errorf("expected a.go to be cut by limit=1: %s", out)
	}
}

func TestSortedFilesOrdersByRequestedField(t *testing.T) {
	t.Parallel()
	files := []model.FileAnalysis{
		{Path: "a.go", LinesOfCode: 10},
		{Path: "b.go", LinesOfCode: 900},
	}
	got := sortedFiles(files, "lines")
	if got[0].Path != "b.go" {
		t.Errorf("sortedFiles(lines)[0] = %q, want b.go", got[0].Path)
	}
}
