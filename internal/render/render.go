// Package render turns an AnalysisReport into terminal or machine-readable
// output: a go-pretty table for humans, or JSON restricted to the full
// report, the files array, or the summary object, per spec section 6's
// emission modes.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hotspot-dev/hotspot/internal/model"
)

// Mode selects what JSON emission restricts to; it has no effect on Table.
type Mode string

const (
	ModeFull    Mode = "full"
	ModeFiles   Mode = "files"
	ModeSummary Mode = "summary"
)

// JSON writes report restricted to mode, per spec section 6's "Alternative
// emission modes" rule: files-only is an array, summary-only is an object.
func JSON(w io.Writer, report model.AnalysisReport, mode Mode) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	switch mode {
	case ModeFiles:
		return enc.Encode(report.Files)
	case ModeSummary:
		return enc.Encode(report.Summary)
	default:
		return enc.Encode(report)
	}
}

// Table renders every analyzed file as a human-readable table, sorted per
// sortBy and capped at limit (0 = no cap, meaning show all), followed by the
// refactoring candidates and a warning summary.
// noColor disables fatih/color's ANSI output for non-TTY destinations.
func Table(w io.Writer, report model.AnalysisReport, sortBy string, limit int, noColor bool) {
	if noColor {
		color.NoColor = true
	}

	rows := sortedFiles(report.Files, sortBy)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Path", "Lang", "Lines", "Funcs", "Methods", "Classes", "Cyclo", "Nesting", "Score"})

	highComplexity := color.New(color.FgRed, color.Bold)
	for _, f := range rows {
		score := fmt.Sprintf("%.2f", f.ComplexityScore)
		if f.ComplexityScore >= 10.0 {
			score = highComplexity.Sprint(score)
		}
		tbl.AppendRow(table.Row{
			f.Path, f.Language, humanize.Comma(int64(f.LinesOfCode)),
			f.Functions, f.Methods, f.Classes, f.CyclomaticComplexity, f.MaxNestingDepth, score,
		})
	}
	tbl.AppendFooter(table.Row{"", "", "", "", "", "", "", "", fmt.Sprintf("%d files", len(report.Files))})
	tbl.Render()

	renderCandidates(w, report.Candidates)
	renderWarningSummary(w, report.Warnings)
}

func renderCandidates(w io.Writer, candidates []model.RefactoringCandidate) {
	if len(candidates) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", color.New(color.FgYellow, color.Bold).Sprintf("Refactoring candidates (%d)", len(candidates)))

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Path", "Reasons"})
	for _, c := range candidates {
		tbl.AppendRow(table.Row{c.FileAnalysis.Path, reasonsText(c.Reasons)})
	}
	tbl.Render()
}

func reasonsText(reasons []model.RefactoringReason) string {
	out := ""
	for i, r := range reasons {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s(%v)", r.Kind, r.Value)
	}
	return out
}

func renderWarningSummary(w io.Writer, warnings []model.ParseWarning) {
	if len(warnings) == 0 {
		return
	}
	byKind := make(map[model.WarningKind]int)
	for _, wr := range warnings {
		byKind[wr.Kind]++
	}
	fmt.Fprintf(w, "\n%d warning(s):", len(warnings))
	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, " %s=%d", k, byKind[model.WarningKind(k)])
	}
	fmt.Fprintln(w)
}

// VerboseWarnings prints one line per warning, used when --verbose is set.
func VerboseWarnings(w io.Writer, warnings []model.ParseWarning) {
	for _, wr := range warnings {
		fmt.Fprintf(w, "  %s [%s] %s\n", wr.Path, wr.Kind, wr.Message)
	}
}

func sortedFiles(files []model.FileAnalysis, sortBy string) []model.FileAnalysis {
	rows := make([]model.FileAnalysis, len(files))
	copy(rows, files)

	less := func(i, j int) bool { return rows[i].Path < rows[j].Path }
	switch sortBy {
	case "lines":
		less = func(i, j int) bool { return rows[i].LinesOfCode > rows[j].LinesOfCode }
	case "functions":
		less = func(i, j int) bool { return rows[i].Functions > rows[j].Functions }
	case "methods":
		less = func(i, j int) bool { return rows[i].Methods > rows[j].Methods }
	case "classes":
		less = func(i, j int) bool { return rows[i].Classes > rows[j].Classes }
	case "complexity":
		less = func(i, j int) bool { return rows[i].ComplexityScore > rows[j].ComplexityScore }
	case "cyclomatic":
		less = func(i, j int) bool { return rows[i].CyclomaticComplexity > rows[j].CyclomaticComplexity }
	case "nesting":
		less = func(i, j int) bool { return rows[i].MaxNestingDepth > rows[j].MaxNestingDepth }
	case "path":
	}
	sort.SliceStable(rows, less)
	return rows
}
