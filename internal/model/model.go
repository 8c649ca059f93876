// Package model defines the core data structures produced by the hotspot
// analysis engine: per-file metrics, warnings, aggregate summaries, and
// refactoring candidates.
package model

// Language is the closed set of source languages the engine understands.
type Language string

const (
	Rust       Language = "rust"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
	Python     Language = "python"
	Java       Language = "java"
	C          Language = "c"
	Cpp        Language = "cpp"
	Go         Language = "go"
)

// WarningKind enumerates the non-fatal, per-file diagnostics the parser can
// attach to a run without aborting it.
type WarningKind string

const (
	ParseError          WarningKind = "parse_error"
	UnsupportedEncoding WarningKind = "unsupported_encoding"
	SanitizationNote    WarningKind = "sanitization_note"
	OversizeTruncated   WarningKind = "oversize_truncated"
)

// ParseWarning is a non-fatal, per-file diagnostic.
type ParseWarning struct {
	Path    string
	Kind    WarningKind
	Message string
}

// FileAnalysis is the set of structural metrics computed for one
// successfully parsed file.
type FileAnalysis struct {
	Path                 string
	Language             Language
	LinesOfCode          int
	BlankLines           int
	CommentLines         int
	Functions            int
	Methods              int
	Classes              int
	CyclomaticComplexity int
	ComplexityScore       float64
	MaxNestingDepth       int
}

// TotalLines returns the physical line count this analysis accounts for.
func (f FileAnalysis) TotalLines() int {
	return f.LinesOfCode + f.BlankLines + f.CommentLines
}

// LanguageStats is the per-language slice of a ProjectSummary.
type LanguageStats struct {
	Language       Language
	FileCount      int
	TotalLines     int
	AvgFunctions   float64
	AvgClasses     float64
}

// RankedFile names a file alongside the single metric it was ranked by, used
// for the ProjectSummary's top-N lists.
type RankedFile struct {
	Path  string
	Value float64
}

// ProjectSummary aggregates every FileAnalysis produced in a run.
type ProjectSummary struct {
	TotalFiles     int
	TotalLines     int
	TotalFunctions int
	TotalMethods   int
	TotalClasses   int
	ByLanguage     []LanguageStats
	TopLargest     []RankedFile
	TopComplex     []RankedFile
}

// WalkStats records what the File Walker saw and why files were excluded.
type WalkStats struct {
	FilesFound          int
	FilesSkippedSize     int
	FilesSkippedLanguage int
	FilesSkippedHidden   int
	FilesSkippedIgnore   int
	DirectoriesScanned   int
	TotalEntriesScanned  int
}

// RefactoringThresholds are the configurable limits the Classifier compares
// each FileAnalysis against. Comparisons are inclusive (>=).
type RefactoringThresholds struct {
	MaxComplexityScore       float64
	MaxCyclomaticComplexity  int
	MaxLinesOfCode           int
	MaxFunctions             int
}

// DefaultThresholds returns the spec-mandated default limits.
func DefaultThresholds() RefactoringThresholds {
	return RefactoringThresholds{
		MaxComplexityScore:      10.0,
		MaxCyclomaticComplexity: 20,
		MaxLinesOfCode:          500,
		MaxFunctions:            20,
	}
}

// RefactoringReasonKind enumerates why a file was classified as a candidate.
type RefactoringReasonKind string

const (
	HighComplexityScore      RefactoringReasonKind = "high_complexity_score"
	HighCyclomaticComplexity RefactoringReasonKind = "high_cyclomatic_complexity"
	LargeFile                RefactoringReasonKind = "large_file"
	TooManyFunctions         RefactoringReasonKind = "too_many_functions"
)

// RefactoringReason pairs a reason kind with the metric value that triggered it.
type RefactoringReason struct {
	Kind  RefactoringReasonKind
	Value float64
}

// RefactoringCandidate is a FileAnalysis that crossed at least one threshold,
// together with every reason it did so, in fixed evaluation order.
type RefactoringCandidate struct {
	FileAnalysis FileAnalysis
	Reasons      []RefactoringReason
}

// AnalysisReport is the complete, serializable output of one analysis run.
type AnalysisReport struct {
	RunID       string
	GeneratedAt string
	Config      RunConfig
	Files       []FileAnalysis
	Summary     ProjectSummary
	WalkStats   WalkStats
	Warnings    []ParseWarning
	Candidates  []RefactoringCandidate
}

// RunConfig is the effective configuration that produced a report, echoed
// back for reproducibility.
type RunConfig struct {
	Target              string
	Languages           []Language
	ExcludeGlobs        []string
	IncludeHidden       bool
	MaxFileSizeBytes    int64
	RespectGitignore    bool
	Thresholds          RefactoringThresholds
	OnlyChangedSince    string
	CI                  bool
	CIMaxCandidates     int
	Workers             int
}
