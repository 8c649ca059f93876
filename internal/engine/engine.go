// Package engine implements the Analysis Engine: it drives the whole
// pipeline (walker -> parallel parse -> aggregation -> classification) and
// owns the run configuration, per spec section 4.E.
package engine

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hotspot-dev/hotspot/internal/classify"
	"github.com/hotspot-dev/hotspot/internal/discover"
	"github.com/hotspot-dev/hotspot/internal/fileparse"
	"github.com/hotspot-dev/hotspot/internal/langspec"
	"github.com/hotspot-dev/hotspot/internal/model"
)

// ProgressFunc is called after each file finishes parsing, with the number
// of files completed so far and the total dispatched. Hosts (the CLI) wire
// this to a progress bar; the engine has no rendering opinion.
type ProgressFunc func(done, total int)

// Config is everything the Analysis Engine needs to run once.
type Config struct {
	Root       string
	Filter     discover.FilterConfig
	Thresholds model.RefactoringThresholds
	Workers    int // 0 = runtime.GOMAXPROCS(0)
	Progress   ProgressFunc
	RunConfig  model.RunConfig // echoed back into the report for reproducibility
}

// Analyze runs the full pipeline described in spec section 4.E and returns
// the complete report.
func Analyze(cfg Config) (model.AnalysisReport, error) {
	walker := discover.New()
	relPaths, walkStats, err := walker.Files(cfg.Root, cfg.Filter)
	if err != nil {
		return model.AnalysisReport{}, fmt.Errorf("walking %s: %w", cfg.Root, err)
	}

	analyses, warnings := parseAll(cfg, relPaths)

	sort.Slice(analyses, func(i, j int) bool { return analyses[i].Path < analyses[j].Path })

	summary := aggregate(analyses)
	candidates := classify.Candidates(analyses, cfg.Thresholds)

	runCfg := cfg.RunConfig
	runCfg.Thresholds = cfg.Thresholds

	return model.AnalysisReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Config:      runCfg,
		Files:       analyses,
		Summary:     summary,
		WalkStats:   walkStats,
		Warnings:    warnings,
		Candidates:  candidates,
	}, nil
}

type parseJob struct {
	index int
	path  string // relative to cfg.Root, or cfg.Root itself for a single-file root
}

type parseResult struct {
	index    int
	analysis *model.FileAnalysis
	warnings []model.ParseWarning
}

// parseAll dispatches every discovered file to a fixed worker pool. Each
// worker owns its own *fileparse.Parser (one tree-sitter parser per
// language, lazily constructed) for the run's duration; parser objects are
// never shared across goroutines, per spec section 4.E's thread-local reuse
// rule.
func parseAll(cfg Config, relPaths []string) ([]model.FileAnalysis, []model.ParseWarning) {
	total := len(relPaths)
	if total == 0 {
		return nil, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > total {
		workers = total
	}

	jobs := make(chan parseJob, total)
	results := make(chan parseResult, total)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := fileparse.New()
			for job := range jobs {
				results <- runOne(cfg.Root, job, p)
			}
		}()
	}

	for i, rel := range relPaths {
		jobs <- parseJob{index: i, path: rel}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	analyses := make([]*model.FileAnalysis, total)
	warningSets := make([][]model.ParseWarning, total)

	done := 0
	for r := range results {
		analyses[r.index] = r.analysis
		warningSets[r.index] = r.warnings
		done++
		if cfg.Progress != nil {
			cfg.Progress(done, total)
		}
	}

	var flat []model.FileAnalysis
	var allWarnings []model.ParseWarning
	for i, a := range analyses {
		if a != nil {
			flat = append(flat, *a)
		}
		allWarnings = append(allWarnings, warningSets[i]...)
	}

	return flat, allWarnings
}

func runOne(root string, job parseJob, p *fileparse.Parser) parseResult {
	abs := filepath.Join(root, job.path)
	if job.path == root {
		abs = root
	}
	lang, ok := langspec.Detect(job.path)
	if !ok {
		return parseResult{index: job.index}
	}

	source, err := os.ReadFile(abs)
	if err != nil {
		return parseResult{index: job.index, warnings: []model.ParseWarning{{
			Path:    job.path,
			Kind:    model.ParseError,
			Message: fmt.Sprintf("reading file: %v", err),
		}}}
	}

	res := p.Parse(job.path, lang, source)
	return parseResult{index: job.index, analysis: res.Analysis, warnings: res.Warnings}
}

// aggregate builds the ProjectSummary: sums, per-language breakdown, and
// top-10 lists by lines of code and by complexity score.
func aggregate(files []model.FileAnalysis) model.ProjectSummary {
	summary := model.ProjectSummary{TotalFiles: len(files)}

	type langAgg struct {
		count     int
		lines     int
		functions int
		classes   int
	}
	byLang := make(map[model.Language]*langAgg)

	for _, f := range files {
		summary.TotalLines += f.TotalLines()
		summary.TotalFunctions += f.Functions
		summary.TotalMethods += f.Methods
		summary.TotalClasses += f.Classes

		agg, ok := byLang[f.Language]
		if !ok {
			agg = &langAgg{}
			byLang[f.Language] = agg
		}
		agg.count++
		agg.lines += f.TotalLines()
		agg.functions += f.Functions + f.Methods
		agg.classes += f.Classes
	}

	var languages []model.Language
	for l := range byLang {
		languages = append(languages, l)
	}
	sort.Slice(languages, func(i, j int) bool { return languages[i] < languages[j] })

	for _, l := range languages {
		agg := byLang[l]
		stats := model.LanguageStats{
			Language:   l,
			FileCount:  agg.count,
			TotalLines: agg.lines,
		}
		if agg.count > 0 {
			stats.AvgFunctions = roundTo2(float64(agg.functions) / float64(agg.count))
			stats.AvgClasses = roundTo2(float64(agg.classes) / float64(agg.count))
		}
		summary.ByLanguage = append(summary.ByLanguage, stats)
	}

	summary.TopLargest = topN(files, 10, func(f model.FileAnalysis) float64 { return float64(f.LinesOfCode) })
	summary.TopComplex = topN(files, 10, func(f model.FileAnalysis) float64 { return f.ComplexityScore })

	return summary
}

func topN(files []model.FileAnalysis, n int, metric func(model.FileAnalysis) float64) []model.RankedFile {
	ranked := make([]model.RankedFile, len(files))
	for i, f := range files {
		ranked[i] = model.RankedFile{Path: f.Path, Value: metric(f)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Path < ranked[j].Path
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
