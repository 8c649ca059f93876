package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/hotspot-dev/hotspot/internal/config"
	"github.com/hotspot-dev/hotspot/internal/discover"
	"github.com/hotspot-dev/hotspot/internal/engine"
	"github.com/hotspot-dev/hotspot/internal/model"
	"github.com/hotspot-dev/hotspot/internal/render"
	"github.com/hotspot-dev/hotspot/internal/vcs"
)

func runAnalyze(cmd *cobra.Command, opts *runOptions) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := opts.toConfig(cmd)
	if err != nil {
		return &exitCodeErr{1, err}
	}
	if cfg.Quiet {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	if err := cfg.Validate(); err != nil {
		return &exitCodeErr{1, err}
	}

	if _, err := os.Stat(cfg.Target); err != nil {
		return &exitCodeErr{1, fmt.Errorf("target path %s: %w", cfg.Target, err)}
	}

	start := time.Now()
	logger.Info("analysis starting", "target", cfg.Target, "workers", cfg.Workers)

	languages := make([]model.Language, 0, len(cfg.Languages))
	for _, l := range cfg.Languages {
		languages = append(languages, model.Language(l))
	}

	filter := discover.DefaultFilterConfig()
	filter.LanguagesAllowed = languages
	filter.ExcludeGlobs = cfg.Exclude
	filter.IncludeHidden = cfg.IncludeHidden
	filter.MaxFileSizeBytes = int64(cfg.MaxFileSizeMB * 1024 * 1024)
	filter.RespectGitignore = cfg.RespectGitignore

	if cfg.OnlyChangedSince != "" {
		repoRoot, err := vcs.RepoRoot(cfg.Target)
		if err != nil {
			return &exitCodeErr{1, fmt.Errorf("--only-changed-since %s: %w", cfg.OnlyChangedSince, err)}
		}
		changed, err := vcs.ChangedFiles(repoRoot, cfg.OnlyChangedSince)
		if err != nil {
			return &exitCodeErr{1, fmt.Errorf("--only-changed-since %s: %w", cfg.OnlyChangedSince, err)}
		}
		filter.ChangedFilesOnly = changed
	}

	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if cfg.Quiet {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("analyzing"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	}

	report, err := engine.Analyze(engine.Config{
		Root:       cfg.Target,
		Filter:     filter,
		Thresholds: cfg.Thresholds(),
		Workers:    cfg.Workers,
		Progress:   progress,
		RunConfig: model.RunConfig{
			Target:           cfg.Target,
			Languages:        languages,
			ExcludeGlobs:     cfg.Exclude,
			IncludeHidden:    cfg.IncludeHidden,
			MaxFileSizeBytes: filter.MaxFileSizeBytes,
			RespectGitignore: cfg.RespectGitignore,
			OnlyChangedSince: cfg.OnlyChangedSince,
			CI:               cfg.CI,
			CIMaxCandidates:  cfg.CIMaxCandidates,
			Workers:          cfg.Workers,
		},
	})
	if err != nil {
		return &exitCodeErr{1, err}
	}
	logger.Info("analysis complete",
		"files", report.Summary.TotalFiles,
		"candidates", len(report.Candidates),
		"warnings", len(report.Warnings),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	postFilterLines(&report, cfg.MinLines, cfg.MaxLines)

	if err := emit(cmd, report, cfg); err != nil {
		return &exitCodeErr{1, err}
	}

	if cfg.CI && len(report.Candidates) > cfg.CIMaxCandidates {
		return &exitCodeErr{2, fmt.Errorf("%d refactoring candidates exceed --ci-max-candidates=%d", len(report.Candidates), cfg.CIMaxCandidates)}
	}
	return nil
}

// postFilterLines applies the post-analysis min_lines/max_lines filter from
// spec section 6; it trims the report's Files slice but leaves Summary and
// WalkStats describing the full run, since those reflect what was walked
// and parsed rather than what is displayed.
func postFilterLines(report *model.AnalysisReport, minLines, maxLines int) {
	if minLines <= 0 && maxLines <= 0 {
		return
	}
	kept := report.Files[:0:0]
	for _, f := range report.Files {
		if minLines > 0 && f.LinesOfCode < minLines {
			continue
		}
		if maxLines > 0 && f.LinesOfCode > maxLines {
			continue
		}
		kept = append(kept, f)
	}
	report.Files = kept
}

func emit(cmd *cobra.Command, report model.AnalysisReport, cfg config.Config) error {
	out := cmd.OutOrStdout()
	switch cfg.Format {
	case "json":
		return render.JSON(out, report, render.ModeFull)
	case "files":
		return render.JSON(out, report, render.ModeFiles)
	case "summary":
		return render.JSON(out, report, render.ModeSummary)
	default:
		render.Table(out, report, cfg.Sort, cfg.Limit, cfg.NoColor)
		if cfg.Verbose {
			render.VerboseWarnings(out, report.Warnings)
		}
		return nil
	}
}
