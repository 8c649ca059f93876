// Package discover implements the File Walker: it enumerates candidate
// source files under a root path, applying gitignore rules, user exclusion
// globs, language filtering, hidden-file policy, and a size cap.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/hotspot-dev/hotspot/internal/langspec"
	"github.com/hotspot-dev/hotspot/internal/model"
)

// skipDirs are directory names the walker never descends into, mirroring
// what a real checkout's VCS/tooling directories and build caches hold;
// .gitignore/.ignore matching is applied independently of this fixed list.
var skipDirs = map[string]struct{}{
	"__pycache__":   {},
	"node_modules":  {},
	".git":          {},
	".hg":           {},
	".svn":          {},
	"venv":          {},
	".venv":         {},
	"target":        {},
	".tox":          {},
	".mypy_cache":   {},
	".ruff_cache":   {},
	".pytest_cache": {},
}

// FilterConfig is the Walker's input, per spec section 4.D.
type FilterConfig struct {
	LanguagesAllowed []model.Language // empty = all supported
	ExcludeGlobs     []string
	IncludeHidden    bool
	MaxFileSizeBytes int64
	RespectGitignore bool
	ExtraIgnoreFiles []string // additional gitignore-syntax files to load, relative to root
	ChangedFilesOnly []string // absolute paths from an external provider; nil = disabled
}

const defaultMaxFileSize = 10 * 1024 * 1024

// DefaultFilterConfig returns the spec-mandated defaults.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{MaxFileSizeBytes: defaultMaxFileSize, RespectGitignore: true}
}

// Walker discovers files under a root and reports why each rejected
// candidate was skipped.
type Walker struct{}

// New returns a ready-to-use Walker.
func New() *Walker { return &Walker{} }

// Files implements the Walker's single operation: (root, FilterConfig) →
// (sorted paths relative to root, WalkStats). root may be a file or a
// directory; for a file root the single result is root itself, as given.
func (w *Walker) Files(root string, cfg FilterConfig) ([]string, model.WalkStats, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, model.WalkStats{}, fmt.Errorf("stat %s: %w", root, err)
	}

	allowed := make(map[model.Language]struct{}, len(cfg.LanguagesAllowed))
	for _, l := range cfg.LanguagesAllowed {
		allowed[l] = struct{}{}
	}

	if !info.IsDir() {
		return w.singleFile(root, cfg, allowed)
	}

	if cfg.ChangedFilesOnly != nil {
		return w.filterProvidedList(root, cfg, allowed)
	}
	return w.walkDirectory(root, cfg, allowed)
}

func (w *Walker) singleFile(path string, cfg FilterConfig, allowed map[model.Language]struct{}) ([]string, model.WalkStats, error) {
	stats := model.WalkStats{FilesFound: 1, TotalEntriesScanned: 1}

	lang, ok := langspec.Detect(path)
	if !ok || (len(allowed) > 0 && !languageAllowed(lang, allowed)) {
		return nil, stats, fmt.Errorf("%s does not match the configured language filter", path)
	}

	size, err := fileSize(path)
	if err != nil {
		return nil, stats, fmt.Errorf("stat %s: %w", path, err)
	}
	if size > cfg.MaxFileSizeBytes {
		return nil, stats, fmt.Errorf("%s exceeds the maximum file size", path)
	}

	return []string{path}, stats, nil
}

// filterProvidedList applies the same filter pipeline as a directory walk,
// but over an externally supplied file list (spec section 4.D's
// "changed-files-only" provider path) instead of walking the filesystem.
func (w *Walker) filterProvidedList(root string, cfg FilterConfig, allowed map[model.Language]struct{}) ([]string, model.WalkStats, error) {
	gi := w.loadIgnore(root, cfg)
	var stats model.WalkStats
	var results []string

	base := root
	if a, err := filepath.Abs(root); err == nil {
		base = a
	}

	for _, abs := range cfg.ChangedFilesOnly {
		stats.TotalEntriesScanned++
		rel, err := filepath.Rel(base, abs)
		if err != nil {
			continue
		}
		if skip, reason := w.evaluate(rel, abs, cfg, allowed, gi); skip {
			countSkip(&stats, reason)
			continue
		}
		stats.FilesFound++
		results = append(results, rel)
	}

	sort.Strings(results)
	return results, stats, nil
}

func (w *Walker) walkDirectory(root string, cfg FilterConfig, allowed map[model.Language]struct{}) ([]string, model.WalkStats, error) {
	gi := w.loadIgnore(root, cfg)

	var stats model.WalkStats
	var results []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path == root {
			return nil
		}
		name := d.Name()
		stats.TotalEntriesScanned++

		if d.IsDir() {
			stats.DirectoriesScanned++
			if _, skip := skipDirs[name]; skip {
				return filepath.SkipDir
			}
			if strings.HasPrefix(name, ".") && !cfg.IncludeHidden {
				stats.FilesSkippedHidden++
				return filepath.SkipDir
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr == nil && cfg.RespectGitignore && gi != nil && gi.MatchesPath(rel) {
				stats.FilesSkippedIgnore++
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}

		if skip, reason := w.evaluate(rel, path, cfg, allowed, gi); skip {
			countSkip(&stats, reason)
			return nil
		}

		stats.FilesFound++
		results = append(results, rel)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	sort.Strings(results)
	return results, stats, nil
}

type skipReason int

const (
	skipNone skipReason = iota
	skipHidden
	skipIgnore
	skipLanguage
	skipSize
)

func countSkip(stats *model.WalkStats, reason skipReason) {
	switch reason {
	case skipHidden:
		stats.FilesSkippedHidden++
	case skipIgnore:
		stats.FilesSkippedIgnore++
	case skipLanguage:
		stats.FilesSkippedLanguage++
	case skipSize:
		stats.FilesSkippedSize++
	}
}

// evaluate applies the full filter pipeline to one candidate file, in the
// order hidden-policy -> gitignore/exclude-globs -> language -> size.
func (w *Walker) evaluate(rel, abs string, cfg FilterConfig, allowed map[model.Language]struct{}, gi *ignore.GitIgnore) (skip bool, reason skipReason) {
	if !cfg.IncludeHidden && hasHiddenComponent(rel) {
		return true, skipHidden
	}

	if cfg.RespectGitignore && gi != nil && gi.MatchesPath(rel) {
		return true, skipIgnore
	}
	for _, g := range cfg.ExcludeGlobs {
		if ok, _ := doublestar.Match(g, filepath.ToSlash(rel)); ok {
			return true, skipIgnore
		}
	}

	lang, ok := langspec.Detect(rel)
	if !ok || (len(allowed) > 0 && !languageAllowed(lang, allowed)) {
		return true, skipLanguage
	}

	size, err := fileSize(abs)
	if err != nil || size > cfg.MaxFileSizeBytes {
		return true, skipSize
	}

	return false, skipNone
}

func hasHiddenComponent(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

func languageAllowed(l model.Language, allowed map[model.Language]struct{}) bool {
	_, ok := allowed[l]
	return ok
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// loadIgnore compiles .gitignore (and .ignore, if present) at root into a
// single matcher. A missing file is not an error; it just means nothing is
// ignored from that source.
func (w *Walker) loadIgnore(root string, cfg FilterConfig) *ignore.GitIgnore {
	if !cfg.RespectGitignore {
		return nil
	}
	var lines []string
	for _, name := range append([]string{".gitignore", ".ignore"}, cfg.ExtraIgnoreFiles...) {
		path := filepath.Join(root, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		lines = append(lines, strings.Split(string(data), "\n")...)
	}
	if len(lines) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(lines...)
}
