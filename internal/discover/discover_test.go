package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hotspot-dev/hotspot/internal/model"
)

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFilesDiscoversSupportedLanguagesOnly(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")
	writeFile(t, dir, "README.md", "# hi\n")
	writeFile(t, dir, "lib.rs", "fn main() {}\n")

	paths, stats, err := New().Files(dir, DefaultFilterConfig())
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want 2 entries", paths)
	}
	if stats.FilesSkippedLanguage != 1 {
		t.Errorf("FilesSkippedLanguage = %d, want 1", stats.FilesSkippedLanguage)
	}
}

func TestFilesSkipsNodeModulesAndGit(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")
	writeFile(t, dir, "node_modules/pkg/index.js", "module.exports = {};\n")
	writeFile(t, dir, ".git/HEAD", "ref: refs/heads/main\n")

	paths, _, err := New().Files(dir, DefaultFilterConfig())
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(paths) != 1 || paths[0] != "main.go" {
		t.Fatalf("paths = %v, want [main.go]", paths)
	}
}

func TestFilesSkipsSymlinks(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "real.go", "package main\n")
	if err := os.Symlink(filepath.Join(dir, "real.go"), filepath.Join(dir, "link.go")); err != nil {
		t.Skip("symlinks not supported on this filesystem")
	}

	paths, _, err := New().Files(dir, DefaultFilterConfig())
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(paths) != 1 || paths[0] != "real.go" {
		t.Fatalf("paths = %v, want [real.go]", paths)
	}
}

func TestFilesRespectsGitignore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "ignored.go\n")
	writeFile(t, dir, "main.go", "package main\n")
	writeFile(t, dir, "ignored.go", "package main\n")

	paths, stats, err := New().Files(dir, DefaultFilterConfig())
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(paths) != 1 || paths[0] != "main.go" {
		t.Fatalf("paths = %v, want [main.go]", paths)
	}
	if stats.FilesSkippedIgnore != 1 {
		t.Errorf("FilesSkippedIgnore = %d, want 1", stats.FilesSkippedIgnore)
	}
}

func TestFilesSkipsHiddenUnlessIncluded(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, ".hidden.go", "package main\n")
	writeFile(t, dir, "visible.go", "package main\n")

	cfg := DefaultFilterConfig()
	paths, stats, err := New().Files(dir, cfg)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("paths = %v, want 1 entry", paths)
	}
	if stats.FilesSkippedHidden != 1 {
		t.Errorf("FilesSkippedHidden = %d, want 1", stats.FilesSkippedHidden)
	}

	cfg.IncludeHidden = true
	paths, _, err = New().Files(dir, cfg)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("with IncludeHidden, paths = %v, want 2 entries", paths)
	}
}

func TestFilesAppliesExcludeGlobs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package main\n")
	writeFile(t, dir, "vendor/b.go", "package main\n")

	cfg := DefaultFilterConfig()
	cfg.ExcludeGlobs = []string{"vendor/**"}
	paths, _, err := New().Files(dir, cfg)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(paths) != 1 || paths[0] != "a.go" {
		t.Fatalf("paths = %v, want [a.go]", paths)
	}
}

func TestFilesAppliesSizeLimit(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "small.go", "package main\n")
	writeFile(t, dir, "big.go", string(make([]byte, 100)))

	cfg := DefaultFilterConfig()
	cfg.MaxFileSizeBytes = 10
	paths, stats, err := New().Files(dir, cfg)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("paths = %v, want none (both exceed the 10-byte cap)", paths)
	}
	if stats.FilesSkippedSize != 2 {
		t.Errorf("FilesSkippedSize = %d, want 2", stats.FilesSkippedSize)
	}
}

func TestFilesRestrictsByLanguageAllowlist(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package main\n")
	writeFile(t, dir, "b.py", "x = 1\n")

	cfg := DefaultFilterConfig()
	cfg.LanguagesAllowed = []model.Language{model.Python}
	paths, _, err := New().Files(dir, cfg)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(paths) != 1 || paths[0] != "b.py" {
		t.Fatalf("paths = %v, want [b.py]", paths)
	}
}

func TestFilesSingleFileTarget(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "only.go", "package main\n")

	paths, stats, err := New().Files(path, DefaultFilterConfig())
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(paths) != 1 || paths[0] != path {
		t.Fatalf("paths = %v, want [%s]", paths, path)
	}
	if stats.FilesFound != 1 {
		t.Errorf("FilesFound = %d, want 1", stats.FilesFound)
	}
}

func TestFilesSingleFileTargetRejectsUnsupportedLanguage(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.md", "# hi\n")

	if _, _, err := New().Files(path, DefaultFilterConfig()); err == nil {
		t.Fatal("expected an error for an unsupported single-file target")
	}
}

func TestFilesResultsAreSorted(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "z.go", "package main\n")
	writeFile(t, dir, "a.go", "package main\n")
	writeFile(t, dir, "m.go", "package main\n")

	paths, _, err := New().Files(dir, DefaultFilterConfig())
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	want := []string{"a.go", "m.go", "z.go"}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], p)
		}
	}
}

func TestFilesChangedOnlyAppliesFilterPipeline(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	keep := writeFile(t, dir, "keep.go", "package main\n")
	writeFile(t, dir, "notes.md", "# hi\n")

	cfg := DefaultFilterConfig()
	cfg.ChangedFilesOnly = []string{keep, filepath.Join(dir, "notes.md")}
	paths, stats, err := New().Files(dir, cfg)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(paths) != 1 || paths[0] != "keep.go" {
		t.Fatalf("paths = %v, want [keep.go]", paths)
	}
	if stats.FilesSkippedLanguage != 1 {
		t.Errorf("FilesSkippedLanguage = %d, want 1", stats.FilesSkippedLanguage)
	}
}
