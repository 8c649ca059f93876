// Package vcs is the "changed-files-only" external provider spec section
// 4.D and 6 describe: it shells out to git to resolve a repository root and
// the files that changed relative to a commit ref. It is consulted only
// when --only-changed-since is set; the Walker still applies its full
// filter pipeline over whatever this package returns.
package vcs

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const gitTimeout = 10 * time.Second

// RepoRoot resolves the git repository root containing path by running
// `git rev-parse --show-toplevel`.
func RepoRoot(path string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = path
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not a git repository: %s (--only-changed-since requires one): %w", path, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ChangedFiles returns the absolute paths of files that changed relative to
// commitRef, combining unstaged diff output with staged (--cached) changes
// and deduplicating. Paths that no longer exist on disk are dropped.
func ChangedFiles(repoPath, commitRef string) ([]string, error) {
	root, err := RepoRoot(repoPath)
	if err != nil {
		return nil, err
	}

	unstaged, err := diffNameOnly(root, commitRef)
	if err != nil {
		return nil, fmt.Errorf("git diff failed for ref %q: %w", commitRef, err)
	}
	staged, err := diffNameOnly(root, "--cached")
	if err != nil {
		return nil, fmt.Errorf("reading staged files: %w", err)
	}

	seen := make(map[string]struct{})
	var files []string
	for _, rel := range append(unstaged, staged...) {
		if rel == "" {
			continue
		}
		abs := filepath.Join(root, rel)
		if _, ok := seen[abs]; ok {
			continue
		}
		if _, err := os.Stat(abs); err != nil {
			continue
		}
		seen[abs] = struct{}{}
		files = append(files, abs)
	}

	sort.Strings(files)
	return files, nil
}

func diffNameOnly(root, ref string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "diff", "--name-only", ref)
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	return lines, nil
}

// IsRepository reports whether path is inside a git repository.
func IsRepository(path string) bool {
	_, err := RepoRoot(path)
	return err == nil
}
