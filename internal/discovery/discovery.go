// Package discovery expands file arguments and glob patterns into the
// list of documents to score, honoring configured ignore patterns.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// Options controls how file discovery behaves.
type Options struct {
	// Patterns is a list of file paths or doublestar glob patterns
	// (e.g. "docs/**/*.md"). An empty list discovers nothing.
	Patterns []string

	// Ignore lists glob patterns; matching files are dropped. Patterns
	// match against slash-separated paths.
	Ignore []string
}

// Discover expands the patterns, applies ignore filtering, and returns
// a deduplicated, sorted file list. A literal path that does not exist
// is an error; a glob pattern matching nothing is not.
func Discover(opts Options) ([]string, error) {
	ignore, err := compileIgnore(opts.Ignore)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		path = filepath.Clean(path)
		if seen[path] {
			return
		}
		seen[path] = true
		if ignored(ignore, path) {
			return
		}
		files = append(files, path)
	}

	for _, pattern := range opts.Patterns {
		if !isGlobPattern(pattern) {
			info, err := os.Stat(pattern)
			if err != nil {
				return nil, fmt.Errorf("stat %q: %w", pattern, err)
			}
			if info.IsDir() {
				return nil, fmt.Errorf("%q is a directory (use a glob like %q)", pattern, pattern+"/**/*.md")
			}
			add(pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			add(m)
		}
	}

	sort.Strings(files)
	return files, nil
}

func isGlobPattern(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func compileIgnore(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func ignored(ignore []glob.Glob, path string) bool {
	slashed := filepath.ToSlash(path)
	for _, g := range ignore {
		if g.Match(slashed) {
			return true
		}
	}
	return false
}
