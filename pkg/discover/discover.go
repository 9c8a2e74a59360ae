// Package discover expands file patterns into container paths.
package discover

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const recursive = "**"

// Expand resolves each pattern and returns the sorted, de-duplicated set of
// regular files. Besides the usual glob syntax a "**" segment matches any
// number of directories, including none.
func Expand(patterns ...string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, pattern := range patterns {
		var matches []string
		var err error
		if strings.Contains(pattern, recursive) {
			matches, err = walkGlob(pattern)
		} else {
			matches, err = filepath.Glob(pattern)
		}
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if isRegular(m) {
				add(m)
			}
		}
	}

	sort.Strings(out)
	return out, nil
}

func walkGlob(pattern string) ([]string, error) {
	pattern = filepath.ToSlash(pattern)
	idx := strings.Index(pattern, recursive)
	prefix := strings.TrimSuffix(pattern[:idx], "/")
	if prefix == "" {
		prefix = "."
	}
	rest := strings.TrimPrefix(pattern[idx+len(recursive):], "/")
	if rest == "" {
		rest = "*"
	}
	restParts := strings.Split(rest, "/")
	if _, err := filepath.Match(rest, ""); err != nil {
		return nil, err
	}

	roots, err := walkRoots(filepath.FromSlash(prefix))
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, root := range roots {
		found, err := walkRoot(root, restParts)
		if err != nil {
			return nil, err
		}
		matches = append(matches, found...)
	}
	return matches, nil
}

// walkRoots resolves the part of a pattern before "**" to the directories
// to walk. A literal prefix that does not exist yields no roots.
func walkRoots(prefix string) ([]string, error) {
	if !hasMeta(prefix) {
		info, err := os.Stat(prefix)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, nil
		}
		return []string{prefix}, nil
	}

	candidates, err := filepath.Glob(prefix)
	if err != nil {
		return nil, err
	}
	var roots []string
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			roots = append(roots, c)
		}
	}
	return roots, nil
}

func walkRoot(root string, restParts []string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// unreadable directories below the root are skipped
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if matchTail(strings.Split(filepath.ToSlash(rel), "/"), restParts) {
			matches = append(matches, path)
		}
		return nil
	})
	return matches, err
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// matchTail matches the last len(want) segments of got against want.
func matchTail(got, want []string) bool {
	if len(got) < len(want) {
		return false
	}
	got = got[len(got)-len(want):]
	for i := range want {
		if ok, _ := filepath.Match(want[i], got[i]); !ok {
			return false
		}
	}
	return true
}
