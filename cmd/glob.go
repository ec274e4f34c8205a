// Copyright © 2026 The mpvedit authors

package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/mpvex/mpvedit/complete"
)

// expandArgs expands arguments, resolving patterns ending with "/..." to all
// config files found recursively under the given directory, then drops
// paths matching any exclude pattern. Non-pattern arguments pass through
// unchanged.
func expandArgs(args, excludes []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if dir, ok := strings.CutSuffix(arg, "/..."); ok {
			if dir == "" {
				dir = "."
			}
			files, err := findConfigFiles(dir)
			if err != nil {
				return nil, fmt.Errorf("expanding %s: %w", arg, err)
			}
			out = append(out, files...)
		} else {
			out = append(out, arg)
		}
	}
	return filterExcludes(out, excludes), nil
}

func findConfigFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if complete.KindForPath(path) == complete.KindConfig {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// filterExcludes drops every path that matches one of the patterns.
func filterExcludes(paths, excludes []string) []string {
	if len(excludes) == 0 {
		return paths
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !matchesAny(p, excludes) {
			out = append(out, p)
		}
	}
	return out
}

// matchesAny reports whether path, its base name, or any of its
// directory components matches one of the glob patterns.
func matchesAny(path string, patterns []string) bool {
	components := splitPath(path)
	for _, pat := range patterns {
		if ok, _ := filepath.Match(pat, path); ok {
			return true
		}
		for _, c := range components {
			if ok, _ := filepath.Match(pat, c); ok {
				return true
			}
		}
	}
	return false
}

// splitPath returns the components of a slash or OS separated path.
func splitPath(path string) []string {
	return strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' })
}
