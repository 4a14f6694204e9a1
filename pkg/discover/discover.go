// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package discover expands include/exclude glob patterns into file paths.
package discover

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options controls file discovery
type Options struct {
	Root    string   // Base directory patterns are relative to
	Include []string // Doublestar patterns or literal file paths
	Exclude []string // Doublestar patterns matched against ExcludeRoot-relative paths

	// ExcludeRoot is the directory exclude patterns are written against.
	// Defaults to Root.
	ExcludeRoot string
}

// 🔍 Files returns the files matching opts.Include minus opts.Exclude.
// Paths are joined to opts.Root. Results keep pattern order; matches of one
// pattern are sorted; duplicates are dropped.
func Files(ctx context.Context, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	root := orDefault(opts.Root, ".")

	excludeRoot, err := filepath.Abs(orDefault(opts.ExcludeRoot, root))
	if err != nil {
		return nil, errors.Errorf("resolving %s: %w", opts.ExcludeRoot, err)
	}

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	seen := make(map[string]bool)
	var files []string

	for _, pattern := range opts.Include {
		pattern = filepath.ToSlash(filepath.Clean(pattern))

		var matches []string
		if !hasMeta(pattern) {
			// literal paths must exist and are kept even when excluded
			path := pattern
			if !filepath.IsAbs(path) {
				path = filepath.Join(root, filepath.FromSlash(path))
			}
			info, err := os.Stat(path)
			if err != nil {
				return nil, errors.Errorf("reading %s: %w", pattern, err)
			}
			if info.IsDir() {
				return nil, errors.Errorf("%s is a directory", pattern)
			}
			matches = []string{path}
		} else {
			matches, err = expand(root, pattern, excludeRoot, opts.Exclude)
			if err != nil {
				return nil, err
			}
		}

		logger.Debug().Str("pattern", pattern).Int("matches", len(matches)).Msg("expanded pattern")

		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}

	return files, nil
}

// expand globs one pattern. The static prefix of the pattern becomes the
// filesystem base so patterns like ../docs/**/*.md and absolute patterns work.
// Exclusion is decided on the path relative to excludeRoot, which is absolute.
func expand(root, pattern, excludeRoot string, exclude []string) ([]string, error) {
	base, rest := doublestar.SplitPattern(pattern)
	if !filepath.IsAbs(base) {
		base = filepath.Join(root, filepath.FromSlash(base))
	}

	found, err := doublestar.Glob(os.DirFS(base), rest, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("expanding pattern %q: %w", pattern, err)
	}
	sort.Strings(found)

	matches := make([]string, 0, len(found))
	for _, f := range found {
		path := filepath.Join(base, filepath.FromSlash(f))
		if isExcluded(excludeRoot, path, exclude) {
			continue
		}
		matches = append(matches, path)
	}
	return matches, nil
}

func isExcluded(excludeRoot, path string, exclude []string) bool {
	if len(exclude) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(excludeRoot, abs)
	if err != nil {
		rel = abs
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range exclude {
		// patterns were validated up front
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

// hasMeta reports whether pattern needs globbing. A backslash alone does not
// count, so literal file names containing one are stat'ed as written.
func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
