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

// Package walker enumerates the regular files under a directory tree in a
// stable, lexical order, so repeated runs over an unchanged tree visit
// files identically. Eligibility filtering stays at the call site via a
// Filter, keeping the walker reusable across replace, check, and search.
package walker

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Filter selects eligible files by glob pattern. Patterns use
// doublestar syntax (e.g. "**/*.py") and are matched against the
// slash-separated path relative to the walk root. A nil Filter matches
// every file.
type Filter struct {
	patterns []string
}

// 🏭 NewFilter creates a filter from include patterns.
func NewFilter(patterns ...string) *Filter {
	return &Filter{patterns: patterns}
}

// 🔍 Match reports whether the relative (slash-form) path is eligible.
func (f *Filter) Match(ctx context.Context, relPath string) bool {
	if f == nil || len(f.patterns) == 0 {
		return true
	}

	logger := zerolog.Ctx(ctx)
	for _, pattern := range f.patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", relPath).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// 🚶 Files returns every regular file under root that the filter accepts,
// in lexical walk order. Unreadable subdirectories are skipped with a
// debug log; only a root that cannot be walked at all yields an error.
func Files(ctx context.Context, root string, filter *Filter) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var files []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Debug().Str("path", path).Err(err).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("skipping entry outside root")
			return nil
		}
		if filter.Match(ctx, filepath.ToSlash(rel)) {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.Errorf("walking %s: %w", root, walkErr)
	}

	return files, nil
}
