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

// Package search reports which files under a directory tree contain a
// literal query substring. It never mutates anything.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/srcedit/pkg/encoding"
	"github.com/walteh/srcedit/pkg/history"
	"github.com/walteh/srcedit/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains the dependencies of a Searcher
type Options struct {
	// Codec reads file content with encoding fallback
	Codec *encoding.Codec
	// History is the caller-owned log that records completed searches
	History *history.Log
	// Patterns select the eligible files (doublestar globs, relative to
	// the search root)
	Patterns []string
}

// 🏭 New creates a searcher with the given options
func New(opts Options) (*Searcher, error) {
	if opts.Codec == nil {
		return nil, errors.Errorf("codec is required")
	}
	if opts.History == nil {
		return nil, errors.Errorf("history log is required")
	}
	return &Searcher{
		codec:   opts.Codec,
		history: opts.History,
		filter:  walker.NewFilter(opts.Patterns...),
	}, nil
}

// 🔍 Searcher scans eligible files for literal substrings
type Searcher struct {
	codec   *encoding.Codec
	history *history.Log
	filter  *walker.Filter
}

// 🔎 InFiles returns the paths of the eligible files under root whose
// content contains query at least once, in walk order. A file that cannot
// be read is treated as a non-match and skipped, so one unreadable file
// never aborts the search. One history entry records the query and hit
// count.
func (s *Searcher) InFiles(ctx context.Context, root, query string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	files, err := walker.Files(ctx, root, s.filter)
	if err != nil {
		return nil, errors.Errorf("enumerating files: %w", err)
	}

	var hits []string
	for _, path := range files {
		content, _, err := s.codec.ReadFile(ctx, path)
		if err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("skipping unreadable file")
			continue
		}
		if strings.Contains(content, query) {
			hits = append(hits, path)
		}
	}

	s.history.Append(fmt.Sprintf("Search for %q under %s completed: %d file(s) matched", query, root, len(hits)))
	return hits, nil
}
