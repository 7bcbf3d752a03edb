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

// Package mutate applies literal substring replace and delete operations to
// single files. Matching is on raw decoded text, so targets may span line
// boundaries. Results are tagged (Changed, Unchanged, Failed) so callers
// can tell "nothing to change" apart from "could not read or write".
package mutate

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/srcedit/pkg/encoding"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Outcome classifies what happened to one file
type Outcome int

const (
	// Unchanged means the target substring was absent (or empty); the file
	// was not written.
	Unchanged Outcome = iota
	// Changed means at least one occurrence was replaced and the new
	// content was written.
	Changed
	// Failed means the file could not be read or written; Err carries the
	// reason.
	Failed
)

// 📝 String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// 📦 Result describes the effect of one mutation on one file
type Result struct {
	Path         string  // File the operation targeted
	Outcome      Outcome // What happened
	Replacements int     // Occurrences replaced (zero unless Changed)
	Err          error   // Failure reason (nil unless Failed)
}

// 🔍 DidChange reports whether the file's content was actually mutated.
// This is the collapsed boolean view: Failed and Unchanged both read as
// false, which is why Outcome and Err exist alongside it.
func (r Result) DidChange() bool {
	return r.Outcome == Changed
}

// 🎯 Mutator applies literal substring operations to files through an
// encoding-tolerant codec.
type Mutator struct {
	codec *encoding.Codec
}

// 🏭 New creates a mutator backed by the given codec.
func New(codec *encoding.Codec) (*Mutator, error) {
	if codec == nil {
		return nil, errors.Errorf("codec is required")
	}
	return &Mutator{codec: codec}, nil
}

// 🔄 Replace substitutes every occurrence of target in the file at path
// with replacement. If target is absent the file is not written at all.
func (m *Mutator) Replace(ctx context.Context, path, target, replacement string) Result {
	logger := zerolog.Ctx(ctx)

	// An empty target matches everywhere and means nothing; skip it
	// without touching the file.
	if target == "" {
		return Result{Path: path, Outcome: Unchanged}
	}

	content, enc, err := m.codec.ReadFile(ctx, path)
	if err != nil {
		return Result{Path: path, Outcome: Failed, Err: errors.Errorf("reading content: %w", err)}
	}

	count := strings.Count(content, target)
	if count == 0 {
		logger.Debug().Str("path", path).Str("target", target).Msg("target absent, skipping write")
		return Result{Path: path, Outcome: Unchanged}
	}

	next := strings.ReplaceAll(content, target, replacement)
	if err := m.codec.WriteFile(ctx, path, next); err != nil {
		return Result{Path: path, Outcome: Failed, Err: errors.Errorf("writing content: %w", err)}
	}

	logger.Debug().
		Str("path", path).
		Str("encoding", enc).
		Int("replacements", count).
		Msg("file mutated")

	return Result{Path: path, Outcome: Changed, Replacements: count}
}

// 🗑️ Delete removes every occurrence of target from the file at path.
// Equivalent to Replace with an empty replacement.
func (m *Mutator) Delete(ctx context.Context, path, target string) Result {
	return m.Replace(ctx, path, target, "")
}
