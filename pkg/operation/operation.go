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

package operation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/srcedit/pkg/history"
	"github.com/walteh/srcedit/pkg/mutate"
	"github.com/walteh/srcedit/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// 📦 ChangeSet is the sorted list of file paths actually mutated by one
// directory-level operation. A path appears iff the target substring was
// present in the file's pre-mutation content.
type ChangeSet []string

// 🔧 Options contains the dependencies of an Operator
type Options struct {
	// Mutator applies single-file replace and delete operations
	Mutator *mutate.Mutator
	// History is the caller-owned log that records completed operations
	History *history.Log
	// Patterns select the eligible files (doublestar globs, relative to
	// the operation root)
	Patterns []string
}

// 🏭 New creates an operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Mutator == nil {
		return nil, errors.Errorf("mutator is required")
	}
	if opts.History == nil {
		return nil, errors.Errorf("history log is required")
	}
	return &Operator{
		mutator: opts.Mutator,
		history: opts.History,
		filter:  walker.NewFilter(opts.Patterns...),
	}, nil
}

// 🎮 Operator applies mutations across every eligible file under a root
type Operator struct {
	mutator *mutate.Mutator
	history *history.Log
	filter  *walker.Filter
}

// 🔄 ReplaceInDirectory replaces every occurrence of target with
// replacement in each eligible file under root. It returns the sorted set
// of files that actually changed and appends exactly one history entry
// after the full scan, regardless of how many files were touched.
func (o *Operator) ReplaceInDirectory(ctx context.Context, root, target, replacement string) (ChangeSet, error) {
	changes, err := o.run(ctx, root, func(path string) mutate.Result {
		return o.mutator.Replace(ctx, path, target, replacement)
	})
	if err != nil {
		return nil, err
	}

	o.history.Append(fmt.Sprintf("Replaced %q with %q under %s: %d file(s) changed%s",
		target, replacement, root, len(changes), describeChanges(changes)))
	return changes, nil
}

// 🗑️ DeleteFromDirectory removes every occurrence of target from each
// eligible file under root. Same contract as ReplaceInDirectory.
func (o *Operator) DeleteFromDirectory(ctx context.Context, root, target string) (ChangeSet, error) {
	changes, err := o.run(ctx, root, func(path string) mutate.Result {
		return o.mutator.Delete(ctx, path, target)
	})
	if err != nil {
		return nil, err
	}

	o.history.Append(fmt.Sprintf("Deleted %q under %s: %d file(s) changed%s",
		target, root, len(changes), describeChanges(changes)))
	return changes, nil
}

// 🏃 run walks the eligible files and applies one mutation to each.
// Failed files are logged distinctly and never abort the batch; only an
// unwalkable root is an error.
func (o *Operator) run(ctx context.Context, root string, apply func(path string) mutate.Result) (ChangeSet, error) {
	logger := zerolog.Ctx(ctx)

	files, err := walker.Files(ctx, root, o.filter)
	if err != nil {
		return nil, errors.Errorf("enumerating files: %w", err)
	}

	var changes ChangeSet
	for _, path := range files {
		res := apply(path)
		switch res.Outcome {
		case mutate.Changed:
			changes = append(changes, res.Path)
		case mutate.Failed:
			logger.Warn().Str("path", res.Path).Err(res.Err).Msg("file could not be mutated")
		}
	}

	// WalkDir order is already lexical; sorting pins the guarantee even if
	// the walk strategy changes.
	sort.Strings(changes)
	return changes, nil
}

// 📝 describeChanges names the changed files in a history entry
func describeChanges(changes ChangeSet) string {
	if len(changes) == 0 {
		return ""
	}
	return ": " + strings.Join(changes, ", ")
}
