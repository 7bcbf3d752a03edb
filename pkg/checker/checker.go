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

// Package checker validates the syntax of source files after mutation (or
// on demand). Concrete checkers are pluggable and keyed by file
// extension; the validator core only iterates, collects, and never aborts
// on a single file's failure.
package checker

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/srcedit/pkg/encoding"
	"github.com/walteh/srcedit/pkg/history"
	"github.com/walteh/srcedit/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Checker is a parse-check capability for one file format
type Checker interface {
	// 📝 Name identifies the checker in logs
	Name() string

	// 🔍 CanCheck reports whether this checker handles the given file
	CanCheck(filename string) bool

	// ✅ Check parses content and returns the parser's diagnostic on
	// failure
	Check(ctx context.Context, path string, content string) error
}

var (
	// 🗺️ checkers is the list of registered checkers
	checkers []Checker
)

// 📝 Register registers a checker
func Register(c Checker) {
	checkers = append(checkers, c)
}

// 🎯 For returns the checker that handles the given file, or nil if the
// file is not a checkable format
func For(filename string) Checker {
	for _, c := range checkers {
		if c.CanCheck(filename) {
			return c
		}
	}
	return nil
}

// ❌ ValidationError records one file that failed its syntax check
type ValidationError struct {
	Path    string // File that failed
	Message string // Parser diagnostic
}

// 📝 String renders the error the way the shell prints it
func (e ValidationError) String() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// 🔧 Options contains the dependencies of a Validator
type Options struct {
	// Codec reads file content with encoding fallback
	Codec *encoding.Codec
	// History is the caller-owned log that records completed checks
	History *history.Log
}

// 🏭 NewValidator creates a validator with the given options
func NewValidator(opts Options) (*Validator, error) {
	if opts.Codec == nil {
		return nil, errors.Errorf("codec is required")
	}
	if opts.History == nil {
		return nil, errors.Errorf("history log is required")
	}
	return &Validator{codec: opts.Codec, history: opts.History}, nil
}

// ✅ Validator re-parses every checkable file under a root
type Validator struct {
	codec   *encoding.Codec
	history *history.Log
}

// 🔍 CheckTree parses every file under root that has a registered
// checker. Each file is checked independently: a parse failure yields one
// ValidationError and never stops the scan. A file that cannot even be
// read is reported the same way, so a corrupt tree is never reported as
// clean. An empty result means no errors were found.
func (v *Validator) CheckTree(ctx context.Context, root string) ([]ValidationError, error) {
	logger := zerolog.Ctx(ctx)

	files, err := walker.Files(ctx, root, nil)
	if err != nil {
		return nil, errors.Errorf("enumerating files: %w", err)
	}

	var found []ValidationError
	checked := 0
	for _, path := range files {
		c := For(path)
		if c == nil {
			continue
		}
		checked++

		content, _, err := v.codec.ReadFile(ctx, path)
		if err != nil {
			found = append(found, ValidationError{Path: path, Message: fmt.Sprintf("read: %v", err)})
			continue
		}

		if err := c.Check(ctx, path, content); err != nil {
			logger.Debug().Str("path", path).Str("checker", c.Name()).Err(err).Msg("syntax check failed")
			found = append(found, ValidationError{Path: path, Message: err.Error()})
		}
	}

	logger.Debug().Int("checked", checked).Int("errors", len(found)).Msg("syntax check complete")
	v.history.Append(fmt.Sprintf("Syntax check under %s completed: %d error(s) in %d file(s)", root, len(found), checked))
	return found, nil
}

// 🔍 hasExt reports whether filename carries one of the extensions
func hasExt(filename string, exts ...string) bool {
	got := filepath.Ext(filename)
	for _, ext := range exts {
		if got == ext {
			return true
		}
	}
	return false
}
