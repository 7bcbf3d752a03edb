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

package operation_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/srcedit/pkg/encoding"
	"github.com/walteh/srcedit/pkg/history"
	"github.com/walteh/srcedit/pkg/mutate"
	"github.com/walteh/srcedit/pkg/operation"
)

// 🧪 createTestEnv creates an operator, a history log, and a sample tree
func createTestEnv(t *testing.T) (context.Context, *operation.Operator, *history.Log, string) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	root := t.TempDir()
	files := map[string]string{
		"a.py":            "print('Hello World')",
		"b.py":            "x=1",
		"subdir/test4.py": "import os\n\nprint(os.getcwd())\n",
		"notes.txt":       "print me\n",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	mutator, err := mutate.New(encoding.NewCodec())
	require.NoError(t, err)

	log := history.NewLog()
	op, err := operation.New(operation.Options{
		Mutator:  mutator,
		History:  log,
		Patterns: []string{"**/*.py"},
	})
	require.NoError(t, err)

	return ctx, op, log, root
}

// 🧪 TestReplaceInDirectory tests the canonical replace scenario
func TestReplaceInDirectory(t *testing.T) {
	ctx, op, log, root := createTestEnv(t)

	changes, err := op.ReplaceInDirectory(ctx, root, "Hello", "Hi")
	require.NoError(t, err)

	require.Len(t, changes, 1)
	assert.Equal(t, filepath.Join(root, "a.py"), changes[0])

	data, err := os.ReadFile(filepath.Join(root, "a.py"))
	require.NoError(t, err)
	assert.Equal(t, "print('Hi World')", string(data))

	data, err = os.ReadFile(filepath.Join(root, "b.py"))
	require.NoError(t, err)
	assert.Equal(t, "x=1", string(data), "files without the target stay byte-for-byte unchanged")

	entries := log.Entries()
	require.Len(t, entries, 1, "exactly one history entry per directory operation")
	assert.Contains(t, entries[0].Action, "a.py")
	assert.Contains(t, entries[0].Action, `"Hello"`)
	assert.Contains(t, entries[0].Action, `"Hi"`)
}

// 🧪 TestReplaceInDirectoryMultipleFiles tests aggregation across files
func TestReplaceInDirectoryMultipleFiles(t *testing.T) {
	ctx, op, log, root := createTestEnv(t)

	changes, err := op.ReplaceInDirectory(ctx, root, "print", "PRINT")
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a.py"),
		filepath.Join(root, "subdir", "test4.py"),
	}
	sort.Strings(want)
	assert.Equal(t, operation.ChangeSet(want), changes, "ChangeSet is sorted by path")

	// notes.txt contains "print" but is not an eligible file
	data, err := os.ReadFile(filepath.Join(root, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "print me\n", string(data))

	assert.Equal(t, 1, log.Len())
}

// 🧪 TestReplaceInDirectoryNoMatches tests an empty ChangeSet
func TestReplaceInDirectoryNoMatches(t *testing.T) {
	ctx, op, log, root := createTestEnv(t)

	changes, err := op.ReplaceInDirectory(ctx, root, "nonexistent_pattern", "x")
	require.NoError(t, err)
	assert.Empty(t, changes, "matching nothing is not an error")
	assert.Equal(t, 1, log.Len(), "an empty operation still records one entry")
}

// 🧪 TestDeleteFromDirectory tests tree-wide delete
func TestDeleteFromDirectory(t *testing.T) {
	ctx, op, log, root := createTestEnv(t)

	changes, err := op.DeleteFromDirectory(ctx, root, "print")
	require.NoError(t, err)
	assert.Len(t, changes, 2)

	data, err := os.ReadFile(filepath.Join(root, "a.py"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "print")

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Action, "Deleted")
}

// 🧪 TestDeleteTwiceSecondIsEmpty tests idempotence at the tree level
func TestDeleteTwiceSecondIsEmpty(t *testing.T) {
	ctx, op, log, root := createTestEnv(t)

	first, err := op.DeleteFromDirectory(ctx, root, "print")
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := op.DeleteFromDirectory(ctx, root, "print")
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, 2, log.Len(), "each call appends its own entry")
}

// 🧪 TestMissingRoot tests that an unwalkable root is an error
func TestMissingRoot(t *testing.T) {
	ctx, op, log, _ := createTestEnv(t)

	_, err := op.ReplaceInDirectory(ctx, filepath.Join(t.TempDir(), "missing"), "a", "b")
	assert.Error(t, err)
	assert.Zero(t, log.Len(), "a failed operation records nothing")
}

// 🧪 TestNewValidation tests Options validation
func TestNewValidation(t *testing.T) {
	mutator, err := mutate.New(encoding.NewCodec())
	require.NoError(t, err)

	_, err = operation.New(operation.Options{History: history.NewLog()})
	assert.Error(t, err, "mutator is required")

	_, err = operation.New(operation.Options{Mutator: mutator})
	assert.Error(t, err, "history log is required")
}
