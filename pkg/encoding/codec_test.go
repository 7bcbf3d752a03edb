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

package encoding_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/srcedit/pkg/encoding"
)

// 🧪 testContext creates a context with a test logger
func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// 🧪 TestReadFileUTF8 tests reading a plain UTF-8 file
func TestReadFileUTF8(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("print('Hello World')\n"), 0644))

	codec := encoding.NewCodec()
	content, name, err := codec.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "print('Hello World')\n", content)
	assert.Equal(t, encoding.NameUTF8, name, "valid UTF-8 should decode with the primary encoding")
}

// 🧪 TestReadFileFallback tests the legacy single-byte fallback
func TestReadFileFallback(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "legacy.txt")

	// "café" in Windows-1252: 0xE9 is not valid UTF-8
	raw := []byte{'c', 'a', 'f', 0xE9, '\n'}
	require.NoError(t, os.WriteFile(path, raw, 0644))

	codec := encoding.NewCodec()
	content, name, err := codec.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "café\n", content)
	assert.Equal(t, encoding.NameWindows1252, name, "invalid UTF-8 should fall back to windows-1252")
}

// 🧪 TestReadFileMissing tests that I/O failures surface as errors
func TestReadFileMissing(t *testing.T) {
	ctx := testContext(t)

	codec := encoding.NewCodec()
	_, _, err := codec.ReadFile(ctx, filepath.Join(t.TempDir(), "does-not-exist.txt"))
	assert.Error(t, err)
}

// 🧪 TestReadFileExhaustedChain tests a chain that rejects the content
func TestReadFileExhaustedChain(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "binary.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xFF, 0xFE, 0x00, 0x80}, 0644))

	// UTF-8 only, no fallback
	codec, err := encoding.NewCodecFor(encoding.NameUTF8)
	require.NoError(t, err)

	_, _, err = codec.ReadFile(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no encoding in chain")
}

// 🧪 TestWriteFileRoundTrip tests writing and re-reading content
func TestWriteFileRoundTrip(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "out.txt")

	codec := encoding.NewCodec()
	require.NoError(t, codec.WriteFile(ctx, path, "x=1\n"))

	content, name, err := codec.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "x=1\n", content)
	assert.Equal(t, encoding.NameUTF8, name)
}

// 🧪 TestWriteFileFailure tests that write failures are reported
func TestWriteFileFailure(t *testing.T) {
	ctx := testContext(t)

	codec := encoding.NewCodec()
	err := codec.WriteFile(ctx, filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt"), "x")
	assert.Error(t, err, "missing parent directory should fail the write")
}

// 🧪 TestNewCodecFor tests chain construction and name resolution
func TestNewCodecFor(t *testing.T) {
	tests := []struct {
		name    string
		chain   []string
		wantErr bool
	}{
		{
			name:  "default_names",
			chain: []string{"utf-8", "windows-1252"},
		},
		{
			name:  "aliases",
			chain: []string{"utf8", "latin-1"},
		},
		{
			name:    "unknown_encoding",
			chain:   []string{"utf-8", "klingon"},
			wantErr: true,
		},
		{
			name:    "empty_chain",
			chain:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encoding.NewCodecFor(tt.chain...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// 🧪 TestSupported tests encoding name validation
func TestSupported(t *testing.T) {
	assert.True(t, encoding.Supported("utf-8"))
	assert.True(t, encoding.Supported("windows-1252"))
	assert.True(t, encoding.Supported("iso-8859-1"))
	assert.False(t, encoding.Supported("ebcdic"))
}
