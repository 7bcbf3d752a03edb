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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 testContext creates a context with a test logger
func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// 🧪 TestParserSelection tests parser selection by file extension
func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{
			name:     "yaml_file",
			filename: ".srcedit.yaml",
			want:     &YAMLParser{},
		},
		{
			name:     "yml_file",
			filename: "config.yml",
			want:     &YAMLParser{},
		},
		{
			name:     "hcl_file",
			filename: ".srcedit.hcl",
			want:     &HCLParser{},
		},
		{
			name:     "unknown_extension",
			filename: "config.txt",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got, "should return nil for unknown extension")
				return
			}
			require.NotNil(t, got, "should return a parser")
			assert.IsType(t, tt.want, got, "should return correct parser type")
		})
	}
}

// 🧪 TestYAMLParsing tests YAML config parsing
func TestYAMLParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "explicit_fields",
			config: `
patterns:
  - "**/*.py"
encodings:
  - utf-8
  - iso-8859-1
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"**/*.py"}, cfg.Patterns)
				assert.Equal(t, []string{"utf-8", "iso-8859-1"}, cfg.Encodings)
			},
		},
		{
			name:   "empty_config_gets_defaults",
			config: `{}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultPatterns, cfg.Patterns)
				assert.Equal(t, DefaultEncodings, cfg.Encodings)
			},
		},
		{
			name: "unknown_field_rejected",
			config: `
patterns: ["**/*.py"]
bogus: true
`,
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name: "unknown_encoding_rejected",
			config: `
encodings: [utf-8, ebcdic]
`,
			wantErr:     true,
			errContains: "unknown encoding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := (&YAMLParser{}).Parse(testContext(t), []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

// 🧪 TestHCLParsing tests HCL config parsing
func TestHCLParsing(t *testing.T) {
	config := `
patterns  = ["**/*.go", "**/*.py"]
encodings = ["utf-8", "windows-1252"]
`
	cfg, err := (&HCLParser{}).Parse(testContext(t), []byte(config))
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.go", "**/*.py"}, cfg.Patterns)
	assert.Equal(t, []string{"utf-8", "windows-1252"}, cfg.Encodings)
}

// 🧪 TestHCLParsingInvalid tests HCL diagnostics surfacing
func TestHCLParsingInvalid(t *testing.T) {
	_, err := (&HCLParser{}).Parse(testContext(t), []byte("patterns =\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HCL")
}

// 🧪 TestLoad tests end-to-end config loading from disk
func TestLoad(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), ".srcedit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns: [\"**/*.py\"]\n"), 0644))

	cfg, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.py"}, cfg.Patterns)
	assert.Equal(t, DefaultEncodings, cfg.Encodings, "encodings default when omitted")
}

// 🧪 TestLoadMissingFile tests the read failure path
func TestLoadMissingFile(t *testing.T) {
	ctx := testContext(t)

	_, err := Load(ctx, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// 🧪 TestDefault tests the zero-config constructor
func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultPatterns, cfg.Patterns)
	assert.Equal(t, DefaultEncodings, cfg.Encodings)
}
