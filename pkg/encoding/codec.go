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

// Package encoding provides encoding-tolerant reading and writing of text
// files. Source trees mix encodings in practice, so reads try a fixed,
// ordered chain of decoders and succeed on the first one that accepts the
// bytes. Writes always use UTF-8, the primary encoding.
package encoding

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding/charmap"
)

// 🔤 Canonical names for the encodings in the default chain
const (
	NameUTF8        = "utf-8"
	NameWindows1252 = "windows-1252"
	NameISO8859_1   = "iso-8859-1"
)

// 🧬 decoder turns raw file bytes into text, or reports that the bytes are
// not valid for its encoding.
type decoder struct {
	name   string
	decode func(data []byte) (string, error)
}

// 🎯 Codec reads and writes files through an ordered fallback chain of
// encodings. The chain is fixed at construction so decoding is
// deterministic and reproducible across runs.
type Codec struct {
	chain []decoder
}

// 🏭 NewCodec creates a codec with the default chain: UTF-8 first, then
// Windows-1252 as the legacy single-byte fallback.
func NewCodec() *Codec {
	c, err := NewCodecFor(NameUTF8, NameWindows1252)
	if err != nil {
		// the default names are always resolvable
		panic(err)
	}
	return c
}

// 🏭 NewCodecFor creates a codec trying the named encodings in order.
func NewCodecFor(names ...string) (*Codec, error) {
	if len(names) == 0 {
		return nil, errors.Errorf("at least one encoding is required")
	}

	chain := make([]decoder, 0, len(names))
	for _, name := range names {
		d, err := decoderFor(name)
		if err != nil {
			return nil, err
		}
		chain = append(chain, d)
	}

	return &Codec{chain: chain}, nil
}

// 🔍 Supported reports whether a codec can be built for the encoding name.
func Supported(name string) bool {
	_, err := decoderFor(name)
	return err == nil
}

// 📖 ReadFile reads path and decodes it with the first encoding in the
// chain that accepts the bytes. It returns the decoded text and the name
// of the encoding that produced it. If every encoding rejects the bytes,
// or the file cannot be read at all, an error is returned.
func (c *Codec) ReadFile(ctx context.Context, path string) (string, string, error) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", errors.Errorf("reading %s: %w", path, err)
	}

	for _, d := range c.chain {
		text, err := d.decode(data)
		if err != nil {
			logger.Debug().Str("path", path).Str("encoding", d.name).Msg("decode rejected, trying next encoding")
			continue
		}
		return text, d.name, nil
	}

	return "", "", errors.Errorf("decoding %s: no encoding in chain [%s] accepts the content", path, c.chainNames())
}

// 📝 WriteFile writes content to path as UTF-8. Success means the full
// content reached the file.
func (c *Codec) WriteFile(ctx context.Context, path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (c *Codec) chainNames() string {
	names := make([]string, len(c.chain))
	for i, d := range c.chain {
		names[i] = d.name
	}
	return strings.Join(names, ", ")
}

// 🗺️ decoderFor resolves an encoding name to its decoder.
func decoderFor(name string) (decoder, error) {
	switch strings.ToLower(name) {
	case NameUTF8, "utf8":
		return decoder{name: NameUTF8, decode: decodeUTF8}, nil
	case NameWindows1252, "cp1252":
		return decoder{name: NameWindows1252, decode: charmapDecoder(charmap.Windows1252)}, nil
	case NameISO8859_1, "latin-1", "latin1":
		return decoder{name: NameISO8859_1, decode: charmapDecoder(charmap.ISO8859_1)}, nil
	default:
		return decoder{}, errors.Errorf("unknown encoding: %s", name)
	}
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.Errorf("content is not valid UTF-8")
	}
	return string(data), nil
}

func charmapDecoder(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		text, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", errors.Errorf("decoding %s: %w", cm.String(), err)
		}
		return string(text), nil
	}
}
