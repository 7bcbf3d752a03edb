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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/srcedit/pkg/checker"
	"github.com/walteh/srcedit/pkg/config"
	"github.com/walteh/srcedit/pkg/encoding"
	"github.com/walteh/srcedit/pkg/history"
	"github.com/walteh/srcedit/pkg/log"
	"github.com/walteh/srcedit/pkg/mutate"
	"github.com/walteh/srcedit/pkg/operation"
	"github.com/walteh/srcedit/pkg/search"
	"gitlab.com/tozd/go/errors"
)

// 🔧 rootOpts carries the wired engine components shared by every command
type rootOpts struct {
	cfg       *config.Config
	codec     *encoding.Codec
	mutator   *mutate.Mutator
	operator  *operation.Operator
	validator *checker.Validator
	searcher  *search.Searcher
	hist      *history.Log
	console   *log.Logger
}

// 🏭 newRootOpts loads the config and wires the engine. The history log
// created here is owned by the invocation and passed by handle into every
// operation.
func newRootOpts(ctx context.Context) (*rootOpts, error) {
	cfg, err := loadConfig(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	codec, err := encoding.NewCodecFor(cfg.Encodings...)
	if err != nil {
		return nil, errors.Errorf("building encoding chain: %w", err)
	}

	mutator, err := mutate.New(codec)
	if err != nil {
		return nil, errors.Errorf("creating mutator: %w", err)
	}

	hist := history.NewLog()

	operator, err := operation.New(operation.Options{
		Mutator:  mutator,
		History:  hist,
		Patterns: cfg.Patterns,
	})
	if err != nil {
		return nil, errors.Errorf("creating operator: %w", err)
	}

	validator, err := checker.NewValidator(checker.Options{
		Codec:   codec,
		History: hist,
	})
	if err != nil {
		return nil, errors.Errorf("creating validator: %w", err)
	}

	searcher, err := search.New(search.Options{
		Codec:    codec,
		History:  hist,
		Patterns: cfg.Patterns,
	})
	if err != nil {
		return nil, errors.Errorf("creating searcher: %w", err)
	}

	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}

	return &rootOpts{
		cfg:       cfg,
		codec:     codec,
		mutator:   mutator,
		operator:  operator,
		validator: validator,
		searcher:  searcher,
		hist:      hist,
		console:   log.New(os.Stdout, logLevel),
	}, nil
}

// 🎯 loadConfig loads the config file, falling back to defaults when the
// default file simply does not exist
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && path == defaultConfigFile {
			return config.Default(), nil
		}
		return nil, errors.Errorf("config file %s: %w", path, err)
	}
	return config.Load(ctx, path)
}
