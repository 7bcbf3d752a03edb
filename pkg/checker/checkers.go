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

package checker

import (
	"context"
	"encoding/json"
	"go/parser"
	"go/token"

	"github.com/hashicorp/hcl/v2/hclparse"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔧 GoChecker validates Go source files
type GoChecker struct{}

func init() {
	Register(&GoChecker{})
}

func (c *GoChecker) Name() string { return "go" }

func (c *GoChecker) CanCheck(filename string) bool {
	return hasExt(filename, ".go")
}

func (c *GoChecker) Check(ctx context.Context, path string, content string) error {
	if _, err := parser.ParseFile(token.NewFileSet(), path, content, parser.AllErrors); err != nil {
		return errors.Errorf("parsing Go: %w", err)
	}
	return nil
}

// 🔧 JSONChecker validates JSON files
type JSONChecker struct{}

func init() {
	Register(&JSONChecker{})
}

func (c *JSONChecker) Name() string { return "json" }

func (c *JSONChecker) CanCheck(filename string) bool {
	return hasExt(filename, ".json")
}

func (c *JSONChecker) Check(ctx context.Context, path string, content string) error {
	var v any
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return errors.Errorf("parsing JSON: %w", err)
	}
	return nil
}

// 🔧 YAMLChecker validates YAML files
type YAMLChecker struct{}

func init() {
	Register(&YAMLChecker{})
}

func (c *YAMLChecker) Name() string { return "yaml" }

func (c *YAMLChecker) CanCheck(filename string) bool {
	return hasExt(filename, ".yaml", ".yml")
}

func (c *YAMLChecker) Check(ctx context.Context, path string, content string) error {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(content), &node); err != nil {
		return errors.Errorf("parsing YAML: %w", err)
	}
	return nil
}

// 🔧 HCLChecker validates HCL files
type HCLChecker struct{}

func init() {
	Register(&HCLChecker{})
}

func (c *HCLChecker) Name() string { return "hcl" }

func (c *HCLChecker) CanCheck(filename string) bool {
	return hasExt(filename, ".hcl")
}

func (c *HCLChecker) Check(ctx context.Context, path string, content string) error {
	// A fresh parser per file: hclparse caches results by filename.
	p := hclparse.NewParser()
	if _, diags := p.ParseHCL([]byte(content), path); diags.HasErrors() {
		return errors.Errorf("parsing HCL: %s", diags.Error())
	}
	return nil
}
