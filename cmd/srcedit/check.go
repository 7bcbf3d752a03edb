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
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// 🏭 newCheckCmd builds the check subcommand
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "syntax-check every parseable file under --root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			opts, err := newRootOpts(ctx)
			if err != nil {
				return err
			}

			opts.console.Header("checking syntax")

			found, err := opts.validator.CheckTree(ctx, rootDir)
			if err != nil {
				return errors.Errorf("checking %s: %w", rootDir, err)
			}

			if len(found) == 0 {
				opts.console.Success("no syntax errors found")
				return nil
			}
			for _, ve := range found {
				opts.console.Error(ve.String())
			}
			opts.console.Warningf("%d file(s) failed the syntax check", len(found))
			return nil
		},
	}
}
