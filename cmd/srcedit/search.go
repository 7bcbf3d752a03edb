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

// 🏭 newSearchCmd builds the search subcommand
func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "list the eligible files under --root containing a literal substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			opts, err := newRootOpts(ctx)
			if err != nil {
				return err
			}

			query := args[0]
			opts.console.Header("searching for " + query)

			hits, err := opts.searcher.InFiles(ctx, rootDir, query)
			if err != nil {
				return errors.Errorf("searching %s: %w", rootDir, err)
			}

			for _, path := range hits {
				opts.console.Info(path)
			}
			opts.console.Successf("%d file(s) matched", len(hits))
			return nil
		},
	}
}
