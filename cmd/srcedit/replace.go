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
	"github.com/walteh/srcedit/pkg/log"
	"github.com/walteh/srcedit/pkg/mutate"
	"gitlab.com/tozd/go/errors"
)

// 🏭 newReplaceCmd builds the replace subcommand
func newReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace <target> <replacement>",
		Short: "replace every occurrence of a literal substring in the eligible files under --root",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			opts, err := newRootOpts(ctx)
			if err != nil {
				return err
			}

			target, replacement := args[0], args[1]
			opts.console.Header("replacing " + target)

			changes, err := opts.operator.ReplaceInDirectory(ctx, rootDir, target, replacement)
			if err != nil {
				return errors.Errorf("replacing in %s: %w", rootDir, err)
			}

			for _, path := range changes {
				opts.console.LogFileOperation(ctx, log.FileOperation{
					Path:    path,
					Outcome: mutate.Changed,
				})
			}
			opts.console.Successf("%d file(s) changed", len(changes))
			return nil
		},
	}
}

// TODO(dr.methodical): 📝 Surface failed files in the console output, not only in the zerolog stream
