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
	"github.com/spf13/cobra"
)

var (
	// Flags
	configFile string
	rootDir    string
	debug      bool
)

const defaultConfigFile = ".srcedit.yaml"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// 🏭 newRootCmd builds the srcedit command tree
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "srcedit",
		Short:         "batch literal find/replace/delete and syntax checking for source trees",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	addRootFlags(cmd)

	cmd.AddCommand(
		newReplaceCmd(),
		newDeleteCmd(),
		newCheckCmd(),
		newSearchCmd(),
		newShellCmd(),
	)

	return cmd
}

// 🔧 addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", defaultConfigFile, "config file path")
	cmd.PersistentFlags().StringVarP(&rootDir, "root", "r", ".", "directory to operate on")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// 🎯 commandContext sets up the zerolog context for one invocation
func commandContext(cmd *cobra.Command) context.Context {
	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
	return logger.WithContext(cmd.Context())
}
