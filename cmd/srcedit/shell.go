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
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/srcedit/pkg/log"
	"github.com/walteh/srcedit/pkg/mutate"
	"gitlab.com/tozd/go/errors"
)

// 📟 shellCommand is one parsed line of the interactive grammar
type shellCommand struct {
	name string
	args []string
}

// 📝 parseCommand parses one line of the shell grammar:
//
//	replace <target> <replacement>
//	delete <target>
//	search <query>
//	check | history | help | exit
func parseCommand(line string) (shellCommand, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return shellCommand{}, errors.Errorf("empty command")
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "replace":
		if len(args) != 2 {
			return shellCommand{}, errors.Errorf("usage: replace <target> <replacement>")
		}
	case "delete":
		if len(args) != 1 {
			return shellCommand{}, errors.Errorf("usage: delete <target>")
		}
	case "search":
		if len(args) != 1 {
			return shellCommand{}, errors.Errorf("usage: search <query>")
		}
	case "check", "history", "help", "exit":
		if len(args) != 0 {
			return shellCommand{}, errors.Errorf("usage: %s", name)
		}
	default:
		return shellCommand{}, errors.Errorf("unknown command: %s (try help)", name)
	}

	if len(args) == 0 {
		args = nil
	}
	return shellCommand{name: name, args: args}, nil
}

// 🏭 newShellCmd builds the interactive shell subcommand
func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "interactive command loop over one directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			opts, err := newRootOpts(ctx)
			if err != nil {
				return err
			}
			return runShell(ctx, opts)
		},
	}
}

// 🎮 runShell drives the interactive loop. The shell owns the history
// log for the session and hands it into every operation it runs.
func runShell(ctx context.Context, opts *rootOpts) error {
	dir, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(rootDir).
		Show("Directory to edit")
	if err != nil {
		return errors.Errorf("reading directory: %w", err)
	}
	if dir == "" {
		dir = rootDir
	}

	clearScreen()
	opts.console.Header("editing " + dir)
	printShellHelp()

	for {
		line, err := pterm.DefaultInteractiveTextInput.Show("srcedit")
		if err != nil {
			return errors.Errorf("reading command: %w", err)
		}

		cmd, err := parseCommand(line)
		if err != nil {
			opts.console.Warning(err.Error())
			continue
		}

		if cmd.name == "exit" {
			return nil
		}
		runShellCommand(ctx, opts, dir, cmd)
	}
}

// 🏃 runShellCommand executes one parsed command against the engine
func runShellCommand(ctx context.Context, opts *rootOpts, dir string, cmd shellCommand) {
	switch cmd.name {
	case "replace":
		target, replacement := cmd.args[0], cmd.args[1]
		if !confirm(fmt.Sprintf("Replace %q with %q in every eligible file under %s?", target, replacement, dir)) {
			opts.console.Info("cancelled")
			return
		}
		changes, err := opts.operator.ReplaceInDirectory(ctx, dir, target, replacement)
		if err != nil {
			opts.console.Error(err.Error())
			return
		}
		renderChanges(ctx, opts, changes)

	case "delete":
		target := cmd.args[0]
		if !confirm(fmt.Sprintf("Delete %q from every eligible file under %s?", target, dir)) {
			opts.console.Info("cancelled")
			return
		}
		changes, err := opts.operator.DeleteFromDirectory(ctx, dir, target)
		if err != nil {
			opts.console.Error(err.Error())
			return
		}
		renderChanges(ctx, opts, changes)

	case "check":
		found, err := opts.validator.CheckTree(ctx, dir)
		if err != nil {
			opts.console.Error(err.Error())
			return
		}
		if len(found) == 0 {
			opts.console.Success("no syntax errors found")
			return
		}
		for _, ve := range found {
			opts.console.Error(ve.String())
		}

	case "search":
		hits, err := opts.searcher.InFiles(ctx, dir, cmd.args[0])
		if err != nil {
			opts.console.Error(err.Error())
			return
		}
		for _, path := range hits {
			opts.console.Info(path)
		}
		opts.console.Successf("%d file(s) matched", len(hits))

	case "history":
		opts.console.RenderHistory(opts.hist.Entries())

	case "help":
		printShellHelp()
	}
}

// 📝 renderChanges prints the ChangeSet of a mutation
func renderChanges(ctx context.Context, opts *rootOpts, changes []string) {
	for _, path := range changes {
		opts.console.LogFileOperation(ctx, log.FileOperation{
			Path:    path,
			Outcome: mutate.Changed,
		})
	}
	opts.console.Successf("%d file(s) changed", len(changes))
}

// ❓ confirm asks a y/n question before a destructive command
func confirm(question string) bool {
	ok, err := pterm.DefaultInteractiveConfirm.Show(question)
	if err != nil {
		return false
	}
	return ok
}

// 🧹 clearScreen clears the terminal between shell screens
func clearScreen() {
	fmt.Fprint(os.Stdout, "\033[H\033[2J")
}

// 📖 printShellHelp lists the available commands
func printShellHelp() {
	pterm.Info.Println("available commands:")
	pterm.Println("  replace <target> <replacement>  replace a literal substring in every eligible file")
	pterm.Println("  delete <target>                 delete a literal substring from every eligible file")
	pterm.Println("  check                           syntax-check every parseable file")
	pterm.Println("  search <query>                  list files containing a literal substring")
	pterm.Println("  history                         show the operations of this session")
	pterm.Println("  help                            show this help")
	pterm.Println("  exit                            leave the shell")
}
