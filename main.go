// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/homer-cli/homer/internal/command"
	"github.com/homer-cli/homer/internal/log"
	"github.com/homer-cli/homer/internal/output"
	"github.com/homer-cli/homer/internal/resolve"
	"github.com/homer-cli/homer/internal/runner"
	"github.com/homer-cli/homer/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v before any "--" and returns whether
// it was handled. Tokens after the separator belong to the child tool.
func handleVersion(args []string) bool {
	for _, a := range args[1:] {
		if a == "--" {
			return false
		}
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// helpRequested reports whether --help/-h appears before any "--".
func helpRequested(args []string) bool {
	for _, a := range args[1:] {
		if a == "--" {
			return false
		}
		if a == "--help" || a == "-h" {
			return true
		}
	}
	return false
}

// globalFlags are tokens the resolver should not see; they are re-appended
// for the CLI framework to parse. Value-taking flags consume the next token
// unless given as --flag=value.
var globalValueFlags = map[string]bool{
	"--terraform-bin": true,
	"--packer-bin":    true,
}

var globalBoolFlags = map[string]bool{
	"--no-color": true,
}

// splitGlobalFlags separates the resolver's tokens from the framework-level
// flags. Root flags (--no-color) must precede the subcommand when the args
// are rebuilt; command flags (the binary overrides) must follow it.
// Everything after "--" stays with the tokens untouched.
func splitGlobalFlags(tokens []string) (clean, rootFlags, cmdFlags []string) {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok == "--" {
			clean = append(clean, tokens[i:]...)
			return clean, rootFlags, cmdFlags
		}

		if globalBoolFlags[tok] {
			rootFlags = append(rootFlags, tok)
			continue
		}
		if globalValueFlags[tok] {
			cmdFlags = append(cmdFlags, tok)
			if i+1 < len(tokens) {
				i++
				cmdFlags = append(cmdFlags, tokens[i])
			}
			continue
		}
		if eq := strings.IndexByte(tok, '='); eq > 0 && globalValueFlags[tok[:eq]] {
			cmdFlags = append(cmdFlags, tok)
			continue
		}

		clean = append(clean, tok)
	}
	return clean, rootFlags, cmdFlags
}

// normalizeArgs rewrites the user's order-agnostic invocation into the
// canonical "homer [root flags] <command> <target> [flags] [-- extras]"
// shape the CLI framework expects.
func normalizeArgs(inv resolve.Invocation, rootFlags, cmdFlags []string) []string {
	args := append([]string{"homer"}, rootFlags...)
	args = append(args, inv.Command, inv.Target)
	if inv.Interactive {
		args = append(args, "--interactive")
	}
	args = append(args, cmdFlags...)
	if len(inv.ExtraArgs) > 0 {
		args = append(args, "--")
		args = append(args, inv.ExtraArgs...)
	}
	return args
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// Help and completion bypass the resolver; the CLI framework owns them.
	passthrough := helpRequested(args) || args[1] == "completion"

	var inv resolve.Invocation
	if !passthrough {
		tokens, rootFlags, cmdFlags := splitGlobalFlags(args[1:])

		var err error
		inv, err = resolve.Resolve(tokens)
		if err != nil {
			fmt.Fprintln(os.Stderr, output.Fail("ERROR: ")+err.Error())
			fmt.Fprintln(os.Stderr, "commands: "+strings.Join(resolve.Commands(), ", "))
			fmt.Fprintln(os.Stderr, "run `homer --help` for usage")
			return 2
		}

		args = normalizeArgs(inv, rootFlags, cmdFlags)
		log.Debugf("args normalized: args=%v", args)
	}

	return runApp(args, inv, passthrough)
}

func runApp(args []string, inv resolve.Invocation, passthrough bool) int {
	app, err := command.InitApp(ctx, args, inv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	err = app.Run(ctx, args)
	if err == nil {
		if !passthrough {
			output.Closing(true)
		}
		return 0
	}

	return renderError(err)
}

// renderError prints a diagnostic and maps the error to homer's exit codes:
// the child's own code for tool failures, 130 for interrupts, 2 for usage
// errors, 1 for everything else.
func renderError(err error) int {
	var ue *resolve.UsageError
	if errors.As(err, &ue) {
		fmt.Fprintln(os.Stderr, output.Fail("ERROR: ")+ue.Error())
		return 2
	}

	if errors.Is(err, runner.ErrInterrupted) {
		fmt.Fprintln(os.Stderr, output.Warn("interrupted"))
		return 130
	}

	var ee *runner.ExitError
	if errors.As(err, &ee) {
		// The child's output already went to the terminal (or was relayed);
		// just frame the failure and propagate its code.
		if ee.Stderr != "" {
			fmt.Fprint(os.Stderr, ee.Stderr)
		}
		fmt.Fprintln(os.Stderr, output.Fail("ERROR: ")+ee.Error())
		output.Closing(false)
		return ee.Code
	}

	fmt.Fprintln(os.Stderr, output.Fail("ERROR: ")+err.Error())
	output.Closing(false)
	return 1
}
