// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"fmt"
	"strings"
)

// Canonical command names.
const (
	CmdInit    = "init"
	CmdPlan    = "plan"
	CmdApply   = "apply"
	CmdDestroy = "destroy"
	CmdUnlock  = "unlock"
	CmdBuild   = "build"
)

// aliases maps every accepted command token to its canonical name.
var aliases = map[string]string{
	CmdInit:    CmdInit,
	CmdPlan:    CmdPlan,
	"p":        CmdPlan,
	CmdApply:   CmdApply,
	"a":        CmdApply,
	CmdDestroy: CmdDestroy,
	"d":        CmdDestroy,
	CmdUnlock:  CmdUnlock,
	"u":        CmdUnlock,
	CmdBuild:   CmdBuild,
	"b":        CmdBuild,
}

// interactiveCommands are the commands for which -i is meaningful.
var interactiveCommands = map[string]bool{
	CmdPlan:    true,
	CmdDestroy: true,
}

// Invocation is the parsed user request. It is created once per run and is
// immutable after parsing.
type Invocation struct {
	Command     string
	Target      string
	Interactive bool
	ExtraArgs   []string
}

// UsageError reports CLI input that could not be resolved into an
// Invocation. It carries only the message; usage text rendering is the
// caller's job.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// Canonical returns the canonical command for a token and whether the token
// is a recognized command name or alias.
func Canonical(token string) (string, bool) {
	c, ok := aliases[token]
	return c, ok
}

// Commands returns the canonical command names in dispatch order.
func Commands() []string {
	return []string{CmdInit, CmdPlan, CmdApply, CmdDestroy, CmdUnlock, CmdBuild}
}

// Interactive reports whether the canonical command supports -i.
func Interactive(command string) bool {
	return interactiveCommands[command]
}

// Resolve parses raw CLI tokens (everything after the program name) into an
// Invocation. The command and target positionals are accepted in either
// order; whichever token matches a known command name or alias is the
// command, the other is the target. Tokens after a literal "--" are kept
// verbatim as ExtraArgs and never reinterpreted.
//
// Resolve is a pure parse: it touches no filesystem and spawns nothing.
func Resolve(tokens []string) (Invocation, error) {
	var inv Invocation

	head := tokens
	if i := indexOf(tokens, "--"); i >= 0 {
		head = tokens[:i]
		inv.ExtraArgs = append([]string{}, tokens[i+1:]...)
	}

	var positionals []string
	for _, tok := range head {
		switch {
		case tok == "-i" || tok == "--interactive":
			inv.Interactive = true
		case strings.HasPrefix(tok, "-"):
			return Invocation{}, usageErrorf("unknown flag: %s", tok)
		default:
			positionals = append(positionals, tok)
		}
	}

	if len(positionals) > 2 {
		return Invocation{}, usageErrorf(
			"too many arguments: %s", strings.Join(positionals[2:], " "))
	}

	var commands, targets []string
	for _, p := range positionals {
		if c, ok := Canonical(p); ok {
			commands = append(commands, c)
		} else {
			targets = append(targets, p)
		}
	}

	switch {
	case len(commands) == 0:
		return Invocation{}, usageErrorf("no command given")
	case len(commands) > 1:
		// Both positionals name commands. A target directory named after a
		// command can't be disambiguated, so refuse rather than guess.
		return Invocation{}, usageErrorf(
			"ambiguous input: %q and %q are both commands",
			positionals[0], positionals[1])
	case len(targets) == 0:
		return Invocation{}, usageErrorf("command %q requires a target", commands[0])
	}

	inv.Command = commands[0]
	inv.Target = targets[0]

	if inv.Interactive && !Interactive(inv.Command) {
		return Invocation{}, usageErrorf(
			"-i is only valid with plan and destroy, not %q", inv.Command)
	}

	return inv, nil
}

func indexOf(tokens []string, want string) int {
	for i, tok := range tokens {
		if tok == want {
			return i
		}
	}
	return -1
}
