// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/homer-cli/homer/internal/meta"
)

// ToolCommandBuilder constructs a cli.Command for the tool-dispatch
// subcommands (init, plan, apply, destroy, unlock, build) using a consistent
// pattern: it wires the shared metadata, the target argument help text, and
// the action handler.
type ToolCommandBuilder struct {
	Name    string
	Aliases []string
	Usage   string
	Flags   []cli.Flag
	Action  func(context.Context, *cli.Command) error
	Meta    meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (tcb *ToolCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      tcb.Name,
		Aliases:   tcb.Aliases,
		Usage:     tcb.Usage,
		ArgsUsage: "<target> [-- passthrough args]",
		Metadata: map[string]any{
			"meta": tcb.Meta,
		},
		Flags:  tcb.Flags,
		Action: tcb.Action,
	}
}
