// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/homer-cli/homer/internal/log"
	"github.com/homer-cli/homer/internal/meta"
)

// buildCommandAction is the action handler for the "build" subcommand. It
// builds the target app's machine image with Packer, forwarding passthrough
// args (typically -var flags) untouched.
func buildCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args[1:])

	p, err := newPacker(cmd, m)
	if err != nil {
		return err
	}

	return p.Build(ctx, m.Invocation.Target, m.Invocation.ExtraArgs)
}

// buildCommandBuilder constructs the cli.Command for "build".
func buildCommandBuilder(m meta.Meta) *cli.Command {
	return (&ToolCommandBuilder{
		Name:    "build",
		Aliases: []string{"b"},
		Usage:   "build a Packer image for an app",
		Flags: []cli.Flag{
			NewPackerBinFlag(m.Config.Source),
		},
		Action: buildCommandAction,
		Meta:   m,
	}).Build()
}
