// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/homer-cli/homer/internal/log"
	"github.com/homer-cli/homer/internal/meta"
)

// initCommandAction is the action handler for the "init" subcommand. It
// initializes the Terraform backend of the target environment, passing any
// passthrough args along.
func initCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args[1:])

	tf, err := newTerraform(cmd, m)
	if err != nil {
		return err
	}
	defer tf.Cleanup()

	return tf.Init(ctx, m.Invocation.Target, m.Invocation.ExtraArgs)
}

func planCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args[1:])

	tf, err := newTerraform(cmd, m)
	if err != nil {
		return err
	}
	defer tf.Cleanup()

	return tf.Plan(ctx, m.Invocation.Target, m.Invocation.Interactive, m.Invocation.ExtraArgs)
}

func applyCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args[1:])

	tf, err := newTerraform(cmd, m)
	if err != nil {
		return err
	}
	defer tf.Cleanup()

	return tf.Apply(ctx, m.Invocation.Target, m.Invocation.ExtraArgs)
}

func destroyCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args[1:])

	tf, err := newTerraform(cmd, m)
	if err != nil {
		return err
	}
	defer tf.Cleanup()

	return tf.Destroy(ctx, m.Invocation.Target, m.Invocation.Interactive, m.Invocation.ExtraArgs)
}

func unlockCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args[1:])

	tf, err := newTerraform(cmd, m)
	if err != nil {
		return err
	}
	defer tf.Cleanup()

	return tf.Unlock(ctx, m.Invocation.Target)
}

// initCommandBuilder constructs the cli.Command for "init".
func initCommandBuilder(m meta.Meta) *cli.Command {
	return (&ToolCommandBuilder{
		Name:  "init",
		Usage: "initialize the Terraform backend of an environment",
		Flags: []cli.Flag{
			NewTerraformBinFlag(m.Config.Source),
		},
		Action: initCommandAction,
		Meta:   m,
	}).Build()
}

// planCommandBuilder constructs the cli.Command for "plan".
func planCommandBuilder(m meta.Meta) *cli.Command {
	return (&ToolCommandBuilder{
		Name:    "plan",
		Aliases: []string{"p"},
		Usage:   "plan the changes of an environment",
		Flags: []cli.Flag{
			interactiveFlag,
			NewTerraformBinFlag(m.Config.Source),
		},
		Action: planCommandAction,
		Meta:   m,
	}).Build()
}

// applyCommandBuilder constructs the cli.Command for "apply".
func applyCommandBuilder(m meta.Meta) *cli.Command {
	return (&ToolCommandBuilder{
		Name:    "apply",
		Aliases: []string{"a"},
		Usage:   "apply the changes of an environment",
		Flags: []cli.Flag{
			NewTerraformBinFlag(m.Config.Source),
		},
		Action: applyCommandAction,
		Meta:   m,
	}).Build()
}

// destroyCommandBuilder constructs the cli.Command for "destroy".
func destroyCommandBuilder(m meta.Meta) *cli.Command {
	return (&ToolCommandBuilder{
		Name:    "destroy",
		Aliases: []string{"d"},
		Usage:   "destroy the infrastructure of an environment",
		Flags: []cli.Flag{
			interactiveFlag,
			NewTerraformBinFlag(m.Config.Source),
		},
		Action: destroyCommandAction,
		Meta:   m,
	}).Build()
}

// unlockCommandBuilder constructs the cli.Command for "unlock".
func unlockCommandBuilder(m meta.Meta) *cli.Command {
	return (&ToolCommandBuilder{
		Name:    "unlock",
		Aliases: []string{"u"},
		Usage:   "release a held Terraform state lock",
		Flags: []cli.Flag{
			NewTerraformBinFlag(m.Config.Source),
		},
		Action: unlockCommandAction,
		Meta:   m,
	}).Build()
}
