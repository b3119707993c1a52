// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/homer-cli/homer/internal/config"
	"github.com/homer-cli/homer/internal/log"
	"github.com/homer-cli/homer/internal/meta"
	"github.com/homer-cli/homer/internal/output"
	"github.com/homer-cli/homer/internal/project"
	"github.com/homer-cli/homer/internal/resolve"
)

func InitApp(ctx context.Context, args []string, inv resolve.Invocation) (*cli.Command, error) {

	sd, _ := os.Getwd()

	// A broken or missing config file is not fatal; defaults apply.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config load: err=%v", err)
	}
	m := meta.Meta{
		Args:        args,
		Invocation:  inv,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	// The project layout is discovered up front but its absence is not fatal
	// here: help, version and completion must work anywhere. Commands that
	// need a root report the discovery error themselves.
	if layout, err := project.Discover(sd); err == nil {
		m.Project = layout
	} else {
		log.Debugf("no project layout: err=%v", err)
	}

	app := &cli.Command{
		Name:  "homer",
		Usage: "Terraform and Packer convenience front end",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "homer version info",
				HideDefault: true,
			},
			noColorFlag,
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Config first, then the flag: --no-color always wins.
			if enabled, ok := colorFromConfig(); ok {
				output.SetColor(enabled)
			}
			if c.Bool("no-color") {
				output.SetColor(false)
			}
			return ctx, nil
		},
	}

	app.Commands = append(app.Commands,
		initCommandBuilder(m),
		planCommandBuilder(m),
		applyCommandBuilder(m),
		destroyCommandBuilder(m),
		unlockCommandBuilder(m),
		buildCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// colorFromConfig reads the "color" config key. The second return is false
// when the key is absent, leaving the tty-derived default in place.
func colorFromConfig() (bool, bool) {
	enabled, err := config.GetBool(config.KeyColor)
	return enabled, err == nil
}
