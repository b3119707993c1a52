// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/homer-cli/homer/internal/config"
	"github.com/homer-cli/homer/internal/project"
	"github.com/homer-cli/homer/internal/resolve"
)

// Meta contains runtime metadata shared by commands. It carries CLI
// arguments, the resolved invocation, loaded configuration, context, the
// discovered project layout, and the starting working directory. Project is
// nil when no root was found; commands that need one say so.
type Meta struct {
	Args        []string
	Invocation  resolve.Invocation
	Config      config.Type
	Context     context.Context
	Project     *project.Layout
	StartingDir string
}
