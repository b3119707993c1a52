// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package packer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/homer-cli/homer/internal/config"
	"github.com/homer-cli/homer/internal/output"
	"github.com/homer-cli/homer/internal/project"
	"github.com/homer-cli/homer/internal/runner"
)

// Packer drives the packer binary against the apps of a project layout.
type Packer struct {
	Binary string
	Layout *project.Layout
}

// New builds a Packer facade for the given layout.
func New(layout *project.Layout) *Packer {
	return &Packer{
		Binary: config.PackerBinary(),
		Layout: layout,
	}
}

// Build validates the app's templates, then runs `packer init .` followed by
// `packer build [extra...] .` in the app directory. Extra args come before
// the template path so -var flags reach Packer unmodified.
func (p *Packer) Build(ctx context.Context, app string, extra []string) error {
	dir, err := p.Layout.AppPath(app)
	if err != nil {
		return err
	}

	if err := checkTemplates(dir); err != nil {
		return err
	}

	output.Header("Packer Build - app: %s", app)

	if err := runner.Run(ctx, dir, p.Binary, "init", "."); err != nil {
		return err
	}

	args := append([]string{"build"}, extra...)
	args = append(args, ".")
	return runner.Run(ctx, dir, p.Binary, args...)
}

// checkTemplates syntax-checks the app's .pkr.hcl files so a typo fails
// before any plugin downloads happen.
func checkTemplates(dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.pkr.hcl"))
	if err != nil {
		return err
	}

	parser := hclparse.NewParser()
	for _, file := range matches {
		if _, diags := parser.ParseHCLFile(file); diags.HasErrors() {
			return fmt.Errorf("template %s does not parse: %s", file, diags.Error())
		}
	}

	return nil
}
