// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/homer-cli/homer/internal/meta"
	"github.com/homer-cli/homer/internal/packer"
	"github.com/homer-cli/homer/internal/project"
	"github.com/homer-cli/homer/internal/terraform"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// requireLayout returns the discovered project layout or the discovery
// error for commands that cannot run without one.
func requireLayout(m meta.Meta) (*project.Layout, error) {
	if m.Project == nil {
		return nil, project.ErrNoProjectRoot
	}
	return m.Project, nil
}

// newTerraform builds the terraform facade for an action, honoring the
// --terraform-bin override. Callers own the Cleanup.
func newTerraform(cmd *cli.Command, m meta.Meta) (*terraform.Terraform, error) {
	layout, err := requireLayout(m)
	if err != nil {
		return nil, err
	}

	tf, err := terraform.New(layout)
	if err != nil {
		return nil, err
	}
	if bin := cmd.String("terraform-bin"); bin != "" {
		tf.Binary = bin
	}
	return tf, nil
}

// newPacker builds the packer facade for an action, honoring the
// --packer-bin override.
func newPacker(cmd *cli.Command, m meta.Meta) (*packer.Packer, error) {
	layout, err := requireLayout(m)
	if err != nil {
		return nil, err
	}

	p := packer.New(layout)
	if bin := cmd.String("packer-bin"); bin != "" {
		p.Binary = bin
	}
	return p, nil
}
