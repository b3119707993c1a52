// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package terraform

import (
	"context"
	"fmt"
	"os"

	"github.com/homer-cli/homer/internal/config"
	"github.com/homer-cli/homer/internal/log"
	"github.com/homer-cli/homer/internal/output"
	"github.com/homer-cli/homer/internal/project"
	"github.com/homer-cli/homer/internal/runner"
)

// Terraform drives the terraform binary against the environments of a
// project layout. It owns no state of its own beyond a scratch directory for
// plan files.
type Terraform struct {
	Binary string
	Layout *project.Layout

	tempDir string
}

// New builds a Terraform facade for the given layout. Call Cleanup when
// done to remove the scratch directory.
func New(layout *project.Layout) (*Terraform, error) {
	tempDir, err := os.MkdirTemp("", "homer-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch dir: %w", err)
	}
	return &Terraform{
		Binary:  config.TerraformBinary(),
		Layout:  layout,
		tempDir: tempDir,
	}, nil
}

// Cleanup removes the scratch directory holding temporary plan files.
func (t *Terraform) Cleanup() {
	if t.tempDir == "" {
		return
	}
	if err := os.RemoveAll(t.tempDir); err != nil {
		log.Warnf("failed to remove scratch dir %s: %v", t.tempDir, err)
	}
}

// Init runs `terraform init` in the environment with any passthrough args.
func (t *Terraform) Init(ctx context.Context, env string, extra []string) error {
	dir, err := t.Layout.EnvPath(env)
	if err != nil {
		return err
	}

	output.Header("Terraform Init - environment: %s", env)
	return t.run(ctx, dir, append([]string{"init"}, extra...)...)
}

// Plan runs `terraform plan` in the environment, interactively when asked.
func (t *Terraform) Plan(ctx context.Context, env string, interactive bool, extra []string) error {
	dir, err := t.prepare(ctx, env)
	if err != nil {
		return err
	}

	if interactive {
		return t.runInteractive(ctx, env, dir, "plan", extra)
	}

	output.Header("Terraform Plan - environment: %s", env)
	return t.run(ctx, dir, append([]string{"plan"}, extra...)...)
}

// Apply runs `terraform apply` in the environment.
func (t *Terraform) Apply(ctx context.Context, env string, extra []string) error {
	dir, err := t.prepare(ctx, env)
	if err != nil {
		return err
	}

	output.Header("Terraform Apply - environment: %s", env)
	return t.run(ctx, dir, append([]string{"apply"}, extra...)...)
}

// Destroy runs `terraform destroy` in the environment, interactively when
// asked.
func (t *Terraform) Destroy(ctx context.Context, env string, interactive bool, extra []string) error {
	dir, err := t.prepare(ctx, env)
	if err != nil {
		return err
	}

	if interactive {
		return t.runInteractive(ctx, env, dir, "destroy", extra)
	}

	output.Header("Terraform Destroy - environment: %s", env)
	return t.run(ctx, dir, append([]string{"destroy"}, extra...)...)
}

// prepare validates the environment, checks version pins, and re-inits the
// backend so plan/apply/destroy never act against a stale init.
func (t *Terraform) prepare(ctx context.Context, env string) (string, error) {
	dir, err := t.Layout.EnvPath(env)
	if err != nil {
		return "", err
	}

	if err := t.VerifyVersion(ctx, dir); err != nil {
		return "", err
	}

	if err := t.run(ctx, dir, "init", "-input=false", "-reconfigure"); err != nil {
		return "", err
	}
	return dir, nil
}

func (t *Terraform) run(ctx context.Context, dir string, args ...string) error {
	return runner.Run(ctx, dir, t.Binary, args...)
}

func (t *Terraform) capture(ctx context.Context, dir string, args ...string) (runner.Result, error) {
	return runner.Capture(ctx, dir, t.Binary, args...)
}
