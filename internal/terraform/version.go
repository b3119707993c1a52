// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package terraform

import (
	"context"
	"fmt"

	goversion "github.com/hashicorp/go-version"
	"github.com/tidwall/gjson"

	"github.com/homer-cli/homer/internal/log"
	"github.com/homer-cli/homer/internal/output"
	"github.com/homer-cli/homer/internal/project"
)

// Version probes the active terraform binary with `version -json`.
func (t *Terraform) Version(ctx context.Context) (string, error) {
	res, err := t.capture(ctx, t.Layout.Root, "version", "-json")
	if err != nil {
		return "", err
	}

	v := gjson.Get(res.Stdout, "terraform_version").String()
	if v == "" {
		return "", fmt.Errorf("could not read terraform_version from `%s version -json`", t.Binary)
	}
	return v, nil
}

// VerifyVersion enforces the project's .terraform-version pin and warns when
// the active binary falls outside the environment's required_version
// constraint. When the active version cannot be determined at all, the check
// is skipped with a warning rather than blocking the run.
func (t *Terraform) VerifyVersion(ctx context.Context, envDir string) error {
	current, err := t.Version(ctx)
	if err != nil {
		log.Warnf("could not determine terraform version, skipping check: %v", err)
		return nil
	}

	if pinned, ok := t.Layout.PinnedVersion(); ok && !sameVersion(current, pinned) {
		return fmt.Errorf(
			"active terraform %s does not match .terraform-version pin %s (try `tfenv install`)",
			current, pinned)
	}

	if spec, ok := RequiredConstraintWarn(envDir, current); ok {
		fmt.Println(output.Warn(fmt.Sprintf(
			"terraform %s does not satisfy required_version %q", current, spec)))
	}

	return nil
}

// RequiredConstraintWarn returns the environment's required_version spec and
// true when the current version fails to satisfy it. Unparseable specs or
// versions disable the check rather than failing it.
func RequiredConstraintWarn(envDir, current string) (string, bool) {
	spec, ok := project.RequiredConstraint(envDir)
	if !ok {
		return "", false
	}

	cs, err := goversion.NewConstraint(spec)
	if err != nil {
		log.Debugf("unparseable required_version: spec=%q err=%v", spec, err)
		return "", false
	}
	v, err := goversion.NewVersion(current)
	if err != nil {
		return "", false
	}

	return spec, !cs.Check(v)
}

func sameVersion(a, b string) bool {
	va, errA := goversion.NewVersion(a)
	vb, errB := goversion.NewVersion(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return va.Equal(vb)
}
