// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package terraform

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/homer-cli/homer/internal/output"
	"github.com/homer-cli/homer/internal/tui"
)

const tempPlanFile = "tmp.tfplan"

// runInteractive drives the interactive plan/destroy flow: save a plan,
// extract its resource changes from `show -json`, let the user pick, then
// re-invoke the command scoped to the selection.
func (t *Terraform) runInteractive(ctx context.Context, env, dir, command string, extra []string) error {
	output.Header("Interactive %s - environment: %s", command, env)

	changes, err := t.planChanges(ctx, dir, command == "destroy", extra)
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		fmt.Println(output.Success("the plan contains no changes, nothing to do"))
		return nil
	}

	choice, picked, err := tui.SelectChange(changes)
	if err != nil {
		return err
	}

	switch choice {
	case tui.ChoiceCancel:
		fmt.Println(output.Warn("cancelled, nothing executed"))
		return nil

	case tui.ChoiceAll:
		return t.run(ctx, dir, append([]string{command}, extra...)...)

	default:
		args := []string{command, "-target=" + picked.Address}
		if command == "destroy" {
			ok, err := tui.Confirm(fmt.Sprintf("destroy %s?", picked.Address))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(output.Warn("cancelled, nothing executed"))
				return nil
			}
			args = append(args, "-auto-approve")
		}
		return t.run(ctx, dir, append(args, extra...)...)
	}
}

// planChanges saves a plan to the scratch dir and returns its non-no-op
// resource changes.
func (t *Terraform) planChanges(ctx context.Context, dir string, destroy bool, extra []string) ([]tui.Change, error) {
	planFile := filepath.Join(t.tempDir, tempPlanFile)

	args := append([]string{"plan", "-input=false", "-out", planFile}, extra...)
	if destroy {
		args = append(args, "-destroy")
	}
	if err := t.run(ctx, dir, args...); err != nil {
		return nil, err
	}

	res, err := t.capture(ctx, dir, "show", "-json", planFile)
	if err != nil {
		return nil, err
	}

	return parseChanges(res.Stdout), nil
}

// parseChanges extracts the actionable resource changes from the JSON plan
// representation produced by `terraform show -json`.
func parseChanges(planJSON string) []tui.Change {
	var changes []tui.Change

	gjson.Get(planJSON, "resource_changes").ForEach(func(_, rc gjson.Result) bool {
		var actions []string
		rc.Get("change.actions").ForEach(func(_, a gjson.Result) bool {
			actions = append(actions, a.String())
			return true
		})

		joined := strings.Join(actions, ",")
		if joined == "" || strings.Contains(joined, "no-op") {
			return true
		}

		changes = append(changes, tui.Change{
			Address: rc.Get("address").String(),
			Actions: joined,
		})
		return true
	})

	return changes
}
