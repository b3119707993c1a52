// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package terraform

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/homer-cli/homer/internal/output"
	"github.com/homer-cli/homer/internal/runner"
	"github.com/homer-cli/homer/internal/tui"
)

// LockNotFoundError reports that unlock found no held state lock.
type LockNotFoundError struct {
	Env string
}

func (e *LockNotFoundError) Error() string {
	return fmt.Sprintf("no state lock held for environment %q", e.Env)
}

const lockErrMarker = "Error acquiring the state lock"

var (
	lockIDRe      = regexp.MustCompile(`ID:\s*([a-f0-9-]+)`)
	lockWhoRe     = regexp.MustCompile(`Who:\s*(.+)`)
	lockCreatedRe = regexp.MustCompile(`Created:\s*(.+)`)
)

// lockInfo is what could be scraped out of Terraform's lock error output.
type lockInfo struct {
	ID      string
	Who     string
	Created time.Time
}

// Unlock probes the environment for a held state lock and releases it after
// explicit confirmation. It never deletes a lock blindly: the probe is a
// plain `terraform plan` and the release asks first.
func (t *Terraform) Unlock(ctx context.Context, env string) error {
	dir, err := t.Layout.EnvPath(env)
	if err != nil {
		return err
	}

	output.Header("Lock check - environment: %s", env)

	_, err = t.capture(ctx, dir, "plan", "-input=false")
	if err == nil {
		return &LockNotFoundError{Env: env}
	}

	var ee *runner.ExitError
	if !errors.As(err, &ee) || !strings.Contains(ee.Stderr, lockErrMarker) {
		// The plan failed for some unrelated reason; surface it untouched.
		return err
	}

	info := parseLockInfo(ee.Stderr)
	fmt.Println(output.Warn("a state lock is held"))
	if info.ID != "" {
		fmt.Printf("  ID:      %s\n", info.ID)
	}
	if info.Who != "" {
		fmt.Printf("  Held by: %s\n", info.Who)
	}
	if !info.Created.IsZero() {
		fmt.Printf("  Age:     %s\n", humanize.Time(info.Created))
	}

	ok, err := tui.Confirm("force-unlock this lock?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(output.Warn("cancelled, lock left in place"))
		return nil
	}

	id := info.ID
	if id == "" {
		if id, err = tui.AskLockID(); err != nil {
			return err
		}
	}
	if id == "" {
		fmt.Println(output.Warn("no lock ID given, lock left in place"))
		return nil
	}

	if err := t.run(ctx, dir, "force-unlock", "-force", id); err != nil {
		return err
	}

	fmt.Println(output.Success("lock released"))
	return nil
}

func parseLockInfo(stderr string) lockInfo {
	var info lockInfo

	if m := lockIDRe.FindStringSubmatch(stderr); m != nil {
		info.ID = m[1]
	}
	if m := lockWhoRe.FindStringSubmatch(stderr); m != nil {
		info.Who = strings.TrimSpace(m[1])
	}
	if m := lockCreatedRe.FindStringSubmatch(stderr); m != nil {
		// Terraform prints Created as Go's default UTC time formatting.
		if ts, err := time.Parse("2006-01-02 15:04:05.999999999 -0700 MST", strings.TrimSpace(m[1])); err == nil {
			info.Created = ts
		}
	}

	return info
}
