// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package terraform

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const samplePlanJSON = `{
  "format_version": "1.2",
  "resource_changes": [
    {
      "address": "aws_instance.web",
      "change": {"actions": ["create"]}
    },
    {
      "address": "aws_s3_bucket.logs",
      "change": {"actions": ["no-op"]}
    },
    {
      "address": "aws_iam_role.old",
      "change": {"actions": ["delete", "create"]}
    }
  ]
}`

func TestParseChanges(t *testing.T) {
	changes := parseChanges(samplePlanJSON)

	assert.Len(t, changes, 2)
	assert.Equal(t, "aws_instance.web", changes[0].Address)
	assert.Equal(t, "create", changes[0].Actions)
	assert.Equal(t, "aws_iam_role.old", changes[1].Address)
	assert.Equal(t, "delete,create", changes[1].Actions)
}

func TestParseChanges_EmptyPlan(t *testing.T) {
	assert.Empty(t, parseChanges(`{"resource_changes": []}`))
	assert.Empty(t, parseChanges(`{}`))
	assert.Empty(t, parseChanges(`not json at all`))
}

func TestParseLockInfo(t *testing.T) {
	full := `Error: Error acquiring the state lock

Error message: resource temporarily unavailable
Lock Info:
  ID:        21f19882-a355-4c7c-9a4e-bf1dd7090116
  Path:      mybucket/pre/terraform.tfstate
  Operation: OperationTypePlan
  Who:       deploy@bastion
  Version:   1.7.5
  Created:   2026-08-29 09:30:00.123456 +0000 UTC
`

	info := parseLockInfo(full)
	assert.Equal(t, "21f19882-a355-4c7c-9a4e-bf1dd7090116", info.ID)
	assert.Equal(t, "deploy@bastion", info.Who)
	assert.Equal(t, time.Date(2026, 8, 29, 9, 30, 0, 123456000, time.UTC), info.Created.UTC())
}

func TestParseLockInfo_NothingScraped(t *testing.T) {
	info := parseLockInfo("Error: everything is on fire")
	assert.Empty(t, info.ID)
	assert.Empty(t, info.Who)
	assert.True(t, info.Created.IsZero())
}

func TestRequiredConstraintWarn(t *testing.T) {
	dir := t.TempDir()

	_, warn := RequiredConstraintWarn(dir, "1.7.5")
	assert.False(t, warn, "no constraint, no warning")

	tf := `terraform {
  required_version = ">= 1.5.0"
}
`
	writeFile(t, dir, "versions.tf", tf)

	spec, warn := RequiredConstraintWarn(dir, "1.4.0")
	assert.True(t, warn)
	assert.Equal(t, ">= 1.5.0", spec)

	_, warn = RequiredConstraintWarn(dir, "1.7.5")
	assert.False(t, warn)
}

func TestSameVersion(t *testing.T) {
	assert.True(t, sameVersion("1.7.5", "1.7.5"))
	assert.True(t, sameVersion("v1.7.5", "1.7.5"))
	assert.False(t, sameVersion("1.7.5", "1.7.4"))
	// Unparseable versions fall back to string equality.
	assert.True(t, sameVersion("weird", "weird"))
	assert.False(t, sameVersion("weird", "weirder"))
}
