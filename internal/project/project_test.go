// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scaffold builds a throwaway project tree:
//
//	root/
//	  pre/main.tf
//	  pro/main.tf
//	  amis/webapp/webapp.pkr.hcl
//	  docs/            (no .tf, not an environment)
//	  .hidden/x.tf     (hidden, ignored)
func scaffold(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	for _, env := range []string{"pre", "pro"} {
		dir := filepath.Join(root, env)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tf"), []byte("# empty\n"), 0o644))
	}

	app := filepath.Join(root, "amis", "webapp")
	require.NoError(t, os.MkdirAll(app, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(app, "webapp.pkr.hcl"), []byte("# empty\n"), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))

	hidden := filepath.Join(root, ".hidden")
	require.NoError(t, os.MkdirAll(hidden, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hidden, "x.tf"), []byte(""), 0o644))

	return root
}

func TestDiscover_FromRoot(t *testing.T) {
	root := scaffold(t)

	l, err := Discover(root)
	assert.NoError(t, err)
	assert.Equal(t, root, l.Root)
}

func TestDiscover_FromSubdirectory(t *testing.T) {
	root := scaffold(t)

	l, err := Discover(filepath.Join(root, "pre"))
	assert.NoError(t, err)
	assert.Equal(t, root, l.Root)
}

func TestDiscover_TerraformSubdir(t *testing.T) {
	// Project keeps its environments under a terraform/ subdirectory.
	outer := t.TempDir()
	inner := filepath.Join(outer, "terraform", "pre")
	require.NoError(t, os.MkdirAll(inner, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(inner, "main.tf"), []byte(""), 0o644))

	l, err := Discover(outer)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(outer, "terraform"), l.Root)
}

func TestDiscover_NoRoot(t *testing.T) {
	_, err := Discover(t.TempDir())
	assert.ErrorIs(t, err, ErrNoProjectRoot)
}

func TestEnvironmentsAndApps(t *testing.T) {
	root := scaffold(t)
	l, err := Discover(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"pre", "pro"}, l.Environments())
	assert.Equal(t, []string{"webapp"}, l.Apps())
}

func TestEnvPath(t *testing.T) {
	root := scaffold(t)
	l, err := Discover(root)
	require.NoError(t, err)

	dir, err := l.EnvPath("pre")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "pre"), dir)

	_, err = l.EnvPath("nope")
	var tnf *TargetNotFoundError
	assert.ErrorAs(t, err, &tnf)
	assert.Equal(t, "nope", tnf.Target)
	assert.Equal(t, "environment", tnf.Kind)

	// A directory without .tf files is not an environment.
	_, err = l.EnvPath("docs")
	assert.ErrorAs(t, err, &tnf)
	assert.Empty(t, tnf.Hint)
}

func TestTargetNotFound_CrossKindHints(t *testing.T) {
	root := scaffold(t)
	l, err := Discover(root)
	require.NoError(t, err)

	// An app name given where an environment is expected.
	_, err = l.EnvPath("webapp")
	var tnf *TargetNotFoundError
	require.ErrorAs(t, err, &tnf)
	assert.Contains(t, err.Error(), "homer build webapp")

	// And the other way around.
	_, err = l.AppPath("pre")
	require.ErrorAs(t, err, &tnf)
	assert.Contains(t, err.Error(), "is an environment")
}

func TestAppPath(t *testing.T) {
	root := scaffold(t)
	l, err := Discover(root)
	require.NoError(t, err)

	dir, err := l.AppPath("webapp")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "amis", "webapp"), dir)

	_, err = l.AppPath("nope")
	var tnf *TargetNotFoundError
	assert.ErrorAs(t, err, &tnf)
	assert.Equal(t, "app", tnf.Kind)
}

func TestIsEnvironmentIsApp(t *testing.T) {
	root := scaffold(t)
	l, err := Discover(root)
	require.NoError(t, err)

	assert.True(t, l.IsEnvironment("pre"))
	assert.False(t, l.IsEnvironment("webapp"))
	assert.True(t, l.IsApp("webapp"))
	assert.False(t, l.IsApp("pre"))
}

func TestPinnedVersion(t *testing.T) {
	root := scaffold(t)
	l, err := Discover(root)
	require.NoError(t, err)

	_, ok := l.PinnedVersion()
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(
		filepath.Join(root, ".terraform-version"), []byte("1.7.5\n"), 0o644))

	v, ok := l.PinnedVersion()
	assert.True(t, ok)
	assert.Equal(t, "1.7.5", v)
}

func TestRequiredConstraint(t *testing.T) {
	root := scaffold(t)
	l, err := Discover(root)
	require.NoError(t, err)
	envDir, err := l.EnvPath("pre")
	require.NoError(t, err)

	_, ok := RequiredConstraint(envDir)
	assert.False(t, ok)

	tf := `terraform {
  required_version = ">= 1.5.0"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(envDir, "versions.tf"), []byte(tf), 0o644))

	c, ok := RequiredConstraint(envDir)
	assert.True(t, ok)
	assert.Equal(t, ">= 1.5.0", c)
}

func TestRequiredConstraint_SkipsBrokenFiles(t *testing.T) {
	root := scaffold(t)
	l, err := Discover(root)
	require.NoError(t, err)
	envDir, err := l.EnvPath("pro")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(
		filepath.Join(envDir, "broken.tf"), []byte("terraform {"), 0o644))

	_, ok := RequiredConstraint(envDir)
	assert.False(t, ok)
}
