// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_OrderAgnostic(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{
			name:   "command first",
			tokens: []string{"plan", "pre"},
		},
		{
			name:   "target first",
			tokens: []string{"pre", "plan"},
		},
		{
			name:   "alias first",
			tokens: []string{"p", "pre"},
		},
		{
			name:   "target then alias",
			tokens: []string{"pre", "p"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Resolve(tt.tokens)
			assert.NoError(t, err)
			assert.Equal(t, CmdPlan, inv.Command)
			assert.Equal(t, "pre", inv.Target)
			assert.False(t, inv.Interactive)
			assert.Empty(t, inv.ExtraArgs)
		})
	}
}

func TestResolve_AliasesMatchFullNames(t *testing.T) {
	pairs := map[string]string{
		"p": "plan",
		"a": "apply",
		"d": "destroy",
		"u": "unlock",
		"b": "build",
	}

	for short, full := range pairs {
		shortInv, err := Resolve([]string{short, "pre"})
		assert.NoError(t, err)
		fullInv, err := Resolve([]string{full, "pre"})
		assert.NoError(t, err)
		assert.Equal(t, fullInv, shortInv, "alias %q should resolve like %q", short, full)
	}
}

func TestResolve_ExtraArgsVerbatim(t *testing.T) {
	inv, err := Resolve([]string{"build", "webapp", "--", "-var=ami_version=1.2.3", "-i", "--weird"})
	assert.NoError(t, err)
	assert.Equal(t, CmdBuild, inv.Command)
	assert.Equal(t, "webapp", inv.Target)
	// Everything after -- is preserved in order and never reparsed as a flag.
	assert.Equal(t, []string{"-var=ami_version=1.2.3", "-i", "--weird"}, inv.ExtraArgs)
	assert.False(t, inv.Interactive)
}

func TestResolve_Interactive(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		wantErr bool
	}{
		{
			name:   "plan with -i",
			tokens: []string{"plan", "pre", "-i"},
		},
		{
			name:   "destroy with --interactive",
			tokens: []string{"pre", "destroy", "--interactive"},
		},
		{
			name:    "apply with -i is a usage error",
			tokens:  []string{"apply", "pre", "-i"},
			wantErr: true,
		},
		{
			name:    "build with -i is a usage error",
			tokens:  []string{"build", "webapp", "-i"},
			wantErr: true,
		},
		{
			name:    "unlock with -i is a usage error",
			tokens:  []string{"u", "pre", "-i"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Resolve(tt.tokens)
			if tt.wantErr {
				var ue *UsageError
				assert.ErrorAs(t, err, &ue)
				return
			}
			assert.NoError(t, err)
			assert.True(t, inv.Interactive)
		})
	}
}

func TestResolve_UsageErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{
			name:   "no command",
			tokens: []string{"pre", "pro"},
		},
		{
			name:   "two commands is ambiguous",
			tokens: []string{"plan", "apply"},
		},
		{
			name:   "missing target",
			tokens: []string{"plan"},
		},
		{
			name:   "nothing at all",
			tokens: []string{},
		},
		{
			name:   "unknown flag",
			tokens: []string{"plan", "pre", "--frobnicate"},
		},
		{
			name:   "too many positionals",
			tokens: []string{"plan", "pre", "pro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.tokens)
			var ue *UsageError
			assert.ErrorAs(t, err, &ue)
		})
	}
}

func TestCommands(t *testing.T) {
	cmds := Commands()
	assert.Equal(t,
		[]string{CmdInit, CmdPlan, CmdApply, CmdDestroy, CmdUnlock, CmdBuild}, cmds)

	// Every listed command is its own canonical form.
	for _, c := range cmds {
		got, ok := Canonical(c)
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
}

func TestCanonical(t *testing.T) {
	c, ok := Canonical("p")
	assert.True(t, ok)
	assert.Equal(t, CmdPlan, c)

	_, ok = Canonical("pre")
	assert.False(t, ok)
}

func TestInteractive(t *testing.T) {
	assert.True(t, Interactive(CmdPlan))
	assert.True(t, Interactive(CmdDestroy))
	assert.False(t, Interactive(CmdApply))
	assert.False(t, Interactive(CmdBuild))
	assert.False(t, Interactive(CmdInit))
	assert.False(t, Interactive(CmdUnlock))
}
