// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homer-cli/homer/internal/resolve"
)

func TestSplitGlobalFlags(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		wantClean []string
		wantRoot []string
		wantCmd  []string
	}{
		{
			name:     "no globals",
			tokens:   []string{"plan", "pre", "-i"},
			wantClean: []string{"plan", "pre", "-i"},
		},
		{
			name:     "no-color extracted as root flag",
			tokens:   []string{"plan", "pre", "--no-color"},
			wantClean: []string{"plan", "pre"},
			wantRoot: []string{"--no-color"},
		},
		{
			name:     "value flag with separate value",
			tokens:   []string{"plan", "--terraform-bin", "tofu", "pre"},
			wantClean: []string{"plan", "pre"},
			wantCmd:  []string{"--terraform-bin", "tofu"},
		},
		{
			name:     "value flag with equals",
			tokens:   []string{"pre", "plan", "--terraform-bin=tofu"},
			wantClean: []string{"pre", "plan"},
			wantCmd:  []string{"--terraform-bin=tofu"},
		},
		{
			name:     "globals after separator stay put",
			tokens:   []string{"build", "webapp", "--", "--no-color", "-var=x"},
			wantClean: []string{"build", "webapp", "--", "--no-color", "-var=x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, rootFlags, cmdFlags := splitGlobalFlags(tt.tokens)
			assert.Equal(t, tt.wantClean, clean)
			assert.Equal(t, tt.wantRoot, rootFlags)
			assert.Equal(t, tt.wantCmd, cmdFlags)
		})
	}
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name      string
		inv       resolve.Invocation
		rootFlags []string
		cmdFlags  []string
		want      []string
	}{
		{
			name: "plain",
			inv:  resolve.Invocation{Command: "apply", Target: "pro"},
			want: []string{"homer", "apply", "pro"},
		},
		{
			name: "interactive plan",
			inv:  resolve.Invocation{Command: "plan", Target: "pre", Interactive: true},
			want: []string{"homer", "plan", "pre", "--interactive"},
		},
		{
			name: "build with extras",
			inv: resolve.Invocation{
				Command:   "build",
				Target:    "webapp",
				ExtraArgs: []string{"-var=ami_version=1.2.3"},
			},
			want: []string{"homer", "build", "webapp", "--", "-var=ami_version=1.2.3"},
		},
		{
			name:     "command flags follow the target",
			inv:      resolve.Invocation{Command: "plan", Target: "pre"},
			cmdFlags: []string{"--terraform-bin", "tofu"},
			want:     []string{"homer", "plan", "pre", "--terraform-bin", "tofu"},
		},
		{
			name:      "root flags precede the command",
			inv:       resolve.Invocation{Command: "plan", Target: "pre"},
			rootFlags: []string{"--no-color"},
			want:      []string{"homer", "--no-color", "plan", "pre"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(tt.inv, tt.rootFlags, tt.cmdFlags))
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"homer", "--help"}, handleNakedCommand([]string{"homer"}))
	assert.Equal(t, []string{"homer", "plan", "pre"}, handleNakedCommand([]string{"homer", "plan", "pre"}))
}

func TestHandleVersion(t *testing.T) {
	assert.True(t, handleVersion([]string{"homer", "--version"}))
	assert.True(t, handleVersion([]string{"homer", "plan", "-v"}))
	assert.False(t, handleVersion([]string{"homer", "plan", "pre"}))
	// -v after the separator belongs to the child tool.
	assert.False(t, handleVersion([]string{"homer", "build", "webapp", "--", "-v"}))
	assert.False(t, handleVersion([]string{"homer", "build", "webapp", "--", "--version"}))
}

func TestHelpRequested(t *testing.T) {
	assert.True(t, helpRequested([]string{"homer", "--help"}))
	assert.True(t, helpRequested([]string{"homer", "plan", "-h"}))
	assert.False(t, helpRequested([]string{"homer", "plan", "pre"}))
	// -h after the separator belongs to the child tool.
	assert.False(t, helpRequested([]string{"homer", "build", "webapp", "--", "-h"}))
}
