// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/homer-cli/homer/internal/config"
)

var (
	noColorFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable styled output",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("HOMER_NO_COLOR"),
		),
		HideDefault: true,
	}

	interactiveFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "interactive",
		Aliases:     []string{"i"},
		Usage:       "pick the target resources from the plan before acting",
		HideDefault: true,
	}
)

// NewTerraformBinFlag lets the terraform executable be overridden per run,
// falling back to the env var and then the config file.
func NewTerraformBinFlag(cfgSource string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "terraform-bin",
		Usage: "terraform executable to invoke",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("HOMER_TERRAFORM_BIN"),
		),
		Value: config.DefaultTerraformBinary,
	}
	return valueChainFlagFromConfigFile(config.KeyTerraformBinary, cfgSource, flag)
}

// NewPackerBinFlag is the packer counterpart of NewTerraformBinFlag.
func NewPackerBinFlag(cfgSource string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "packer-bin",
		Usage: "packer executable to invoke",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("HOMER_PACKER_BIN"),
		),
		Value: config.DefaultPackerBinary,
	}
	return valueChainFlagFromConfigFile(config.KeyPackerBinary, cfgSource, flag)
}

// valueChainFlagFromConfigFile adds a config file source to the given flag's
// Sources chain. A missing config file simply contributes nothing.
func valueChainFlagFromConfigFile(key string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}
	src := yaml.YAML(key, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)
	return flag
}
