// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/homer-cli/homer/internal/meta"
)

const bashCompletionScript = `# bash completion for homer
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_homer()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "init plan p apply a destroy d unlock u build b completion --help --version" -- "$cur") )
        # Targets are accepted in either position, so offer directories too.
        COMPREPLY+=( $(compgen -o dirnames -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}

    case "$cmd" in
        plan|p|destroy|d)
            local opts="-i --interactive --no-color --terraform-bin"
            ;;
        init|apply|a|unlock|u)
            local opts="--no-color --terraform-bin"
            ;;
        build|b)
            local opts="--no-color --packer-bin"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="init plan p apply a destroy d unlock u build b"
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise complete the target positional as a directory name.
    COMPREPLY=( $(compgen -o dirnames -- "$cur") )
    return 0
}

complete -F _homer homer
`

const zshCompletionScript = `#compdef homer

_homer() {
  local -a cmds
  cmds=(
    'init:initialize the Terraform backend of an environment'
    'plan:plan the changes of an environment'
    'apply:apply the changes of an environment'
    'destroy:destroy the infrastructure of an environment'
    'unlock:release a held Terraform state lock'
    'build:build a Packer image for an app'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'homer commands' cmds
    _directories
    return
  fi

  case $words[2] in
    plan|p|destroy|d)
      _arguments -C \
        '(-i --interactive)'{-i,--interactive}'[pick target resources before acting]' \
        '--no-color[disable styled output]' \
        '--terraform-bin[terraform executable to invoke]:binary' \
        '::target:_directories'
      ;;
    init|apply|a|unlock|u)
      _arguments -C \
        '--no-color[disable styled output]' \
        '--terraform-bin[terraform executable to invoke]:binary' \
        '::target:_directories'
      ;;
    build|b)
      _arguments -C \
        '--no-color[disable styled output]' \
        '--packer-bin[packer executable to invoke]:binary' \
        '::target:_directories'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C '*:target:_directories'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _homer homer
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: homer completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "homer completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": m,
		},
		Action: completionCommandAction,
	}
}
