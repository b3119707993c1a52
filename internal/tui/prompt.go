// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Confirm asks a yes/no question, defaulting to no.
func Confirm(question string) (bool, error) {
	answer, err := prompt(question+" (y/N)", "")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// AskLockID prompts for a manually entered lock ID. Used when the lock
// holder's ID could not be scraped from Terraform's error output.
func AskLockID() (string, error) {
	answer, err := prompt("Enter the lock ID", "00000000-0000-0000-0000-000000000000")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func prompt(question, placeholder string) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorBlink)

	p := tea.NewProgram(promptModel{question: question, input: ti})
	m, err := p.Run()
	if err != nil {
		return "", err
	}
	final := m.(promptModel)
	if final.cancelled {
		return "", nil
	}
	return final.input.Value(), nil
}

type promptModel struct {
	question  string
	input     textinput.Model
	done      bool
	cancelled bool
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n", m.question, m.input.View())
}
