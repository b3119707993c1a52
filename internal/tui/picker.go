// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/homer-cli/homer/internal/output"
)

// Change is one proposed resource change from a Terraform plan.
type Change struct {
	Address string
	Actions string // comma-joined actions, e.g. "create" or "delete,create"
}

// Choice is the outcome of the picker.
type Choice int

const (
	ChoiceCancel Choice = iota
	ChoiceAll
	ChoiceOne
)

// SelectChange presents the proposed changes and lets the user pick a single
// resource, everything, or nothing.
func SelectChange(changes []Change) (Choice, Change, error) {
	p := tea.NewProgram(pickerModel{items: changes})
	m, err := p.Run()
	if err != nil {
		return ChoiceCancel, Change{}, err
	}
	final := m.(pickerModel)
	return final.choice, final.picked, nil
}

type pickerModel struct {
	items  []Change
	cursor int
	choice Choice
	picked Change
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			m.choice = ChoiceCancel
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "a":
			m.choice = ChoiceAll
			return m, tea.Quit
		case "enter":
			m.choice = ChoiceOne
			m.picked = m.items[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := "Proposed resource changes:\n\n"
	for i, c := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s += fmt.Sprintf("%s %2d) %s\n", cursor, i+1, styleChange(c))
	}
	return s + "\nENTER: pick, A: all of them, Q/ESCAPE: cancel\n"
}

func styleChange(c Change) string {
	line := fmt.Sprintf("%s (%s)", c.Address, c.Actions)
	switch {
	case strings.Contains(c.Actions, "delete"):
		return output.Fail(line)
	case strings.Contains(c.Actions, "create"):
		return output.Success(line)
	default:
		return output.Warn(line)
	}
}
