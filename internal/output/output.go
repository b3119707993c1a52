// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// colorEnabled defaults to whether stdout is a terminal; --no-color turns it
// off for the whole run.
var colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))

// SetColor overrides the tty-derived color default.
func SetColor(on bool) {
	colorEnabled = on
}

func render(style lipgloss.Style, msg string) string {
	if !colorEnabled {
		return msg
	}
	return style.Render(msg)
}

// Success returns msg styled as a success.
func Success(msg string) string { return render(successStyle, msg) }

// Warn returns msg styled as a warning.
func Warn(msg string) string { return render(warnStyle, msg) }

// Fail returns msg styled as a failure.
func Fail(msg string) string { return render(failStyle, msg) }

// Header prints a banner introducing a tool run, e.g.
//
//	============================================================
//	# Terraform Plan - environment: pre
//	============================================================
func Header(format string, args ...any) {
	rule := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n# %s\n%s\n", rule, render(headerStyle, fmt.Sprintf(format, args...)), rule)
}

// Closing prints the end-of-run banner the way the rest of the output is
// framed: a short rule around a success or failure line.
func Closing(ok bool) {
	rule := strings.Repeat("=", 20)
	if ok {
		fmt.Printf("\n%s %s %s\n", rule, Success("operation completed successfully"), rule)
	} else {
		fmt.Printf("\n%s %s %s\n", rule, Fail("operation failed"), rule)
	}
}
