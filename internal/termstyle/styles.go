// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// This file defines the shared lipgloss styles used by the CLI commands to
// ensure a consistent look and feel alongside the raw escape catalogue.
package termstyle

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used by CLI output.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for special attention
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
)

var (
	// HelpStyle renders secondary hints and help text.
	HelpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// ErrorStyle renders failure messages.
	ErrorStyle = lipgloss.NewStyle().Foreground(colorError)

	// SuccessStyle renders confirmation messages.
	SuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// SpecialStyle renders messages that deserve attention, such as
	// destructive actions or pending installs.
	SpecialStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	// TitleStyle renders section titles.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(0, 1)

	// HighlightStyle renders inline emphasis, like a module name.
	HighlightStyle = lipgloss.NewStyle().Foreground(colorHighlight)
)
