// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui styles. Shared lipgloss styles keep the dashboard consistent.
package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240") // muted gray
	colorHighlight = lipgloss.Color("81")  // teal/cyan
	colorError     = lipgloss.Color("196") // bright red
	colorValue     = lipgloss.Color("40")  // green
)

var (
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	valueStyle = lipgloss.NewStyle().Foreground(colorValue).Bold(true)
)
