// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package termstyle is a catalogue of raw ANSI escape sequences for terminal
// graphics: font styles, 16-color foreground/background sets, effects,
// 256-color and truecolor builders, and cursor control. The sequences are
// exposed verbatim so callers can compose their own output; for styled CLI
// text prefer the lipgloss adapters in styles.go.
//
// See https://en.wikipedia.org/wiki/ANSI_escape_code for the reference table.
package termstyle

import "fmt"

// Reset clears all active styles and colors.
const Reset = "\033[0m"

// Screen control.
const (
	ClearScreen = "\033[2J"
	ClearLine   = "\033[2K"
)

// Font styles.
const (
	Bold      = "\033[1m"
	Faint     = "\033[2m" // dim, decreased density
	Italic    = "\033[3m"
	Underline = "\033[4m"
	// Crossout marks characters as if for deletion. Not supported in Terminal.app.
	Crossout = "\033[9m"
	Overline = "\033[53m"
)

// Foreground colors, standard then bright.
const (
	FGBlack   = "\033[30m"
	FGRed     = "\033[31m"
	FGGreen   = "\033[32m"
	FGYellow  = "\033[33m"
	FGBlue    = "\033[34m"
	FGMagenta = "\033[35m"
	FGCyan    = "\033[36m"
	FGWhite   = "\033[37m"

	FGBrightBlack   = "\033[90m"
	FGBrightRed     = "\033[91m"
	FGBrightGreen   = "\033[92m"
	FGBrightYellow  = "\033[93m"
	FGBrightBlue    = "\033[94m"
	FGBrightMagenta = "\033[95m"
	FGBrightCyan    = "\033[96m"
	FGBrightWhite   = "\033[97m"
)

// Background colors, standard then bright.
const (
	BGBlack   = "\033[40m"
	BGRed     = "\033[41m"
	BGGreen   = "\033[42m"
	BGYellow  = "\033[43m"
	BGBlue    = "\033[44m"
	BGMagenta = "\033[45m"
	BGCyan    = "\033[46m"
	BGWhite   = "\033[47m"

	BGBrightBlack   = "\033[100m"
	BGBrightRed     = "\033[101m"
	BGBrightGreen   = "\033[102m"
	BGBrightYellow  = "\033[103m"
	BGBrightBlue    = "\033[104m"
	BGBrightMagenta = "\033[105m"
	BGBrightCyan    = "\033[106m"
	BGBrightWhite   = "\033[107m"
)

// Effects.
const (
	SlowBlink = "\033[5m"
	// RapidBlink is MS-DOS ANSI.SYS, 150+ per minute; not widely supported.
	RapidBlink = "\033[6m"
	NoBlink    = "\033[25m"
	// Conceal is not widely supported.
	Conceal = "\033[8m"
)

// Composed styles for debug and error output.
const (
	Debug = "\x1b[1;90;43m"
	Error = "\x1b[1;97;101m"
)

// FG256 returns the foreground sequence for a 256-color mode color code.
//
// Supported by GNOME Terminal, iTerm2, Konsole, Windows Terminal, Alacritty
// and friends; older terminals and plain Command Prompt ignore it.
func FG256(code int) string {
	return fmt.Sprintf("\033[38;5;%dm", code)
}

// BG256 returns the background sequence for a 256-color mode color code.
func BG256(code int) string {
	return fmt.Sprintf("\033[48;5;%dm", code)
}

// FGRGB returns the foreground sequence for a 24-bit truecolor value.
func FGRGB(r, g, b int) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// BGRGB returns the background sequence for a 24-bit truecolor value.
func BGRGB(r, g, b int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}
