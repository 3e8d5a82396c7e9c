// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package termstyle

import (
	"fmt"
	"io"
)

// Raw cursor control sequences. The parameterized ones take the count or
// coordinates as fmt verbs; use the Cursor type for the common cases.
const (
	CursorUp         = "\033[%dA"
	CursorDown       = "\033[%dB"
	CursorForward    = "\033[%dC"
	CursorBack       = "\033[%dD"
	CursorNextLine   = "\033[%dE"
	CursorPrevLine   = "\033[%dF"
	CursorSetColumn  = "\033[%dG"
	CursorSetPos     = "\033[%d;%dH"
	CursorSavePos    = "\033[s"
	CursorRestorePos = "\033[u"
	CursorHide       = "\033[?25l"
	CursorShow       = "\033[?25h"
)

// Cursor writes cursor control sequences to an output stream. A zero or
// negative move count is clamped to 1, matching the terminal default.
type Cursor struct {
	W io.Writer
}

// NewCursor returns a Cursor writing to w.
func NewCursor(w io.Writer) *Cursor {
	return &Cursor{W: w}
}

func clamp(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// MoveUp moves the cursor up by n lines.
func (c *Cursor) MoveUp(n int) {
	fmt.Fprintf(c.W, CursorUp, clamp(n))
}

// MoveDown moves the cursor down by n lines.
func (c *Cursor) MoveDown(n int) {
	fmt.Fprintf(c.W, CursorDown, clamp(n))
}

// Forward moves the cursor right by n columns.
func (c *Cursor) Forward(n int) {
	fmt.Fprintf(c.W, CursorForward, clamp(n))
}

// Back moves the cursor left by n columns.
func (c *Cursor) Back(n int) {
	fmt.Fprintf(c.W, CursorBack, clamp(n))
}

// SetPos places the cursor at the 1-based line and column.
func (c *Cursor) SetPos(line, column int) {
	fmt.Fprintf(c.W, CursorSetPos, clamp(line), clamp(column))
}

// SavePos stores the current cursor position.
func (c *Cursor) SavePos() {
	fmt.Fprint(c.W, CursorSavePos)
}

// RestorePos returns the cursor to the last saved position.
func (c *Cursor) RestorePos() {
	fmt.Fprint(c.W, CursorRestorePos)
}

// Hide makes the cursor invisible.
func (c *Cursor) Hide() {
	fmt.Fprint(c.W, CursorHide)
}

// Show makes the cursor visible again.
func (c *Cursor) Show() {
	fmt.Fprint(c.W, CursorShow)
}
