// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package progress renders in-place terminal progress bars, single-line and
// one-line-per-worker.
package progress

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/jacktogon/gotools/internal/termstyle"
	"github.com/jacktogon/gotools/internal/timeconv"
)

var (
	fillChars  = []string{"█", "■", "☒", "▮", "▀", "◉", "=", "+"}
	trackChars = []string{"░", "⣀", "□", "▯", "▄", "◌", "-"}
)

// Style pairs a colored track character with a colored fill character.
type Style struct {
	TrackColor string
	TrackChar  string
	FillColor  string
	FillChar   string
}

// Styles is the built-in style table. DefaultStyle indexes into it.
var Styles = []Style{
	{termstyle.FGWhite, trackChars[0], termstyle.FGWhite, fillChars[1]},
	{termstyle.FGYellow, trackChars[0], termstyle.FGBlue, fillChars[1]},
	{termstyle.FGYellow, trackChars[0], termstyle.FGCyan, fillChars[1]},
	{termstyle.FGGreen, trackChars[0], termstyle.FGWhite, fillChars[1]},
	{termstyle.FGWhite, trackChars[0], termstyle.FGGreen, fillChars[1]},
	{termstyle.FGCyan, trackChars[0], termstyle.FGWhite, fillChars[1]},
	{termstyle.FGWhite, trackChars[2], termstyle.FGWhite, fillChars[2]},
	{termstyle.FGYellow, trackChars[2], termstyle.FGBlue, fillChars[2]},
	{termstyle.FGYellow, trackChars[2], termstyle.FGRed, fillChars[2]},
	{termstyle.FGGreen, trackChars[2], termstyle.FGWhite, fillChars[2]},
	{termstyle.FGWhite, trackChars[2], termstyle.FGGreen, fillChars[2]},
	{termstyle.FGBlue, trackChars[2], termstyle.FGWhite, fillChars[2]},
	{termstyle.FGCyan, trackChars[2], termstyle.FGWhite, fillChars[2]},
	{termstyle.FGCyan, trackChars[6], termstyle.FGYellow, fillChars[6]},
	{termstyle.FGCyan, trackChars[6], termstyle.FGRed, fillChars[6]},
	{termstyle.FGCyan, trackChars[6], termstyle.FGRed, fillChars[7]},
	{termstyle.FGCyan, trackChars[4], termstyle.FGRed, fillChars[4]},
}

// DefaultStyle is the style a new Bar starts with.
const DefaultStyle = 14

// terminalWidth is injectable for tests.
var terminalWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// now is injectable for tests.
var now = time.Now

// Bar is a goroutine-safe single-line progress bar. The zero value is not
// usable; construct with NewBar.
type Bar struct {
	mu sync.Mutex

	out   io.Writer
	total int

	barLength     int
	dynamicLength bool

	style Style

	// UseIntervalTime resets the elapsed clock whenever a breakpoint or the
	// end of the bar is reached.
	UseIntervalTime bool

	// OnCompletion runs once when the bar reaches 100%.
	OnCompletion func()

	breakpoint   float64
	startTime    time.Time
	calledOnDone bool
}

// NewBar creates a progress bar over total steps writing to out. A barLength
// of 0 sizes the bar from the terminal width on every draw (a quarter of the
// columns, at least 10).
func NewBar(out io.Writer, total, barLength int) (*Bar, error) {
	if total <= 0 {
		return nil, fmt.Errorf("total steps must be > 0, got %d", total)
	}
	if out == nil {
		out = os.Stdout
	}

	b := &Bar{
		out:           out,
		total:         total,
		barLength:     barLength,
		dynamicLength: barLength == 0,
		style:         Styles[DefaultStyle],
		startTime:     now(),
	}
	if b.dynamicLength {
		b.updateBarLength()
	}
	return b, nil
}

func (b *Bar) updateBarLength() {
	b.barLength = max(10, terminalWidth()/4)
}

// SetStyle selects one of the built-in styles.
func (b *Bar) SetStyle(idx int) error {
	if idx < 0 || idx >= len(Styles) {
		return fmt.Errorf("style index out of range (0 ~ %d): %d", len(Styles)-1, idx)
	}
	b.mu.Lock()
	b.style = Styles[idx]
	b.mu.Unlock()
	return nil
}

// SetBreakpoint makes the bar emit a newline whenever the percentage hits a
// multiple of pct. 0 disables breakpoints.
func (b *Bar) SetBreakpoint(pct float64) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("breakpoint percentage must be in 0 ~ 100, got %v", pct)
	}
	b.mu.Lock()
	b.breakpoint = pct
	b.mu.Unlock()
	return nil
}

// Draw renders step progress (0-based, so the bar shows progress+1 of total
// steps done). pre and post are printed before and after the bar.
func (b *Bar) Draw(progress int, pre, post string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if progress < 0 || progress >= b.total {
		return fmt.Errorf("progress must be between 0 and %d, got %d", b.total-1, progress)
	}

	if b.dynamicLength {
		b.updateBarLength()
	}

	frac := float64(progress+1) / float64(b.total)
	filled := int(float64(b.barLength) * frac)
	perc := frac * 100

	elapsed := timeconv.FormatSeconds(now().Sub(b.startTime).Seconds())

	var sb strings.Builder
	sb.WriteString(b.style.FillColor)
	sb.WriteString(strings.Repeat(b.style.FillChar, filled))
	sb.WriteString(b.style.TrackColor)
	sb.WriteString(strings.Repeat(b.style.TrackChar, b.barLength-filled))
	sb.WriteString(termstyle.Reset)

	suffix := ""
	if post != "" {
		suffix = "| " + post
	}
	if _, err := fmt.Fprintf(b.out, "\r%s %s %.2f%% | Time: %s %s", pre, sb.String(), perc, elapsed, suffix); err != nil {
		return err
	}

	atBreakpoint := b.breakpoint > 0 && math.Mod(perc, b.breakpoint) == 0
	if atBreakpoint || perc >= 100 {
		if b.UseIntervalTime {
			b.startTime = now()
		}
		fmt.Fprint(b.out, termstyle.CursorShow, termstyle.Reset, "\n")
	}

	if perc >= 100 && b.OnCompletion != nil && !b.calledOnDone {
		b.calledOnDone = true
		b.OnCompletion()
	}
	return nil
}

// MultiBar renders one progress bar per worker, each on its own terminal
// line, safe for concurrent updates.
type MultiBar struct {
	mu     sync.Mutex
	out    io.Writer
	cursor *termstyle.Cursor
	bars   []*Bar
	done   int
}

// NewMultiBar creates n bars of fixed barLength over totalWork steps each,
// writing to out.
func NewMultiBar(out io.Writer, n, totalWork, barLength int) (*MultiBar, error) {
	if n <= 0 {
		return nil, fmt.Errorf("bar count must be > 0, got %d", n)
	}
	if out == nil {
		out = os.Stdout
	}
	if barLength <= 0 {
		barLength = 50
	}

	bars := make([]*Bar, n)
	for i := range bars {
		b, err := NewBar(out, totalWork, barLength)
		if err != nil {
			return nil, err
		}
		b.UseIntervalTime = true
		bars[i] = b
	}
	return &MultiBar{out: out, cursor: termstyle.NewCursor(out), bars: bars}, nil
}

// Update redraws bar barIndex at step progress. The bar for index i lives on
// terminal line i+1; the cursor is saved and restored around the draw.
func (m *MultiBar) Update(barIndex, progress int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if barIndex < 0 || barIndex >= len(m.bars) {
		return fmt.Errorf("bar index out of range (0 ~ %d): %d", len(m.bars)-1, barIndex)
	}

	m.cursor.SavePos()
	m.cursor.SetPos(barIndex+1, 1)
	if err := m.bars[barIndex].Draw(progress, "", ""); err != nil {
		m.cursor.RestorePos()
		return err
	}
	m.cursor.RestorePos()

	if progress >= m.bars[barIndex].total-1 {
		m.done++
		if m.done == len(m.bars) {
			m.cursor.SetPos(len(m.bars)+1, 1)
		}
	}
	return nil
}

// Finalize parks the cursor on the line after the last bar.
func (m *MultiBar) Finalize() {
	m.mu.Lock()
	m.cursor.SetPos(len(m.bars)+1, 1)
	m.mu.Unlock()
}
