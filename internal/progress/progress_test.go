// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedWidth(t *testing.T, w int) {
	t.Helper()
	orig := terminalWidth
	terminalWidth = func() int { return w }
	t.Cleanup(func() { terminalWidth = orig })
}

func fixedClock(t *testing.T) {
	t.Helper()
	orig := now
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return base }
	t.Cleanup(func() { now = orig })
}

func TestBarRejectsBadTotal(t *testing.T) {
	if _, err := NewBar(nil, 0, 20); err == nil {
		t.Fatal("accepted total 0")
	}
	if _, err := NewBar(nil, -3, 20); err == nil {
		t.Fatal("accepted negative total")
	}
}

func TestBarDrawOutput(t *testing.T) {
	fixedClock(t)

	var buf bytes.Buffer
	bar, err := NewBar(&buf, 4, 8)
	if err != nil {
		t.Fatalf("NewBar failed: %v", err)
	}

	if err := bar.Draw(1, "pre", "post"); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\rpre ") {
		t.Fatalf("output missing carriage return and pre string: %q", out)
	}
	if !strings.Contains(out, "50.00%") {
		t.Fatalf("output missing percentage: %q", out)
	}
	if !strings.Contains(out, "| post") {
		t.Fatalf("output missing post string: %q", out)
	}
	// 2 of 4 steps done over an 8-cell bar: 4 fill, 4 track.
	if got := strings.Count(out, Styles[DefaultStyle].FillChar); got != 4 {
		t.Fatalf("fill cells = %d, want 4", got)
	}
	if got := strings.Count(out, Styles[DefaultStyle].TrackChar); got != 4 {
		t.Fatalf("track cells = %d, want 4", got)
	}
}

func TestBarDrawRangeCheck(t *testing.T) {
	var buf bytes.Buffer
	bar, err := NewBar(&buf, 3, 10)
	if err != nil {
		t.Fatalf("NewBar failed: %v", err)
	}
	if err := bar.Draw(3, "", ""); err == nil {
		t.Fatal("accepted progress == total")
	}
	if err := bar.Draw(-1, "", ""); err == nil {
		t.Fatal("accepted negative progress")
	}
}

func TestBarCompletionCallbackFiresOnce(t *testing.T) {
	var buf bytes.Buffer
	bar, err := NewBar(&buf, 2, 10)
	if err != nil {
		t.Fatalf("NewBar failed: %v", err)
	}

	calls := 0
	bar.OnCompletion = func() { calls++ }

	for i := 0; i < 2; i++ {
		if err := bar.Draw(i, "", ""); err != nil {
			t.Fatalf("Draw(%d) failed: %v", i, err)
		}
	}
	// Redrawing the final step must not fire the callback again.
	if err := bar.Draw(1, "", ""); err != nil {
		t.Fatalf("redraw failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("completion callback ran %d times, want 1", calls)
	}
}

func TestBarDynamicLength(t *testing.T) {
	fixedWidth(t, 120)

	var buf bytes.Buffer
	bar, err := NewBar(&buf, 10, 0)
	if err != nil {
		t.Fatalf("NewBar failed: %v", err)
	}
	if bar.barLength != 30 {
		t.Fatalf("bar length = %d, want 30", bar.barLength)
	}

	fixedWidth(t, 12)
	if err := bar.Draw(0, "", ""); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if bar.barLength != 10 {
		t.Fatalf("bar length floor = %d, want 10", bar.barLength)
	}
}

func TestBarStyleSelection(t *testing.T) {
	var buf bytes.Buffer
	bar, err := NewBar(&buf, 5, 10)
	if err != nil {
		t.Fatalf("NewBar failed: %v", err)
	}
	if err := bar.SetStyle(len(Styles)); err == nil {
		t.Fatal("accepted out-of-range style index")
	}
	if err := bar.SetStyle(3); err != nil {
		t.Fatalf("SetStyle failed: %v", err)
	}
	if bar.style != Styles[3] {
		t.Fatalf("style not applied")
	}
}

func TestBarBreakpointEmitsNewline(t *testing.T) {
	var buf bytes.Buffer
	bar, err := NewBar(&buf, 10, 10)
	if err != nil {
		t.Fatalf("NewBar failed: %v", err)
	}
	if err := bar.SetBreakpoint(50); err != nil {
		t.Fatalf("SetBreakpoint failed: %v", err)
	}

	if err := bar.Draw(4, "", ""); err != nil { // 50%
		t.Fatalf("Draw failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\n") {
		t.Fatal("no newline at breakpoint")
	}

	buf.Reset()
	if err := bar.Draw(5, "", ""); err != nil { // 60%
		t.Fatalf("Draw failed: %v", err)
	}
	if strings.Contains(buf.String(), "\n") {
		t.Fatal("newline between breakpoints")
	}
}

func TestBarFractionalBreakpoint(t *testing.T) {
	var buf bytes.Buffer
	bar, err := NewBar(&buf, 4, 8)
	if err != nil {
		t.Fatalf("NewBar failed: %v", err)
	}
	if err := bar.SetBreakpoint(0.5); err != nil {
		t.Fatalf("SetBreakpoint failed: %v", err)
	}

	if err := bar.Draw(0, "", ""); err != nil { // 25%, a multiple of 0.5
		t.Fatalf("Draw failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\n") {
		t.Fatal("no newline at fractional breakpoint")
	}
}

func TestMultiBarPositionsCursor(t *testing.T) {
	var buf bytes.Buffer
	mb, err := NewMultiBar(&buf, 3, 100, 20)
	if err != nil {
		t.Fatalf("NewMultiBar failed: %v", err)
	}

	if err := mb.Update(1, 10); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\033[2;1H") {
		t.Fatalf("bar 1 not drawn on line 2: %q", out)
	}
	if !strings.Contains(out, "\033[s") || !strings.Contains(out, "\033[u") {
		t.Fatal("cursor position not saved and restored")
	}

	if err := mb.Update(3, 0); err == nil {
		t.Fatal("accepted out-of-range bar index")
	}

	buf.Reset()
	mb.Finalize()
	if !strings.Contains(buf.String(), "\033[4;1H") {
		t.Fatalf("finalize did not park cursor after last bar: %q", buf.String())
	}
}
