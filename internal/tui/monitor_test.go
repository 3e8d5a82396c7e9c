// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMonitorQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c", "esc"} {
		m := NewMonitor("/", nil)
		_, cmd := m.Update(keyMsg(key))
		if cmd == nil {
			t.Fatalf("key %q did not quit", key)
		}
		if msg := cmd(); msg != tea.Quit() {
			t.Fatalf("key %q produced %v, want quit", key, msg)
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMonitorViewBeforeFirstSample(t *testing.T) {
	m := NewMonitor("/", nil)
	out := m.View()
	if !strings.Contains(out, "sampling") {
		t.Fatalf("initial view missing sampling hint: %q", out)
	}
}

func TestMonitorViewAfterReading(t *testing.T) {
	m := NewMonitor("/", nil)
	updated, _ := m.Update(readingMsg{down: 2 << 20, up: 512, disk: 42.0, cpu: 13.5, mem: 60.2})
	out := updated.View()

	if !strings.Contains(out, "2.00 MiB/s") {
		t.Fatalf("view missing download rate: %q", out)
	}
	if !strings.Contains(out, "512 B/s") {
		t.Fatalf("view missing upload rate: %q", out)
	}
	if !strings.Contains(out, "42.0%") {
		t.Fatalf("view missing disk gauge: %q", out)
	}
}

func TestMonitorWindowResizeClampsBars(t *testing.T) {
	m := NewMonitor("/", nil).(monitorModel)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 40})
	got := updated.(monitorModel)
	if got.diskBar.Width != 10 {
		t.Fatalf("narrow terminal bar width = %d, want 10", got.diskBar.Width)
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 500, Height: 40})
	got = updated.(monitorModel)
	if got.cpuBar.Width != 60 {
		t.Fatalf("wide terminal bar width = %d, want 60", got.cpuBar.Width)
	}
}

func TestFormatRate(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 B/s"},
		{1023, "1023 B/s"},
		{1 << 10, "1.00 KiB/s"},
		{3 << 20, "3.00 MiB/s"},
		{2 << 30, "2.00 GiB/s"},
	}
	for _, tc := range cases {
		if got := formatRate(tc.in); got != tc.want {
			t.Fatalf("formatRate(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
