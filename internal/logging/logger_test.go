// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer verifies the package helper functions write
// formatted messages to the package-level logger `L`. The test swaps `L` with
// a buffer-backed logger and restores it afterwards.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestLoggerLevelGating(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(LevelWarn, WithOutput(&buf))
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	l.Info("visible info")
	l.Warn("visible warn")
	l.Error("hidden error")
	l.Debug("hidden debug")

	out := buf.String()
	if !strings.Contains(out, "visible info") {
		t.Fatalf("info record missing: %s", out)
	}
	if !strings.Contains(out, "visible warn") {
		t.Fatalf("warn record missing: %s", out)
	}
	// Verbosity scale: a Warn-level logger does not emit error or debug.
	if strings.Contains(out, "hidden error") || strings.Contains(out, "hidden debug") {
		t.Fatalf("record above verbosity level leaked: %s", out)
	}
}

func TestLoggerTagAlignment(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(LevelAll, WithOutput(&buf), WithName("daemon"))
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	if got, want := l.tag(LevelInfo), "[daemon INFO]"; !strings.HasPrefix(got, want) {
		t.Fatalf("tag = %q, want prefix %q", got, want)
	}
	if len(l.tag(LevelInfo)) != len(l.tag(LevelError)) {
		t.Fatalf("tags not aligned: %q vs %q", l.tag(LevelInfo), l.tag(LevelError))
	}
}

func TestLoggerSyncFileSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "out.log")

	var buf bytes.Buffer
	l, err := NewLogger(LevelAll, WithOutput(&buf), WithFile(path, false))
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	l.Info("to file")
	l.Error("and this")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(b)
	if !strings.Contains(content, "to file") || !strings.Contains(content, "and this") {
		t.Fatalf("file sink missing records: %s", content)
	}
	// File records carry no color escapes.
	if strings.Contains(content, "\033[") {
		t.Fatalf("file sink contains escape sequences: %q", content)
	}
}

func TestLoggerAsyncFileSinkFlush(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "async.log")

	var buf bytes.Buffer
	l, err := NewLogger(LevelAll, WithOutput(&buf), WithAsyncFile(path, false))
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		l.Info("record", i)
	}
	l.Flush()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if got := strings.Count(string(b), "\n"); got != 100 {
		t.Fatalf("flushed %d records, want 100", got)
	}

	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestLoggerAppendKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	if err := os.WriteFile(path, []byte("previous line\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	var buf bytes.Buffer
	l, err := NewLogger(LevelAll, WithOutput(&buf), WithFile(path, true))
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	l.Warn("appended")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	b, _ := os.ReadFile(path)
	if !strings.Contains(string(b), "previous line") || !strings.Contains(string(b), "appended") {
		t.Fatalf("append mode lost data: %s", b)
	}
}
