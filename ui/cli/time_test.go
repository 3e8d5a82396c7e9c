// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jacktogon/gotools/internal/timeconv"
)

func TestTimeFmtCommand(t *testing.T) {
	cmd := newTimeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"fmt", "3661.5"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := timeconv.FormatSeconds(3661.5)
	if got := strings.TrimSpace(out.String()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTimeParseCommand(t *testing.T) {
	cmd := newTimeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"parse", "1:01:01"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "3661" {
		t.Fatalf("got %q, want 3661", got)
	}
}

func TestTimeFmtCommand_InvalidInput(t *testing.T) {
	cmd := newTimeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"fmt", "not-a-number"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for non-numeric seconds")
	}
}
