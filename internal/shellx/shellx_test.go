// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package shellx

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestPromptTransformsAndValidates(t *testing.T) {
	var out strings.Builder
	got, err := Prompt(&out, strings.NewReader("42\n"), "Give a positive int: ",
		strconv.Atoi, func(n int) bool { return n > 0 })
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if out.String() != "Give a positive int: " {
		t.Fatalf("prompt text = %q", out.String())
	}
}

func TestPromptInvalidInput(t *testing.T) {
	var out strings.Builder

	_, err := Prompt(&out, strings.NewReader("-3\n"), "n: ",
		strconv.Atoi, func(n int) bool { return n > 0 })
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("validation failure: err = %v, want ErrInvalidInput", err)
	}

	_, err = Prompt(&out, strings.NewReader("not-a-number\n"), "n: ",
		strconv.Atoi, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("transform failure: err = %v, want ErrInvalidInput", err)
	}
}

func TestPromptTrimsCRLF(t *testing.T) {
	got, err := Prompt(io.Discard, strings.NewReader("hello\r\n"), "",
		func(s string) (string, error) { return s, nil }, nil)
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestStreamReaderDeliversLines(t *testing.T) {
	sr := NewStreamReader(strings.NewReader("one\ntwo\r\nthree\n"), 10)
	defer sr.Stop()

	for _, want := range []string{"one", "two", "three"} {
		line, ok := sr.ReadBlocking()
		if !ok {
			t.Fatalf("stream ended before %q", want)
		}
		if line != want {
			t.Fatalf("got %q, want %q", line, want)
		}
	}
	if _, ok := sr.ReadBlocking(); ok {
		t.Fatal("expected end of stream")
	}
}

func TestStreamReaderTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	sr := NewStreamReader(pr, 10)
	defer sr.Stop()

	if _, ok := sr.Read(20 * time.Millisecond); ok {
		t.Fatal("read returned a line from an idle stream")
	}

	go func() { _, _ = pw.Write([]byte("late\n")) }()
	line, ok := sr.Read(time.Second)
	if !ok || line != "late" {
		t.Fatalf("got (%q, %v), want (\"late\", true)", line, ok)
	}
}

func TestStreamReaderNonBlockingPoll(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	sr := NewStreamReader(pr, 10)
	defer sr.Stop()

	if _, ok := sr.Read(0); ok {
		t.Fatal("poll returned a line from an idle stream")
	}
}

func swapPasswordInput(t *testing.T, r io.Reader) {
	t.Helper()
	orig := passwordInput
	passwordInput = r
	t.Cleanup(func() { passwordInput = orig })
}

func TestReadPasswordPlainReaderFallback(t *testing.T) {
	swapPasswordInput(t, strings.NewReader("s3cret\n"))

	pw, err := ReadPassword("Password: ")
	if err != nil {
		t.Fatalf("ReadPassword failed: %v", err)
	}
	if pw != "s3cret" {
		t.Fatalf("got %q, want s3cret", pw)
	}
}

func TestReadPasswordNonTTYFileFallback(t *testing.T) {
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer pr.Close()
	if _, err := pw.WriteString("piped\r\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	pw.Close()

	swapPasswordInput(t, pr)
	origTerm := isTerminal
	isTerminal = func(fd int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	got, err := ReadPassword("Password: ")
	if err != nil {
		t.Fatalf("ReadPassword failed: %v", err)
	}
	if got != "piped" {
		t.Fatalf("got %q, want piped", got)
	}
}

func TestReadPasswordChecksTerminal(t *testing.T) {
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer pr.Close()
	if _, err := pw.WriteString("line\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	pw.Close()

	swapPasswordInput(t, pr)
	asked := false
	origTerm := isTerminal
	isTerminal = func(fd int) bool {
		asked = true
		return false
	}
	t.Cleanup(func() { isTerminal = origTerm })

	if _, err := ReadPassword(""); err != nil {
		t.Fatalf("ReadPassword failed: %v", err)
	}
	if !asked {
		t.Fatal("terminal check skipped for file input")
	}
}
