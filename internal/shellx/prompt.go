// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package shellx helps with interactive shell work: validated prompts,
// non-blocking stream reading and a persistent shell session.
package shellx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInvalidInput is returned when a prompted value fails validation.
var ErrInvalidInput = errors.New("invalid input")

// Prompt prints prompt, reads one line from in, transforms it and validates
// the result. A failed transform or validation returns ErrInvalidInput
// (wrapped with detail for transforms).
func Prompt[T any](out io.Writer, in io.Reader, prompt string, transform func(string) (T, error), validate func(T) bool) (T, error) {
	var zero T

	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return zero, fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")

	v, err := transform(line)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if validate != nil && !validate(v) {
		return zero, ErrInvalidInput
	}
	return v, nil
}

// passwordInput is swapped in tests and when stdin is not a terminal.
var passwordInput io.Reader = os.Stdin

// isTerminal reports whether fd is an interactive terminal.
var isTerminal = term.IsTerminal

// ReadPassword prints prompt and reads a line with echo disabled when stdin
// is a terminal. With piped or redirected stdin it falls back to a plain
// line read so scripted callers still work.
func ReadPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if f, ok := passwordInput.(*os.File); ok && isTerminal(int(f.Fd())) {
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(pw), nil
	}

	line, err := bufio.NewReader(passwordInput).ReadString('\n')
	fmt.Fprintln(os.Stderr)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
