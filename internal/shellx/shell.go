// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package shellx

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/jacktogon/gotools/internal/logging"
)

// endMarker is echoed after every command so the session knows where one
// command's output stops.
const endMarker = "END_OF_COMMAND"

// Shell is a persistent interactive shell session. Commands run in the same
// process, so state like the working directory and environment variables
// carries over between calls.
type Shell struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	reader *StreamReader
}

// NewShell starts the platform shell (bash on Unix-like systems,
// powershell.exe on Windows) with stderr folded into stdout.
func NewShell() (*Shell, error) {
	cmd := exec.Command(shellCommand())
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open shell stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open shell stdout: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", shellCommand(), err)
	}

	return &Shell{
		cmd:    cmd,
		stdin:  stdin,
		reader: NewStreamReader(stdout, 0),
	}, nil
}

// Run executes command in the session and returns everything it printed.
// Output is collected until the end marker comes back.
func (s *Shell) Run(command string) (string, error) {
	command = strings.TrimSpace(command)
	logging.Debugf("shell: running %q", command)

	if _, err := fmt.Fprintf(s.stdin, "%s; echo %s\n", command, endMarker); err != nil {
		return "", fmt.Errorf("failed to write command: %w", err)
	}

	var out strings.Builder
	for {
		line, ok := s.reader.ReadBlocking()
		if !ok {
			return out.String(), fmt.Errorf("shell exited while running %q", command)
		}
		if strings.Contains(line, endMarker) {
			// The echoed command itself can carry the marker too; only a
			// line that is nothing but the marker ends the output.
			if strings.TrimSpace(line) == endMarker {
				break
			}
			continue
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String(), nil
}

// Close shuts the session down: stdin is closed so the shell exits, and the
// process gets five seconds before it is killed.
func (s *Shell) Close() error {
	if err := s.stdin.Close(); err != nil {
		logging.Debugf("shell: closing stdin: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		if err := s.cmd.Process.Kill(); err != nil {
			return fmt.Errorf("failed to kill shell: %w", err)
		}
		return <-done
	}
}
