// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package shellx

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"time"
)

// StreamReader reads lines from a stream on a background goroutine so
// callers can poll without blocking. Lines are trimmed of trailing newline
// characters and buffered in a bounded channel.
type StreamReader struct {
	lines chan string

	stopOnce sync.Once
	stop     chan struct{}
}

// NewStreamReader starts reading r line by line. bufferSize bounds how many
// unread lines are kept; 0 uses a default of 1000.
func NewStreamReader(r io.Reader, bufferSize int) *StreamReader {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	sr := &StreamReader{
		lines: make(chan string, bufferSize),
		stop:  make(chan struct{}),
	}
	go sr.loop(r)
	return sr
}

func (sr *StreamReader) loop(r io.Reader) {
	defer close(sr.lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		select {
		case sr.lines <- line:
		case <-sr.stop:
			return
		}
	}
}

// Read returns the next line, waiting at most timeout. The second result is
// false when no line arrived in time or the stream ended.
func (sr *StreamReader) Read(timeout time.Duration) (string, bool) {
	if timeout <= 0 {
		select {
		case line, ok := <-sr.lines:
			return line, ok
		default:
			return "", false
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case line, ok := <-sr.lines:
		return line, ok
	case <-timer.C:
		return "", false
	}
}

// ReadBlocking waits for the next line. The second result is false once the
// stream has ended and every buffered line was consumed.
func (sr *StreamReader) ReadBlocking() (string, bool) {
	line, ok := <-sr.lines
	return line, ok
}

// Stop ends the reader goroutine. The underlying stream is not closed;
// callers that own it should close it to unblock a pending read.
func (sr *StreamReader) Stop() {
	sr.stopOnce.Do(func() { close(sr.stop) })
}
