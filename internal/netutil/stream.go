// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package netutil

import (
	"errors"
	"fmt"
	"io"
	"net"
	"time"
)

// ErrConnectionBroken is returned when a send makes no progress, which on a
// TCP stream means the peer is gone.
var ErrConnectionBroken = errors.New("socket connection broken")

// SendStream writes data to conn in segments of at most segmentSize bytes.
// When a timeout is given it is set as the write deadline and cleared again
// before returning, also on error paths.
func SendStream(conn net.Conn, data []byte, segmentSize int, timeout time.Duration) error {
	if segmentSize <= 0 {
		return fmt.Errorf("segment size must be > 0, got %d", segmentSize)
	}

	if timeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
			return fmt.Errorf("failed to set write deadline: %w", err)
		}
		defer func() { _ = conn.SetWriteDeadline(time.Time{}) }()
	}

	for offset := 0; offset < len(data); {
		end := offset + segmentSize
		if end > len(data) {
			end = len(data)
		}
		sent, err := conn.Write(data[offset:end])
		if err != nil {
			return fmt.Errorf("failed to send segment at offset %d: %w", offset, err)
		}
		if sent == 0 {
			return ErrConnectionBroken
		}
		offset += sent
	}
	return nil
}

// RecvStream reads from conn in segments of segmentSize bytes until EOF or a
// short segment, returning everything received. When a timeout is given it
// is set as the read deadline and cleared again before returning.
func RecvStream(conn net.Conn, segmentSize int, timeout time.Duration) ([]byte, error) {
	if segmentSize <= 0 {
		return nil, fmt.Errorf("segment size must be > 0, got %d", segmentSize)
	}

	if timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, fmt.Errorf("failed to set read deadline: %w", err)
		}
		defer func() { _ = conn.SetReadDeadline(time.Time{}) }()
	}

	var data []byte
	buf := make([]byte, segmentSize)
	for {
		n, err := conn.Read(buf)
		data = append(data, buf[:n]...)
		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return data, fmt.Errorf("failed to receive segment: %w", err)
		}
		// A short segment marks the end of the stream.
		if n < segmentSize {
			return data, nil
		}
	}
}
