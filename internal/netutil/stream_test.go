// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package netutil

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"
)

func TestSendRecvStreamRoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	payload := bytes.Repeat([]byte("abcdefgh"), 100) // 800 bytes, not a multiple of 64

	errCh := make(chan error, 1)
	go func() {
		err := SendStream(client, payload[:777], 64, 2*time.Second)
		client.Close()
		errCh <- err
	}()

	got, err := RecvStream(server, 64, 2*time.Second)
	if err != nil {
		t.Fatalf("RecvStream failed: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("SendStream failed: %v", err)
	}
	if !bytes.Equal(got, payload[:777]) {
		t.Fatalf("received %d bytes, want %d", len(got), 777)
	}
}

func TestRecvStreamStopsOnShortSegment(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		_, _ = client.Write([]byte("short")) // 5 < segment size, ends the stream
	}()

	got, err := RecvStream(server, 16, 2*time.Second)
	if err != nil {
		t.Fatalf("RecvStream failed: %v", err)
	}
	if string(got) != "short" {
		t.Fatalf("got %q, want %q", got, "short")
	}
}

func TestSendStreamRejectsBadSegmentSize(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	if err := SendStream(client, []byte("x"), 0, 0); err == nil {
		t.Fatal("accepted segment size 0")
	}
	if _, err := RecvStream(server, -1, 0); err == nil {
		t.Fatal("accepted negative segment size")
	}
}

func TestReachableParsesPingOutput(t *testing.T) {
	orig := runCommand
	defer func() { runCommand = orig }()

	cases := []struct {
		name string
		out  string
		err  error
		want bool
	}{
		{"linux ok", "1 packets transmitted, 1 received, 0% packet loss", nil, true},
		{"bsd ok", "1 packets transmitted, 1 packets received, 0.0% packet loss", nil, true},
		{"windows ok", "Packets: Sent = 1, Received = 1, Lost = 0", nil, true},
		{"all lost", "1 packets transmitted, 0 received, 100% packet loss", nil, false},
		{"command failed", "", context.DeadlineExceeded, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
				return []byte(tc.out), tc.err
			}
			if got := Reachable(context.Background(), "203.0.113.7", time.Second); got != tc.want {
				t.Fatalf("Reachable = %v, want %v", got, tc.want)
			}
		})
	}
}
