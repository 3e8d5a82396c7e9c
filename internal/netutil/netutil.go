// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package netutil bundles the toolkit's networking helpers: subnet math,
// reachability probes, interface and service discovery, bandwidth sampling,
// segmented TCP streams and small HTTP utilities.
package netutil

import (
	"fmt"
	"math/rand"
	"net"
)

// RandomPublicIPv4 generates a random dotted-quad address whose first octet
// is neither 127 (loopback) nor 192 (private blocks).
func RandomPublicIPv4(rng *rand.Rand) string {
	for {
		first := rng.Intn(256)
		if first == 127 || first == 192 {
			continue
		}
		return fmt.Sprintf("%d.%d.%d.%d", first, rng.Intn(256), rng.Intn(256), rng.Intn(256))
	}
}

// IsValidIPv4 reports whether s parses as an IPv4 address.
func IsValidIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// LocalIP returns the machine's outbound IPv4 address, discovered by dialing
// a dummy UDP socket toward a public resolver. No packets are sent.
func LocalIP() (string, error) {
	conn, err := net.Dial("udp4", "8.8.8.8:80")
	if err != nil {
		return "", fmt.Errorf("failed to probe local address: %w", err)
	}
	defer func() { _ = conn.Close() }()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", fmt.Errorf("unexpected local address type %T", conn.LocalAddr())
	}
	return addr.IP.String(), nil
}
