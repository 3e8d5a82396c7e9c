// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package netutil

import (
	"math/rand"
	"strings"
	"testing"
)

func TestRandomPublicIPv4ExcludesReservedFirstOctets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		ip := RandomPublicIPv4(rng)
		first := strings.SplitN(ip, ".", 2)[0]
		if first == "127" || first == "192" {
			t.Fatalf("generated reserved address %s", ip)
		}
		if !IsValidIPv4(ip) {
			t.Fatalf("generated invalid address %s", ip)
		}
	}
}

func TestIsValidIPv4(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"10.0.0.1", true},
		{"255.255.255.255", true},
		{"256.1.1.1", false},
		{"10.0.0", false},
		{"::1", false},
		{"not an ip", false},
	}
	for _, tc := range cases {
		if got := IsValidIPv4(tc.in); got != tc.want {
			t.Fatalf("IsValidIPv4(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRandomUserAgentDrawsFromPool(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		ua := RandomUserAgent(rng)
		seen[ua] = true
		found := false
		for _, candidate := range UserAgents {
			if candidate == ua {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("user agent %q not from pool", ua)
		}
	}
	if len(seen) < 2 {
		t.Fatal("RandomUserAgent never varied")
	}
}
