//go:build !windows
// +build !windows

// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package netutil

import (
	"fmt"
	"time"
)

// pingArgs builds the single-probe ping arguments for Unix-like systems.
// -W takes whole seconds; sub-second timeouts round up to 1.
func pingArgs(host string, timeout time.Duration) []string {
	secs := int(timeout / time.Second)
	if secs < 1 {
		secs = 1
	}
	return []string{"-c", "1", "-W", fmt.Sprintf("%d", secs), host}
}
