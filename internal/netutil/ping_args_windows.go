//go:build windows
// +build windows

// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package netutil

import (
	"fmt"
	"time"
)

// pingArgs builds the single-probe ping arguments for Windows. -w takes
// milliseconds.
func pingArgs(host string, timeout time.Duration) []string {
	return []string{"-n", "1", "-w", fmt.Sprintf("%d", timeout.Milliseconds()), host}
}
