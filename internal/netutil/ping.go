// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package netutil

import (
	"context"
	"os/exec"
	"regexp"
	"time"

	"github.com/jacktogon/gotools/internal/logging"
)

// pingOKPattern matches the transmitted/received line of a successful
// single-probe ping on Unix-like systems. Windows ping reports differently
// but also exits nonzero on failure, which the exit-code check covers.
var pingOKPattern = regexp.MustCompile(`(?i)1 packets transmitted, 1 (packets )?received|Received = 1`)

// runCommand executes a command and returns its combined output. Injectable
// for tests.
var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Reachable sends one system ping to host and reports whether it answered
// within the timeout. Argument construction is per-OS (see ping_args files).
func Reachable(ctx context.Context, host string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = time.Second
	}

	args := pingArgs(host, timeout)
	out, err := runCommand(ctx, "ping", args...)
	if err != nil {
		logging.Debugf("ping %s failed: %v", host, err)
		return false
	}
	return pingOKPattern.Match(out)
}
