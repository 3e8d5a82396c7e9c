// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package netutil

import (
	"context"
	"fmt"
	"time"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// ioCounters returns the machine-wide network I/O counters. Injectable for
// tests.
var ioCounters = func(ctx context.Context) (psnet.IOCountersStat, error) {
	stats, err := psnet.IOCountersWithContext(ctx, false)
	if err != nil {
		return psnet.IOCountersStat{}, err
	}
	if len(stats) == 0 {
		return psnet.IOCountersStat{}, fmt.Errorf("no network counters available")
	}
	return stats[0], nil
}

// SampleBandwidth measures download and upload throughput in bytes/sec by
// sampling the network I/O counters over the interval.
func SampleBandwidth(ctx context.Context, interval time.Duration) (down, up float64, err error) {
	if interval <= 0 {
		interval = time.Second
	}

	start := time.Now()
	before, err := ioCounters(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read network counters: %w", err)
	}

	select {
	case <-time.After(interval):
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	}

	after, err := ioCounters(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read network counters: %w", err)
	}

	elapsed := time.Since(start).Seconds()
	down = float64(after.BytesRecv-before.BytesRecv) / elapsed
	up = float64(after.BytesSent-before.BytesSent) / elapsed
	return down, up, nil
}
