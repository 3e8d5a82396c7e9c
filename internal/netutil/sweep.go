// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package netutil

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// SweepResult is the reachability verdict for one host in a sweep.
type SweepResult struct {
	Host      string
	Reachable bool
	Took      time.Duration
}

// Sweep pings every usable host of the subnet concurrently, at most parallel
// probes in flight. Results come back ordered by host address.
func Sweep(ctx context.Context, subnet *SubnetInfo, timeout time.Duration, parallel int) ([]SweepResult, error) {
	hosts := subnet.Hosts()
	if len(hosts) == 0 {
		return nil, nil
	}
	if parallel <= 0 {
		parallel = 32
	}

	results := make([]SweepResult, len(hosts))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, host := range hosts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			ok := Reachable(ctx, host.String(), timeout)
			mu.Lock()
			results[i] = SweepResult{Host: host.String(), Reachable: ok, Took: time.Since(start)}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
