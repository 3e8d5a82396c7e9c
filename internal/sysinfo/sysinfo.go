// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package sysinfo reports host health numbers for the monitor dashboard and
// the sys command.
package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// diskUsage, cpuPercent, virtualMemory and hostInfo are injectable for tests.
var (
	diskUsage     = disk.UsageWithContext
	cpuPercent    = cpu.PercentWithContext
	virtualMemory = mem.VirtualMemoryWithContext
	hostInfo      = host.InfoWithContext
)

// DiskUsagePercent returns how full the filesystem holding path is, in
// percent.
func DiskUsagePercent(ctx context.Context, path string) (float64, error) {
	usage, err := diskUsage(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("failed to read disk usage for %s: %w", path, err)
	}
	return usage.UsedPercent, nil
}

// CPUPercent samples overall CPU utilization over the given interval. An
// interval of 0 compares against the previous call instead of blocking.
func CPUPercent(ctx context.Context, interval time.Duration) (float64, error) {
	percs, err := cpuPercent(ctx, interval, false)
	if err != nil {
		return 0, fmt.Errorf("failed to read cpu usage: %w", err)
	}
	if len(percs) == 0 {
		return 0, fmt.Errorf("cpu usage sample was empty")
	}
	return percs[0], nil
}

// MemoryPercent returns how much of physical memory is in use, in percent.
func MemoryPercent(ctx context.Context) (float64, error) {
	vm, err := virtualMemory(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read memory usage: %w", err)
	}
	return vm.UsedPercent, nil
}

// HostSummary is a one-line description of the machine for report headers.
func HostSummary(ctx context.Context) (string, error) {
	info, err := hostInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read host info: %w", err)
	}
	up := time.Duration(info.Uptime) * time.Second
	return fmt.Sprintf("%s (%s %s, up %s)", info.Hostname, info.Platform, info.PlatformVersion, up), nil
}
