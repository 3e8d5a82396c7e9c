// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package netutil

import (
	"context"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// Interface and service discovery shells out to the platform's tooling and
// parses the text output. Parsing takes the OS name explicitly so every
// branch stays testable regardless of the host platform.

var (
	windowsIfacePattern = regexp.MustCompile(`Ethernet adapter ([a-zA-Z0-9\s]+):`)
	linuxIfacePattern   = regexp.MustCompile(`(?m)^\d+: ([a-zA-Z0-9@]+):`)
	unixIfacePattern    = regexp.MustCompile(`(?m)^([a-zA-Z0-9]+):`)
)

func interfacesCommand(osName string) (string, []string) {
	switch osName {
	case "windows":
		return "ipconfig", nil
	case "linux":
		return "ip", []string{"addr"}
	default:
		return "ifconfig", nil
	}
}

func servicesCommand(osName string) (string, []string) {
	switch osName {
	case "windows":
		return "netsh", []string{"interface", "show", "interface"}
	case "linux":
		return "nmcli", []string{"-t", "-f", "DEVICE,TYPE", "device"}
	default:
		return "networksetup", []string{"-listallnetworkservices"}
	}
}

// Interfaces lists the machine's network interface names using the
// platform's discovery command (ipconfig, ip addr or ifconfig).
func Interfaces(ctx context.Context) ([]string, error) {
	name, args := interfacesCommand(runtime.GOOS)
	out, err := runCommand(ctx, name, args...)
	if err != nil {
		return nil, fmt.Errorf("interface discovery via %s failed: %w", name, err)
	}
	return parseInterfaces(runtime.GOOS, string(out)), nil
}

func parseInterfaces(osName, out string) []string {
	pattern := unixIfacePattern
	switch osName {
	case "windows":
		pattern = windowsIfacePattern
	case "linux":
		pattern = linuxIfacePattern
	}

	var names []string
	for _, m := range pattern.FindAllStringSubmatch(out, -1) {
		names = append(names, strings.TrimSpace(m[1]))
	}
	return names
}

// Services lists network services or devices using the platform's tooling
// (netsh, nmcli or networksetup).
func Services(ctx context.Context) ([]string, error) {
	name, args := servicesCommand(runtime.GOOS)
	out, err := runCommand(ctx, name, args...)
	if err != nil {
		return nil, fmt.Errorf("service discovery via %s failed: %w", name, err)
	}
	return parseServices(runtime.GOOS, string(out)), nil
}

func parseServices(osName, out string) []string {
	var services []string
	switch osName {
	case "windows":
		// netsh lists "Enabled/Disabled  Connected  Dedicated  <name>" rows.
		for _, line := range strings.Split(out, "\n") {
			if !strings.Contains(line, "Enabled") && !strings.Contains(line, "Disabled") {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) >= 4 {
				services = append(services, fields[3])
			}
		}
	case "linux":
		// nmcli -t prints DEVICE:TYPE rows.
		for _, line := range strings.Split(out, "\n") {
			if !strings.Contains(line, "ethernet") && !strings.Contains(line, "wifi") {
				continue
			}
			if name, _, ok := strings.Cut(line, ":"); ok {
				services = append(services, name)
			}
		}
	default:
		// networksetup prints one service per line after an asterisk note.
		for _, line := range strings.Split(out, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "(") || strings.Contains(line, "*") {
				continue
			}
			services = append(services, line)
		}
	}
	return services
}
