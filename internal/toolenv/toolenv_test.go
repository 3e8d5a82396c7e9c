// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package toolenv

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestVirtualEnvPath(t *testing.T) {
	t.Setenv("VIRTUAL_ENV", "/tmp/venv")
	path, ok := VirtualEnvPath()
	if !ok || path != "/tmp/venv" {
		t.Fatalf("VirtualEnvPath() = %q, %v", path, ok)
	}
}

func TestEnsureToolAlreadyPresent(t *testing.T) {
	var buf bytes.Buffer
	e := NewEnsurer(&buf)
	e.LookPath = func(string) (string, error) { return "/usr/bin/tool", nil }

	installed := false
	e.Install = func(context.Context, string) error {
		installed = true
		return nil
	}

	err := e.EnsureTool(context.Background(), Tool{Name: "tool", InstallPath: "example.com/tool"})
	if err != nil {
		t.Fatalf("EnsureTool failed: %v", err)
	}
	if installed {
		t.Fatal("install ran for a tool already on PATH")
	}
	if !strings.Contains(buf.String(), "ready to use") {
		t.Fatalf("missing ready notice: %s", buf.String())
	}
}

func TestEnsureToolInstallsMissing(t *testing.T) {
	var buf bytes.Buffer
	e := NewEnsurer(&buf)

	probes := 0
	e.LookPath = func(string) (string, error) {
		probes++
		if probes == 1 {
			return "", exec.ErrNotFound
		}
		return "/home/u/go/bin/tool", nil
	}

	var gotPath string
	e.Install = func(_ context.Context, installPath string) error {
		gotPath = installPath
		return nil
	}

	err := e.EnsureTool(context.Background(), Tool{Name: "tool", InstallPath: "example.com/tool", Version: "v1.2.3"})
	if err != nil {
		t.Fatalf("EnsureTool failed: %v", err)
	}
	if gotPath != "example.com/tool@v1.2.3" {
		t.Fatalf("installed %q, want pinned version", gotPath)
	}
	if !strings.Contains(buf.String(), "will be installed") {
		t.Fatalf("missing install notice: %s", buf.String())
	}
}

func TestEnsureToolDefaultsToLatest(t *testing.T) {
	e := NewEnsurer(nil)
	e.LookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	var gotPath string
	e.Install = func(_ context.Context, installPath string) error {
		gotPath = installPath
		// Pretend the install worked and the binary appeared.
		e.LookPath = func(string) (string, error) { return "/go/bin/tool", nil }
		return nil
	}

	if err := e.EnsureTool(context.Background(), Tool{Name: "tool", InstallPath: "example.com/tool"}); err != nil {
		t.Fatalf("EnsureTool failed: %v", err)
	}
	if gotPath != "example.com/tool@latest" {
		t.Fatalf("installed %q, want @latest", gotPath)
	}
}

func TestEnsureToolReportsInstallFailure(t *testing.T) {
	e := NewEnsurer(nil)
	e.LookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	e.Install = func(context.Context, string) error { return errors.New("network down") }

	err := e.EnsureTool(context.Background(), Tool{Name: "tool", InstallPath: "example.com/tool"})
	if err == nil || !strings.Contains(err.Error(), "network down") {
		t.Fatalf("EnsureTool error = %v, want wrapped install failure", err)
	}
}

func TestEnsureToolStillMissingAfterInstall(t *testing.T) {
	e := NewEnsurer(nil)
	e.LookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	e.Install = func(context.Context, string) error { return nil }

	err := e.EnsureTool(context.Background(), Tool{Name: "tool", InstallPath: "example.com/tool"})
	if err == nil || !strings.Contains(err.Error(), "still missing") {
		t.Fatalf("EnsureTool error = %v, want still-missing error", err)
	}
}

func TestEnsureToolValidatesInput(t *testing.T) {
	e := NewEnsurer(nil)
	if err := e.EnsureTool(context.Background(), Tool{Name: "tool"}); err == nil {
		t.Fatal("EnsureTool accepted a tool without an install path")
	}
}
