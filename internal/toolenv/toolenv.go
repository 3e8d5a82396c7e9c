// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package toolenv inspects the tooling environment and ensures external
// binaries are available, installing them with `go install` when missing.
package toolenv

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/jacktogon/gotools/internal/termstyle"
)

// Tool describes a binary dependency that can be installed from a Go module.
type Tool struct {
	// Name is the executable looked up on PATH, e.g. "golangci-lint".
	Name string
	// InstallPath is the module path passed to `go install`.
	InstallPath string
	// Version pins the module version; empty means "latest".
	Version string
}

// VirtualEnvPath returns the path of the active Python virtualenv, if any.
// The toolkit wraps Python projects often enough that the probe stays useful.
func VirtualEnvPath() (string, bool) {
	return os.LookupEnv("VIRTUAL_ENV")
}

// Installer runs an installation command. Injectable for tests.
type Installer func(ctx context.Context, installPath string) error

// Ensurer probes for tools and installs missing ones.
type Ensurer struct {
	Out     io.Writer
	Install Installer
	// LookPath is exec.LookPath unless overridden in tests.
	LookPath func(name string) (string, error)
}

// NewEnsurer returns an Ensurer writing notices to out. A nil out suppresses
// them.
func NewEnsurer(out io.Writer) *Ensurer {
	if out == nil {
		out = io.Discard
	}
	return &Ensurer{
		Out:      out,
		Install:  goInstall,
		LookPath: exec.LookPath,
	}
}

func goInstall(ctx context.Context, installPath string) error {
	cmd := exec.CommandContext(ctx, "go", "install", installPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// EnsureTool checks that the tool's binary is on PATH and installs it when
// missing. After a successful install the PATH probe is repeated; a tool that
// is still missing surfaces as an error (GOBIN may not be on PATH).
func (e *Ensurer) EnsureTool(ctx context.Context, tool Tool) error {
	if tool.Name == "" || tool.InstallPath == "" {
		return fmt.Errorf("tool needs both a binary name and an install path")
	}

	if _, err := e.LookPath(tool.Name); err == nil {
		fmt.Fprintf(e.Out, "Tool %s is ready to use.\n", termstyle.HighlightStyle.Render(tool.Name))
		return nil
	}

	fmt.Fprintf(e.Out, "Tool %s not found and will be installed\n", termstyle.SpecialStyle.Render(tool.Name))
	if _, ok := VirtualEnvPath(); !ok && os.Getenv("GOBIN") == "" {
		fmt.Fprintln(e.Out, termstyle.HelpStyle.Render("No virtualenv or GOBIN detected; the binary lands in the default Go bin directory."))
	}

	switch runtime.GOOS {
	case "windows":
		fmt.Fprintln(e.Out, "Performing installation on Windows OS")
	case "darwin":
		fmt.Fprintln(e.Out, "Performing installation on macOS")
	case "linux":
		fmt.Fprintln(e.Out, "Performing installation on Linux")
	}

	version := tool.Version
	if version == "" {
		version = "latest"
	}
	installPath := tool.InstallPath + "@" + version

	if err := e.Install(ctx, installPath); err != nil {
		return fmt.Errorf("installation of %s failed: %w", installPath, err)
	}

	if _, err := e.LookPath(tool.Name); err != nil {
		return fmt.Errorf("tool %s still missing after installing %s: %w", tool.Name, installPath, err)
	}

	fmt.Fprintf(e.Out, "Tool %s is now installed and ready to use.\n", termstyle.HighlightStyle.Render(tool.Name))
	return nil
}
