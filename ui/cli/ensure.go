// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacktogon/gotools/internal/i18n"
	"github.com/jacktogon/gotools/internal/toolenv"
)

func newEnsureCmd() *cobra.Command {
	var toolVersion string

	cmd := &cobra.Command{
		Use:   "ensure <name> <module-path>",
		Short: i18n.T("cli.ensure.short"),
		Long: `Checks whether a tool is on PATH and installs it with "go install" when it
is missing. The module path is what go install receives, e.g.
github.com/golangci/golangci-lint/cmd/golangci-lint.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if venv, ok := toolenv.VirtualEnvPath(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "active virtualenv: %s\n", venv)
			}

			ensurer := toolenv.NewEnsurer(cmd.OutOrStdout())
			return ensurer.EnsureTool(cmd.Context(), toolenv.Tool{
				Name:        args[0],
				InstallPath: args[1],
				Version:     toolVersion,
			})
		},
	}
	cmd.Flags().StringVar(&toolVersion, "tool-version", "", "module version to install (default latest)")
	return cmd
}
