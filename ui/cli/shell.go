// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacktogon/gotools/internal/i18n"
	"github.com/jacktogon/gotools/internal/shellx"
	"github.com/jacktogon/gotools/internal/termstyle"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell [command...]",
		Short: i18n.T("cli.shell.short"),
		Long: `Starts a persistent shell session. With arguments, runs them as a single
command and exits; without, reads commands line by line until "exit" or EOF.
State such as the working directory carries over between commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := shellx.NewShell()
			if err != nil {
				return err
			}
			defer func() { _ = sh.Close() }()

			if len(args) > 0 {
				out, err := sh.Run(strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			return runShellREPL(cmd.OutOrStdout(), cmd.InOrStdin(), sh)
		},
	}
}

func runShellREPL(out io.Writer, in io.Reader, sh *shellx.Shell) error {
	scanner := bufio.NewScanner(in)
	prompt := termstyle.HighlightStyle.Render("gotools> ")

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		result, err := sh.Run(line)
		if err != nil {
			fmt.Fprintln(out, termstyle.ErrorStyle.Render(err.Error()))
			continue
		}
		fmt.Fprint(out, result)
	}
}
