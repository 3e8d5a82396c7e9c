// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jacktogon/gotools/internal/i18n"
	"github.com/jacktogon/gotools/internal/timeconv"
)

func newTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: i18n.T("cli.time.short"),
	}

	fmtCmd := &cobra.Command{
		Use:   "fmt <seconds>",
		Short: "Format a duration in seconds as a readable clock string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid seconds value %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), timeconv.FormatSeconds(sec))
			return nil
		},
	}

	parseCmd := &cobra.Command{
		Use:   "parse <clock>",
		Short: "Parse h:m:s or m:s into total seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, err := timeconv.ParseClock(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sec)
			return nil
		},
	}

	unixCmd := &cobra.Command{
		Use:   "unix <timestamp>",
		Short: "Render a unix timestamp as a local date string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid timestamp %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), timeconv.UnixToDatestring(ts))
			return nil
		},
	}

	cmd.AddCommand(fmtCmd, parseCmd, unixCmd)
	return cmd
}
