// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jacktogon/gotools/internal/i18n"
	"github.com/jacktogon/gotools/internal/sysinfo"
	"github.com/jacktogon/gotools/internal/termstyle"
)

func newSysCmd() *cobra.Command {
	var diskPath string

	cmd := &cobra.Command{
		Use:   "sys",
		Short: i18n.T("cli.sys.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if summary, err := sysinfo.HostSummary(ctx); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), termstyle.TitleStyle.Render(summary))
			}

			disk, err := sysinfo.DiskUsagePercent(ctx, diskPath)
			if err != nil {
				return err
			}
			cpu, err := sysinfo.CPUPercent(ctx, 200*time.Millisecond)
			if err != nil {
				return err
			}
			mem, err := sysinfo.MemoryPercent(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "disk (%s): %.2f%%\n", diskPath, disk)
			fmt.Fprintf(cmd.OutOrStdout(), "cpu: %.2f%%\n", cpu)
			fmt.Fprintf(cmd.OutOrStdout(), "memory: %.2f%%\n", mem)
			return nil
		},
	}
	cmd.Flags().StringVar(&diskPath, "path", "/", "filesystem path to report disk usage for")
	return cmd
}
