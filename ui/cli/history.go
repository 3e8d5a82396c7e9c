// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jacktogon/gotools/internal/i18n"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: i18n.T("cli.history.short"),
	}
	cmd.AddCommand(newHistoryListCmd(), newHistoryExportCmd(), newHistoryPurgeCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var kind string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recorded samples, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistoryStore()
			if err != nil {
				return err
			}

			samples, err := store.List(cmd.Context(), kind, limit)
			if err != nil {
				return err
			}

			for _, s := range samples {
				switch s.Kind {
				case "bandwidth":
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s %-20s down %.2f KiB/s up %.2f KiB/s\n",
						s.CreatedAt.Local().Format("2006-01-02 15:04:05"), s.Kind, s.Target, s.Down/1024, s.Up/1024)
				default:
					state := i18n.T("net.check.unreachable")
					if s.Reachable {
						state = i18n.T("net.check.reachable")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s %-20s %s (%dms)\n",
						s.CreatedAt.Local().Format("2006-01-02 15:04:05"), s.Kind, s.Target, state, s.TookMS)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "filter by sample kind (ping, sweep, bandwidth)")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum samples to show (0 for all)")
	return cmd
}

func newHistoryExportCmd() *cobra.Command {
	var kind string
	var compress bool

	cmd := &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Export samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistoryStore()
			if err != nil {
				return err
			}

			n, err := store.ExportCSV(cmd.Context(), args[0], kind, compress)
			if err != nil {
				return err
			}
			out := args[0]
			if compress {
				out += ".zst"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d samples -> %s\n", n, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "filter by sample kind")
	cmd.Flags().BoolVar(&compress, "zst", false, "compress the export with zstd")
	return cmd
}

func newHistoryPurgeCmd() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete samples older than a cutoff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistoryStore()
			if err != nil {
				return err
			}

			n, err := store.Purge(cmd.Context(), time.Now().Add(-olderThan))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", i18n.T("history.purge.done"), n)
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "age cutoff, e.g. 168h")
	return cmd
}
