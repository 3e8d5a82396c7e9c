// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacktogon/gotools/internal/fileio"
	"github.com/jacktogon/gotools/internal/i18n"
)

func newFsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fs",
		Short: i18n.T("cli.fs.short"),
	}
	cmd.AddCommand(newFsPackCmd(), newFsUnpackCmd(), newFsJSONCCmd())
	return cmd
}

func newFsPackCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pack <file>",
		Short: "Compress a file with zstd",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst := out
			if dst == "" {
				dst = args[0] + ".zst"
			}
			if err := fileio.PackFile(args[0], dst); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dst)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default <file>.zst)")
	return cmd
}

func newFsUnpackCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "unpack <file.zst>",
		Short: "Decompress a zstd file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst := out
			if dst == "" {
				dst = strings.TrimSuffix(args[0], ".zst")
				if dst == args[0] {
					return fmt.Errorf("cannot derive output name from %q, use --out", args[0])
				}
			}
			if err := fileio.UnpackFile(args[0], dst); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dst)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default strips .zst)")
	return cmd
}

func newFsJSONCCmd() *cobra.Command {
	var required []string

	cmd := &cobra.Command{
		Use:   "jsonc <file>",
		Short: "Read a JSONC file and print it as plain JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := fileio.ReadJSONC(args[0], required...)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}
	cmd.Flags().StringSliceVar(&required, "require", nil, "keys that must be present")
	return cmd
}
