// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jacktogon/gotools/internal/foldertree"
	"github.com/jacktogon/gotools/internal/i18n"
	"github.com/jacktogon/gotools/internal/progress"
	"github.com/jacktogon/gotools/internal/sysinfo"
	"github.com/jacktogon/gotools/internal/termstyle"
)

// newDemoCmd is a quick smoke tour of the toolkit: colors, a progress bar, a
// tree snippet and a disk reading.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: i18n.T("cli.demo.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Running %sgotools%s\n\n", termstyle.FGRGB(255, 120, 50), termstyle.Reset)

			fmt.Fprintln(out, "16-color foregrounds:")
			for _, c := range []string{
				termstyle.FGRed, termstyle.FGGreen, termstyle.FGYellow, termstyle.FGBlue,
				termstyle.FGMagenta, termstyle.FGCyan, termstyle.FGBrightRed, termstyle.FGBrightGreen,
			} {
				fmt.Fprintf(out, "%s██%s", c, termstyle.Reset)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "256-color: %s██%s  truecolor: %s██%s\n\n",
				termstyle.FG256(208), termstyle.Reset, termstyle.FGRGB(80, 200, 255), termstyle.Reset)

			bar, err := progress.NewBar(out, 40, 0)
			if err != nil {
				return err
			}
			for i := 0; i < 40; i++ {
				if err := bar.Draw(i, "demo", ""); err != nil {
					return err
				}
				time.Sleep(25 * time.Millisecond)
			}
			fmt.Fprintln(out)

			lines, err := foldertree.List(".", foldertree.Options{ExcludeDirs: map[string]bool{".git": true}})
			if err == nil {
				if len(lines) > 5 {
					lines = lines[:5]
				}
				for _, l := range lines {
					fmt.Fprintln(out, l)
				}
				fmt.Fprintln(out, "...")
			}

			if disk, err := sysinfo.DiskUsagePercent(cmd.Context(), "/"); err == nil {
				fmt.Fprintf(out, "\ndisk usage: %.2f%%\n", disk)
			}
			return nil
		},
	}
}
