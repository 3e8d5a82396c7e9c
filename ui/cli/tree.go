// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/jacktogon/gotools/internal/foldertree"
	"github.com/jacktogon/gotools/internal/i18n"
	"github.com/jacktogon/gotools/internal/logging"
)

func newTreeCmd() *cobra.Command {
	var excludeDirs, excludeFiles []string
	var copyOut, watch bool

	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: i18n.T("cli.tree.short"),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			opt := foldertree.Options{
				ExcludeDirs:  toSet(excludeDirs),
				ExcludeFiles: toSet(excludeFiles),
			}

			render := func() error {
				out, err := foldertree.Render(root, opt)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				if copyOut {
					if err := clipboard.WriteAll(out); err != nil {
						return fmt.Errorf("failed to copy tree to clipboard: %w", err)
					}
				}
				return nil
			}

			if err := render(); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchTree(root, render)
		},
	}

	cmd.Flags().StringSliceVar(&excludeDirs, "exclude-dir", []string{".git"}, "directory names to skip")
	cmd.Flags().StringSliceVar(&excludeFiles, "exclude-file", []string{".DS_Store"}, "file names to skip")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the rendered tree to the clipboard")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-render when the directory changes")
	return cmd
}

// watchTree re-renders on filesystem changes until interrupted.
func watchTree(root string, render func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logging.Debugf("tree: fs event %s", event)
			if err := render(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warnf("tree: watcher error: %v", err)
		case <-sig:
			return nil
		}
	}
}

func toSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
