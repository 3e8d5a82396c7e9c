// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jacktogon/gotools/internal/i18n"
	"github.com/jacktogon/gotools/internal/transfer"
)

func newTransferCmd() *cobra.Command {
	var keyFile, knownHosts string
	var insecure bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: i18n.T("cli.transfer.short"),
	}

	dial := func(userHost string) (*transfer.Client, error) {
		user, host, err := splitUserHost(userHost)
		if err != nil {
			return nil, err
		}
		return transfer.Dial(transfer.Options{
			Host:           host,
			User:           user,
			KeyFile:        keyFile,
			KnownHostsFile: knownHosts,
			Insecure:       insecure,
			Timeout:        timeout,
		})
	}

	pushCmd := &cobra.Command{
		Use:   "push <local> <user@host:path>",
		Short: "Upload a file to a remote host",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userHost, remotePath, err := splitRemote(args[1])
			if err != nil {
				return err
			}
			client, err := dial(userHost)
			if err != nil {
				return err
			}
			defer client.Close()

			perm := os.FileMode(0o644)
			if info, err := os.Stat(args[0]); err == nil {
				perm = info.Mode().Perm()
			}
			if err := client.Push(args[0], remotePath, perm); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", args[0], args[1])
			return nil
		},
	}

	pullCmd := &cobra.Command{
		Use:   "pull <user@host:path> <local>",
		Short: "Download a file from a remote host",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userHost, remotePath, err := splitRemote(args[0])
			if err != nil {
				return err
			}
			client, err := dial(userHost)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.Fetch(remotePath, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&keyFile, "key", "i", "", "private key file")
	cmd.PersistentFlags().StringVar(&knownHosts, "known-hosts", "", "known_hosts file (default ~/.ssh/known_hosts)")
	cmd.PersistentFlags().BoolVar(&insecure, "insecure", false, "skip host key verification")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "connection timeout")

	cmd.AddCommand(pushCmd, pullCmd)
	return cmd
}

// splitRemote splits "user@host:path" into its user@host and path parts.
func splitRemote(s string) (userHost, path string, err error) {
	userHost, path, ok := strings.Cut(s, ":")
	if !ok || userHost == "" || path == "" {
		return "", "", fmt.Errorf("remote must look like user@host:path, got %q", s)
	}
	return userHost, path, nil
}

// splitUserHost splits "user@host" into user and host.
func splitUserHost(s string) (user, host string, err error) {
	user, host, ok := strings.Cut(s, "@")
	if !ok || user == "" || host == "" {
		return "", "", fmt.Errorf("remote must look like user@host, got %q", s)
	}
	return user, host, nil
}
