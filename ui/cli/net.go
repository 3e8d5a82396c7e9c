// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jacktogon/gotools/internal/history"
	"github.com/jacktogon/gotools/internal/i18n"
	"github.com/jacktogon/gotools/internal/netutil"
	"github.com/jacktogon/gotools/internal/termstyle"
)

func newNetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "net",
		Short: i18n.T("cli.net.short"),
	}
	cmd.AddCommand(
		newNetSubnetCmd(),
		newNetCheckCmd(),
		newNetSweepCmd(),
		newNetBwCmd(),
		newNetIfacesCmd(),
		newNetServicesCmd(),
		newNetIPCmd(),
		newNetServeCmd(),
		newNetFetchCmd(),
	)
	return cmd
}

// pingTimeout resolves the configured ping timeout.
func pingTimeout() time.Duration {
	ms := appConfig.Net.PingTimeoutMS
	if ms <= 0 {
		ms = 1000
	}
	return time.Duration(ms) * time.Millisecond
}

// recordSample stores a measurement when recording is requested, warning
// instead of failing the command when the store is unavailable.
func recordSample(ctx context.Context, record bool, sample *history.Sample) {
	if !record {
		return
	}
	store, err := openHistoryStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: sample not recorded: %v\n", err)
		return
	}
	if err := store.Add(ctx, sample); err != nil {
		fmt.Fprintf(os.Stderr, "warning: sample not recorded: %v\n", err)
	}
}

func newNetSubnetCmd() *cobra.Command {
	var showHosts bool

	cmd := &cobra.Command{
		Use:   "subnet <ip> <mask>",
		Short: "Show subnet facts for an address and netmask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := netutil.Subnet(args[0], args[1])
			if err != nil {
				return err
			}
			for _, row := range info.Rows() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", row[0], row[1])
			}
			if showHosts {
				for _, h := range info.Hosts() {
					fmt.Fprintln(cmd.OutOrStdout(), h)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showHosts, "hosts", false, "list every usable address")
	return cmd
}

func newNetCheckCmd() *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "check <host>",
		Short: "Ping a host once and report reachability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host := args[0]
			start := time.Now()
			up := netutil.Reachable(cmd.Context(), host, pingTimeout())
			took := time.Since(start)

			recordSample(cmd.Context(), record, &history.Sample{
				Kind:      history.KindPing,
				Target:    host,
				Reachable: up,
				TookMS:    took.Milliseconds(),
			})

			if up {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n",
					host, termstyle.SuccessStyle.Render(i18n.T("net.check.reachable")), took.Round(time.Millisecond))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				host, termstyle.ErrorStyle.Render(i18n.T("net.check.unreachable")))
			return nil
		},
	}
	cmd.Flags().BoolVar(&record, "record", false, "store the result in history")
	return cmd
}

func newNetSweepCmd() *cobra.Command {
	var parallel int
	var record, all bool

	cmd := &cobra.Command{
		Use:   "sweep <ip> <mask>",
		Short: "Ping every usable address in a subnet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := netutil.Subnet(args[0], args[1])
			if err != nil {
				return err
			}

			start := time.Now()
			results, err := netutil.Sweep(cmd.Context(), info, pingTimeout(), parallel)
			if err != nil {
				return err
			}

			alive := 0
			for _, r := range results {
				if r.Reachable {
					alive++
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
						r.Host, termstyle.SuccessStyle.Render(i18n.T("net.check.reachable")))
				} else if all {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
						r.Host, termstyle.HelpStyle.Render(i18n.T("net.check.unreachable")))
				}
				recordSample(cmd.Context(), record, &history.Sample{
					Kind:      history.KindSweep,
					Target:    r.Host,
					Reachable: r.Reachable,
					TookMS:    r.Took.Milliseconds(),
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d up in %s\n",
				i18n.T("net.sweep.done"), alive, len(results), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 64, "concurrent probes")
	cmd.Flags().BoolVar(&record, "record", false, "store each result in history")
	cmd.Flags().BoolVar(&all, "all", false, "also print unreachable addresses")
	return cmd
}

func newNetBwCmd() *cobra.Command {
	var interval time.Duration
	var record bool

	cmd := &cobra.Command{
		Use:   "bw",
		Short: "Sample current bandwidth usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			down, up, err := netutil.SampleBandwidth(cmd.Context(), interval)
			if err != nil {
				return err
			}

			recordSample(cmd.Context(), record, &history.Sample{
				Kind:   history.KindBandwidth,
				Target: "local",
				Down:   down,
				Up:     up,
			})

			fmt.Fprintf(cmd.OutOrStdout(), "down: %.2f KiB/s  up: %.2f KiB/s\n", down/1024, up/1024)
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "sampling window")
	cmd.Flags().BoolVar(&record, "record", false, "store the sample in history")
	return cmd
}

func newNetIfacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ifaces",
		Short: "List network interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := netutil.Interfaces(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newNetServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List network services or devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := netutil.Services(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range services {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func newNetIPCmd() *cobra.Command {
	var random bool

	cmd := &cobra.Command{
		Use:   "ip",
		Short: "Show the machine's outbound IP address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if random {
				rng := rand.New(rand.NewSource(time.Now().UnixNano()))
				fmt.Fprintln(cmd.OutOrStdout(), netutil.RandomPublicIPv4(rng))
				return nil
			}
			ip, err := netutil.LocalIP()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ip)
			return nil
		},
	}
	cmd.Flags().BoolVar(&random, "random", false, "print a random public IPv4 instead")
	return cmd
}

func newNetServeCmd() *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve a directory over HTTP until interrupted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "serving %s on http://%s:%d\n", dir, host, port)
			return netutil.ServeStatic(ctx, dir, host, port)
		},
	}
	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "listen address")
	cmd.Flags().IntVar(&port, "port", 8000, "listen port")
	return cmd
}

func newNetFetchCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a URL with a rotating user agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := netutil.NewHTTPClient(timeout)
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			resp, err := netutil.Get(cmd.Context(), client, rng, args[0], appConfig.Net.UserAgent)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if _, err := io.Copy(cmd.OutOrStdout(), resp.Body); err != nil {
				return fmt.Errorf("failed to read response body: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	return cmd
}
