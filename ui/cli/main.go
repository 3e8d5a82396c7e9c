// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for gotools using Cobra. It
// defines the root command, shared service setup (config, i18n, logging,
// history) and version resolution; the subcommands live in their own files.
package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jacktogon/gotools/buildvars"
	"github.com/jacktogon/gotools/internal/config"
	"github.com/jacktogon/gotools/internal/history"
	"github.com/jacktogon/gotools/internal/i18n"
	"github.com/jacktogon/gotools/internal/logging"
	"github.com/jacktogon/gotools/internal/tui"
)

var version = "dev"   // set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// historyStore is the shared sample store, opened lazily because most
// commands never touch it.
var historyStore *history.Store

// setupDefaultServices loads the config and initializes i18n and logging.
// It runs as the root PersistentPreRunE so every subcommand sees the same
// environment.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults, explicitPath)
	if err != nil {
		// A missing config file is expected on first run.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("error loading config: %w", err)
		}
	}

	if appConfig.Language == "" {
		appConfig.Language = "en"
	}
	i18n.Init(appConfig.Language)

	if verbose || appConfig.Log.Level == "debug" {
		logging.SetDebug(true)
	}
	if appConfig.Log.File != "" {
		f, err := os.OpenFile(appConfig.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Warnf("could not open log file %s: %v", appConfig.Log.File, err)
		} else {
			logging.L.SetOutput(f)
		}
	}

	return nil
}

// openHistoryStore opens the configured sample store on first use.
func openHistoryStore() (*history.Store, error) {
	if historyStore != nil {
		return historyStore, nil
	}

	dbType := appConfig.History.Type
	if dbType == "" {
		dbType = "sqlite"
	}
	dsn := appConfig.History.DSN
	if dsn == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("could not resolve history path: %w", err)
		}
		if err := os.MkdirAll(dir+"/gotools", 0o755); err != nil {
			return nil, fmt.Errorf("could not create history directory: %w", err)
		}
		dsn = dir + "/gotools/history.db"
	}

	s, err := history.NewStoreFromDSN(dbType, dsn)
	if err != nil {
		return nil, err
	}
	historyStore = s
	return s, nil
}

// Execute runs the CLI entrypoint. The root main package calls this and
// handles process exit.
func Execute() error {
	defer func() {
		if historyStore != nil {
			if err := historyStore.Close(); err != nil {
				log.Errorf("error closing history store: %v", err)
			}
		}
	}()

	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command. Used for the
// real entrypoint as well as fresh instances in tests.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gotools",
		Short: i18n.T("cli.root.short"),
		Long: `gotools bundles the small terminal and system chores of daily work:
directory trees, time formatting, subnet math, reachability sweeps,
bandwidth sampling, file packing, remote copies and a live monitor.

Running without a subcommand launches the monitor dashboard.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Println(compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var store *history.Store
			if appConfig.History.DSN != "" || appConfig.History.Type != "" {
				if s, err := openHistoryStore(); err == nil {
					store = s
				} else {
					log.Warnf("monitor runs without recording: %v", err)
				}
			}
			return tui.Run("/", store)
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) output")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `output language ("en", "de")`)

	cmd.AddCommand(
		newTreeCmd(),
		newTimeCmd(),
		newNetCmd(),
		newShellCmd(),
		newFsCmd(),
		newSysCmd(),
		newEnsureCmd(),
		newTransferCmd(),
		newHistoryCmd(),
		newConfigCmd(),
		newVersionCmd(),
		newDemoCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version.short"),
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			fmt.Printf("version: %s\n", v)
			fmt.Printf("commit: %s\n", c)
			if d != "" {
				fmt.Printf("built: %s\n", d)
			}
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime. Separated for unit testing.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths leave Main.Version empty; look for our module in
		// the dependency list instead.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/jacktogon/gotools" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
