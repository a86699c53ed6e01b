// Package cmd provides Cobra CLI commands for miniworld.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/miniworld/internal/cli"
)

var (
	app        *cli.App
	version    = "dev"
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "miniworld",
		Short: "Popup and settings tools for the miniworld browser shell",
		Long: `miniworld manages the browser shell's stored settings and lets you check
how popup windows behave.

Popups opened by window.open() get their own window. When an auth flow ends
on an empty success or callback page the popup closes itself; 'miniworld popup
simulate' replays such flows against a headless engine.

Settings live in $XDG_CONFIG_HOME/miniworld/config.toml and can be overridden
with MINIWORLD_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/miniworld/config.toml)")
}

// SetVersion records the build version shown by --version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
