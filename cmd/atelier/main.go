package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/atelier/internal/adapters/terminal"
	"github.com/example/atelier/internal/app"
	"github.com/example/atelier/internal/cli"
	"github.com/example/atelier/internal/core/effects"
	"github.com/example/atelier/internal/version"
	"github.com/example/atelier/internal/wire"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "atelier",
		Short:   "atelier - commission marketplace client",
		Version: version.String(),
		Long: `atelier talks to the commission marketplace API.

Buyers browse artists and request commissions; sellers manage their catalog.
Both move commissions through Pending → InProgress → Completed, and buyers
rate finished work once.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire.SetConfigPath(configPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.atelier/config.yaml)")

	// Session
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoAmICmd())

	// Marketplace
	rootCmd.AddCommand(cli.ArtistCmd())
	rootCmd.AddCommand(cli.CatalogCmd())
	rootCmd.AddCommand(cli.CommissionCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	// Local state
	rootCmd.AddCommand(cli.ActivityCmd())
	rootCmd.AddCommand(cli.ConfigCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		terminal.NewNotifier(os.Stderr, !color.NoColor).Notify(effects.LevelError, app.UserMessage(err))
		os.Exit(1)
	}
}
