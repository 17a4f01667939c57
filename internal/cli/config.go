package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/atelier/internal/config"
)

// ConfigCmd returns the config command. configPath points at the root --config flag.
func ConfigCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	cmd.AddCommand(configShowCmd(configPath))
	cmd.AddCommand(configInitCmd(configPath))

	return cmd
}

func configShowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			dbPath, err := cfg.ResolveDBPath()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "api_url\t%s\n", cfg.APIURL)
			fmt.Fprintf(w, "timeout\t%s\n", cfg.Timeout)
			fmt.Fprintf(w, "currency\t%s\n", cfg.Currency)
			fmt.Fprintf(w, "stage_token\t%s\n", cfg.StageToken)
			fmt.Fprintf(w, "db_path\t%s\n", dbPath)
			fmt.Fprintf(w, "color\t%t\n", cfg.Color)
			return w.Flush()
		},
	}
}

func configInitCmd(configPath *string) *cobra.Command {
	var apiURL string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Long: `Write a configuration file with default values.

Examples:
  atelier config init
  atelier config init --api-url https://api.example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *configPath
			if path == "" {
				var err error
				if path, err = config.DefaultConfigPath(); err != nil {
					return err
				}
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.Defaults()
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.SaveConfig(path, cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "Marketplace API base URL")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
