package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/atelier/internal/wire"
)

// CatalogCmd returns the catalog command
func CatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and manage commission types",
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogMineCmd())
	cmd.AddCommand(catalogUpdateCmd())
	cmd.AddCommand(catalogDeleteCmd())

	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [artist]",
		Short: "List an artist's commission types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CatalogAdapter().List(context.Background(), args[0])
			return err
		},
	}
}

func catalogMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own commission types (sellers)",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CatalogAdapter().Mine(context.Background())
			return err
		},
	}
}

func catalogUpdateCmd() *cobra.Command {
	var title string
	var price string

	cmd := &cobra.Command{
		Use:   "update [type-id]",
		Short: "Change the title and price of one of your commission types",
		Long: `Change the title and price of one of your commission types.
Commissions already requested keep the title and price they were requested at.

Examples:
  atelier catalog update 7 --title "Portrait (bust)" --price 1800`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "commission type")
			if err != nil {
				return err
			}
			if title == "" || price == "" {
				return fmt.Errorf("both --title and --price are required")
			}
			return wire.CatalogAdapter().Update(context.Background(), id, title, price)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&price, "price", "", "New price, e.g. 1500 or 1499.99")

	return cmd
}

func catalogDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [type-id]",
		Short: "Delete one of your commission types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "commission type")
			if err != nil {
				return err
			}
			return wire.CatalogAdapter().Delete(context.Background(), id)
		},
	}
}
