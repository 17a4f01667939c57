package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/atelier/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show how many of your commissions are still active",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CommissionAdapter().Badge(context.Background())
			return err
		},
	}
}
