package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/atelier/internal/wire"
)

// ActivityCmd returns the activity command
func ActivityCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent logins and commission changes made from this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ActivityAdapter().List(context.Background(), limit)
			return err
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show (0 for all)")

	return cmd
}
