package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/atelier/internal/wire"
)

// ArtistCmd returns the artist command
func ArtistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artist",
		Short: "Browse artists",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List artists",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ArtistAdapter().List(context.Background())
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [username]",
		Short: "Show an artist's profile and commission types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ArtistAdapter().Show(context.Background(), args[0])
			return err
		},
	})

	return cmd
}
