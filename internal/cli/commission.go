package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/atelier/internal/ports/primary"
	"github.com/example/atelier/internal/wire"
)

// CommissionCmd returns the commission command
func CommissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commission",
		Short: "Request and track commissions",
		Long: `Request commissions from artists and move them through their lifecycle.

Every commission goes Pending → InProgress → Completed. The seller starts the
work, the buyer marks it complete and then rates it once.`,
	}

	cmd.AddCommand(commissionListCmd())
	cmd.AddCommand(commissionRequestCmd())
	cmd.AddCommand(commissionAdvanceCmd())
	cmd.AddCommand(commissionRateCmd())

	return cmd
}

func commissionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your commissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CommissionAdapter().List(context.Background())
			return err
		},
	}
}

func commissionRequestCmd() *cobra.Command {
	var artist string
	var typeID int
	var description string

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Request a commission from an artist",
		Long: `Request a commission of one of an artist's commission types.

Examples:
  atelier commission request --artist mara --type 7 --description "sketch please"
  atelier commission request --type 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CommissionAdapter().Request(context.Background(), primary.RequestCommissionRequest{
				ArtistUsername:   artist,
				CommissionTypeID: typeID,
				Description:      description,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&artist, "artist", "a", "", "Artist username (checks the type is in their catalog)")
	cmd.Flags().IntVarP(&typeID, "type", "t", 0, "Commission type ID")
	cmd.Flags().StringVarP(&description, "description", "d", "", "What you would like drawn")

	return cmd
}

func commissionAdvanceCmd() *cobra.Command {
	var rating int

	cmd := &cobra.Command{
		Use:   "advance [commission-id]",
		Short: "Perform the next action on a commission",
		Long: `Perform the single action available on a commission:

  Pending     seller marks it In Progress
  InProgress  buyer marks it Complete
  Completed   buyer rates it (pass --rating, or use 'commission rate')`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "commission")
			if err != nil {
				return err
			}
			_, err = wire.CommissionAdapter().Advance(context.Background(), id, rating)
			return err
		},
	}

	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "Rating (1-5) to submit when the commission is completed")

	return cmd
}

func commissionRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate [commission-id] [rating]",
		Short: "Rate a completed commission (1-5, once)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "commission")
			if err != nil {
				return err
			}
			rating, err := parseRating(args[1])
			if err != nil {
				return err
			}
			_, err = wire.CommissionAdapter().Rate(context.Background(), id, rating)
			return err
		},
	}
}
