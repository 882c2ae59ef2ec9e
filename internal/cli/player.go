package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player check-in and rotation commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerPauseCmd())
	cmd.AddCommand(newPlayerResumeCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var first, last, phone, payment string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Check in a walk-in player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"first_name": first,
				"last_name":  last,
				"phone":      phone,
				"payment":    payment,
			}
			var result Player

			if err := client.Post("/api/v1/session/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "First name (required)")
	cmd.Flags().StringVar(&last, "last", "", "Last name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&payment, "payment", "unpaid", "Payment type: unpaid, online, cash")
	_ = cmd.MarkFlagRequired("first")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <player-id>",
		Short: "Remove a player from the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/session/players/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Player %s deleted", args[0]))
			return nil
		},
	}
}

func newPlayerPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause <player-id>",
		Short: "Pause a player, keeping their spot in line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var view SessionView
			if err := client.Post("/api/v1/session/players/"+args[0]+"/pause", nil, &view); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(view)
			return nil
		},
	}
}

func newPlayerResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <player-id>",
		Short: "Return a paused player to the back of the line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var view SessionView
			if err := client.Post("/api/v1/session/players/"+args[0]+"/resume", nil, &view); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(view)
			return nil
		},
	}
}
