package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCourtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "court",
		Short: "Court management commands",
	}

	cmd.AddCommand(newCourtAddCmd())
	cmd.AddCommand(newCourtRemoveCmd())
	cmd.AddCommand(newCourtCompleteCmd())
	cmd.AddCommand(newCourtReorderCmd())

	return cmd
}

func newCourtAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Open a new court",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CourtResult
			if err := client.Post("/api/v1/session/courts", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCourtRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <number>",
		Short: "Close a court, recycling any players on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("court number must be an integer")
			}

			if err := client.Delete("/api/v1/session/courts/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Court %s removed", args[0]))
			return nil
		},
	}
}

func newCourtCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <number>",
		Short: "Mark a court's game finished and rotate its players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("court number must be an integer")
			}

			var view SessionView
			if err := client.Post("/api/v1/session/courts/"+args[0]+"/complete", nil, &view); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(view)
			return nil
		},
	}
}

func newCourtReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <from-index> <to-index>",
		Short: "Move a court to a different position in the court list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("from-index must be an integer")
			}
			target, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("to-index must be an integer")
			}

			req := map[string]int{
				"source_index": source,
				"target_index": target,
			}
			var view SessionView
			if err := client.Post("/api/v1/session/courts/reorder", req, &view); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(view)
			return nil
		},
	}
}
