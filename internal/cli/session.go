package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session state, roster, and lifecycle commands",
	}

	cmd.AddCommand(newSessionViewCmd())
	cmd.AddCommand(newSessionRosterCmd())
	cmd.AddCommand(newSessionExportCmd())
	cmd.AddCommand(newSessionTerminateCmd())

	return cmd
}

func newSessionViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the courts and queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			var view SessionView
			if err := client.Get("/api/v1/session", &view); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(view)
			return nil
		},
	}
}

func newSessionRosterCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Upload a pre-registration roster file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read roster file: %w", err)
			}

			req := map[string]string{"text": string(data)}
			var result RosterResult
			if err := client.Post("/api/v1/session/roster", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Roster file path (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newSessionExportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the attendance report (PIN-gated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := client.DoText(http.MethodGet, "/api/v1/session/export")
			if err != nil {
				return err
			}

			if file == "" {
				fmt.Print(report)
				return nil
			}

			if err := os.WriteFile(file, []byte(report), 0644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Report written to %s", file))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Write the report to a file instead of stdout")

	return cmd
}

func newSessionTerminateCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "terminate",
		Short: "End the session and clear saved state (PIN-gated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to terminate without --yes")
			}

			if err := client.Delete("/api/v1/session"); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session terminated")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm termination")

	return cmd
}
