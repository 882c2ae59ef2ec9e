package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "courtqueue",
		Short: "CLI tool for the court rotation API",
		Long: `courtqueue is a CLI tool for running a walk-in open-play session.

It covers the whole session workflow: player check-in, court management,
game rotation, queue inspection, roster upload, and the end-of-session
attendance export.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL, cfg.PIN)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: COURTQUEUE_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.PIN, "pin", cfg.PIN, "Organizer PIN for gated commands (env: COURTQUEUE_PIN)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newCourtCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newSwapCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
