package main

import (
	"github.com/spf13/cobra"

	"github.com/kairenq/payment-transactions/internal/tui"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Launch the interactive terminal UI",
		Long: `Open the full-screen terminal UI: dashboard, transactions, categories,
analytics, and (for admins) the moderation panel.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, tokens, err := newAPIClient()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), client, tokens)
		},
	}
}
