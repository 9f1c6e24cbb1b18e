package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kairenq/payment-transactions/internal/cli"
	"github.com/kairenq/payment-transactions/internal/sheets"
)

func exportCmd() *cobra.Command {
	var (
		spreadsheetID string
		sheetName     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to Google Sheets",
		Long: `Fetch all of your transactions and write them to a Google Sheets
spreadsheet, one row per transaction. The target sheet is replaced.

Requires Google OAuth2 credentials in the config; run 'paytx auth sheets'
once to obtain a refresh token.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newAPIClient()
			if err != nil {
				return err
			}

			transactions, err := fetchAll(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("failed to fetch transactions: %w", err)
			}
			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions to export."))
				return nil
			}

			if spreadsheetID == "" {
				spreadsheetID = viper.GetString("sheets.spreadsheet_id")
			}
			exporter, err := sheets.NewExporter(cmd.Context(), sheets.Config{
				ClientID:      viper.GetString("sheets.client_id"),
				ClientSecret:  viper.GetString("sheets.client_secret"),
				RefreshToken:  viper.GetString("sheets.refresh_token"),
				SpreadsheetID: spreadsheetID,
				SheetName:     sheetName,
			})
			if err != nil {
				return err
			}

			id, err := exporter.Export(cmd.Context(), transactions)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions", len(transactions))))
			fmt.Printf("https://docs.google.com/spreadsheets/d/%s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&spreadsheetID, "spreadsheet", "", "spreadsheet ID (created when omitted)")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "sheet name (default Transactions)")
	return cmd
}
