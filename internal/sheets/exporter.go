// Package sheets exports fetched transactions to a Google Sheets
// spreadsheet. It is an outbound report writer only; the spreadsheet is never
// read back into the application.
package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/kairenq/payment-transactions/internal/model"
)

// Config holds the OAuth2 credentials and export target.
type Config struct {
	ClientID      string
	ClientSecret  string
	RefreshToken  string
	SpreadsheetID string
	SheetName     string
}

// Validate checks the minimum viable configuration.
func (c Config) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("sheets: client_id and client_secret are required")
	}
	if c.RefreshToken == "" {
		return fmt.Errorf("sheets: refresh_token is required (run 'paytx auth sheets' first)")
	}
	return nil
}

// Exporter writes transaction reports to a spreadsheet.
type Exporter struct {
	service *sheets.Service
	cfg     Config
}

// NewExporter creates an Exporter from OAuth2 refresh-token credentials.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{sheets.SpreadsheetsScope},
	}
	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
		TokenType:    "Bearer",
	})

	service, err := sheets.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Exporter{service: service, cfg: cfg}, nil
}

// Export writes the transactions as one row each, replacing the target
// sheet's contents. It returns the spreadsheet ID written to, creating a new
// spreadsheet when none is configured.
func (e *Exporter) Export(ctx context.Context, transactions []model.Transaction) (string, error) {
	spreadsheetID := e.cfg.SpreadsheetID
	if spreadsheetID == "" {
		created, err := e.service.Spreadsheets.Create(&sheets.Spreadsheet{
			Properties: &sheets.SpreadsheetProperties{Title: "Payment Transactions"},
		}).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("failed to create spreadsheet: %w", err)
		}
		spreadsheetID = created.SpreadsheetId
		slog.Info("Created spreadsheet", "spreadsheet_id", spreadsheetID)
	}

	sheetName := e.cfg.SheetName
	if sheetName == "" {
		sheetName = "Transactions"
	}

	clearRange := sheetName + "!A:Z"
	if _, err := e.service.Spreadsheets.Values.Clear(spreadsheetID, clearRange,
		&sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("failed to clear sheet: %w", err)
	}

	values := Rows(transactions)
	_, err := e.service.Spreadsheets.Values.Update(spreadsheetID, sheetName+"!A1",
		&sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to write transactions: %w", err)
	}

	slog.Info("Exported transactions to Google Sheets",
		"spreadsheet_id", spreadsheetID,
		"rows", len(values)-1)
	return spreadsheetID, nil
}

// Rows converts transactions to spreadsheet rows, header first.
func Rows(transactions []model.Transaction) [][]any {
	values := make([][]any, 0, len(transactions)+1)
	values = append(values, []any{
		"Date", "Type", "Status", "Amount", "Currency", "Category", "Description", "Recipient", "Sender",
	})
	for _, tx := range transactions {
		category := tx.CategoryName
		if category == "" {
			category = "Uncategorized"
		}
		values = append(values, []any{
			tx.TransactionDate.Format("2006-01-02"),
			string(tx.Type),
			string(tx.Status),
			tx.Amount,
			tx.Currency,
			category,
			tx.Description,
			tx.Recipient,
			tx.Sender,
		})
	}
	return values
}
