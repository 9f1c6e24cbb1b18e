package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kairenq/payment-transactions/internal/cli"
	"github.com/kairenq/payment-transactions/internal/importer"
	"github.com/kairenq/payment-transactions/internal/ledger"
)

func importOFXCmd() *cobra.Command {
	var (
		dryRun   bool
		currency string
	)

	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import bank statement transactions from OFX or QFX (Quicken) files.

Each statement line becomes one transaction on the backend. A local ledger
remembers what was already imported, so re-importing overlapping statements
does not create duplicates.

Examples:
  # Import a single file
  paytx import-ofx ~/Downloads/checking_jan.qfx

  # Import everything from a directory
  paytx import-ofx ~/Downloads/*.qfx

  # Preview without creating anything
  paytx import-ofx --dry-run ~/Downloads/checking_jan.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Expand globs and collect all files
			var allFiles []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					if _, err := os.Stat(pattern); err == nil {
						allFiles = append(allFiles, pattern)
					} else {
						slog.Warn("No files found matching pattern", "pattern", pattern)
					}
				} else {
					allFiles = append(allFiles, matches...)
				}
			}
			if len(allFiles) == 0 {
				return fmt.Errorf("no files found to import")
			}

			client, _, err := newAPIClient()
			if err != nil {
				return err
			}

			ledgerPath, err := dataPath("import-ledger.db")
			if err != nil {
				return err
			}
			book, err := ledger.Open(ledgerPath)
			if err != nil {
				return err
			}
			defer book.Close()

			imp := importer.New(client, book)
			total := importer.Result{}

			for _, filePath := range allFiles {
				slog.Info("Processing file", "file", filepath.Base(filePath))

				f, err := os.Open(filePath) // #nosec G304
				if err != nil {
					slog.Error("Failed to open file", "file", filePath, "error", err)
					continue
				}
				result, err := imp.Run(cmd.Context(), f, importer.Options{
					Currency: currency,
					DryRun:   dryRun,
					Progress: true,
				})
				f.Close()
				if err != nil {
					slog.Error("Failed to import file", "file", filePath, "error", err)
					if result == nil {
						continue
					}
				}
				total.Parsed += result.Parsed
				total.Imported += result.Imported
				total.Skipped += result.Skipped
				total.Failed += result.Failed
			}

			label := "Imported"
			if dryRun {
				label = "Would import"
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"%s %d of %d statement lines (%d already imported, %d failed)",
				label, total.Imported, total.Parsed, total.Skipped, total.Failed)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without creating transactions")
	cmd.Flags().StringVar(&currency, "currency", "", "currency for created transactions (backend default when omitted)")
	return cmd
}
