package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/kairenq/payment-transactions/internal/model"
)

// TransactionCreator is the slice of the API client the importer needs.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, params model.TransactionParams) (*model.Transaction, error)
}

// ImportLedger records which statement lines were already submitted.
type ImportLedger interface {
	Seen(ctx context.Context, hash string) (bool, error)
	MarkImported(ctx context.Context, hash, fitID, accountID string, transactionID int64) error
}

// Options tune a single import run.
type Options struct {
	// Currency is applied to every created transaction. Empty uses the
	// backend default.
	Currency string
	// DryRun parses and dedupes without creating anything.
	DryRun bool
	// Progress renders a progress bar to stderr when true.
	Progress bool
}

// Result summarizes an import run.
type Result struct {
	Parsed   int
	Imported int
	Skipped  int
	Failed   int
}

// Importer submits statement lines through the API, one transaction per line,
// skipping lines whose hash the ledger has seen.
type Importer struct {
	parser *Parser
	api    TransactionCreator
	ledger ImportLedger
}

// New creates an Importer.
func New(api TransactionCreator, ledger ImportLedger) *Importer {
	return &Importer{
		parser: NewParser(),
		api:    api,
		ledger: ledger,
	}
}

// Run parses the statement and imports every unseen line. A failed create
// counts as failed and does not mark the ledger, so the line is retried on
// the next run.
func (i *Importer) Run(ctx context.Context, reader io.Reader, opts Options) (*Result, error) {
	lines, err := i.parser.Parse(reader)
	if err != nil {
		return nil, err
	}

	result := &Result{Parsed: len(lines)}
	if len(lines) == 0 {
		return result, nil
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(len(lines)), "importing")
	}

	for _, line := range lines {
		if bar != nil {
			_ = bar.Add(1)
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		hash := line.Hash()
		seen, err := i.ledger.Seen(ctx, hash)
		if err != nil {
			return result, err
		}
		if seen {
			result.Skipped++
			continue
		}
		if opts.DryRun {
			result.Imported++
			continue
		}

		tx, err := i.api.CreateTransaction(ctx, line.Params(opts.Currency))
		if err != nil {
			result.Failed++
			slog.Warn("Failed to import statement line",
				"fitid", line.FitID,
				"payee", line.Payee,
				"error", err)
			continue
		}
		if err := i.ledger.MarkImported(ctx, hash, line.FitID, line.AccountID, tx.ID); err != nil {
			return result, fmt.Errorf("imported transaction %d but failed to record it: %w", tx.ID, err)
		}
		result.Imported++
	}

	slog.Info("Statement import finished",
		"parsed", result.Parsed,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"failed", result.Failed)
	return result, nil
}
