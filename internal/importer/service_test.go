package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairenq/payment-transactions/internal/model"
)

// fakeCreator records created transactions and can fail on demand.
type fakeCreator struct {
	created []model.TransactionParams
	failFor map[string]bool // keyed by description
	nextID  int64
}

func (f *fakeCreator) CreateTransaction(_ context.Context, params model.TransactionParams) (*model.Transaction, error) {
	if f.failFor[params.Description] {
		return nil, errors.New("backend rejected the transaction")
	}
	f.created = append(f.created, params)
	f.nextID++
	return &model.Transaction{ID: f.nextID, Status: model.StatusPending}, nil
}

// memLedger is an in-memory import ledger.
type memLedger struct {
	seen map[string]bool
}

func newMemLedger() *memLedger {
	return &memLedger{seen: make(map[string]bool)}
}

func (l *memLedger) Seen(_ context.Context, hash string) (bool, error) {
	return l.seen[hash], nil
}

func (l *memLedger) MarkImported(_ context.Context, hash, _, _ string, _ int64) error {
	l.seen[hash] = true
	return nil
}

func TestImporterRun(t *testing.T) {
	creator := &fakeCreator{}
	book := newMemLedger()
	imp := New(creator, book)

	result, err := imp.Run(context.Background(), strings.NewReader(sampleBankOFX), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Parsed)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, creator.created, 2)
}

func TestImporterSkipsSeenLines(t *testing.T) {
	creator := &fakeCreator{}
	book := newMemLedger()
	imp := New(creator, book)

	_, err := imp.Run(context.Background(), strings.NewReader(sampleBankOFX), Options{})
	require.NoError(t, err)

	// A second run over the same statement creates nothing.
	result, err := imp.Run(context.Background(), strings.NewReader(sampleBankOFX), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Parsed)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, creator.created, 2, "no duplicates on re-import")
}

func TestImporterDryRun(t *testing.T) {
	creator := &fakeCreator{}
	book := newMemLedger()
	imp := New(creator, book)

	result, err := imp.Run(context.Background(), strings.NewReader(sampleBankOFX), Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, creator.created, "dry run must not create transactions")
	assert.Empty(t, book.seen, "dry run must not mark the ledger")
}

func TestImporterFailedCreateIsRetriable(t *testing.T) {
	creator := &fakeCreator{failFor: map[string]bool{"PAYROLL ACME CORP": true}}
	book := newMemLedger()
	imp := New(creator, book)

	result, err := imp.Run(context.Background(), strings.NewReader(sampleBankOFX), Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Failed)

	// The failed line was not marked, so the next run retries it.
	creator.failFor = nil
	result, err = imp.Run(context.Background(), strings.NewReader(sampleBankOFX), Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
}

func TestImporterEmptyStatementError(t *testing.T) {
	imp := New(&fakeCreator{}, newMemLedger())
	_, err := imp.Run(context.Background(), strings.NewReader("garbage"), Options{})
	assert.Error(t, err)
}
