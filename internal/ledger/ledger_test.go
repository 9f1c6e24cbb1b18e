package ledger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestSeenAndMark(t *testing.T) {
	l := openTestLedger(t)
	ctx := context.Background()

	seen, err := l.Seen(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, l.MarkImported(ctx, "abc123", "FIT001", "account-1", 42))

	seen, err = l.Seen(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = l.Seen(ctx, "other")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestMarkImportedIsIdempotent(t *testing.T) {
	l := openTestLedger(t)
	ctx := context.Background()

	require.NoError(t, l.MarkImported(ctx, "abc123", "FIT001", "account-1", 42))
	require.NoError(t, l.MarkImported(ctx, "abc123", "FIT001", "account-1", 42))

	n, err := l.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestLedgerPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()

	l, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, l.MarkImported(ctx, "abc123", "FIT001", "account-1", 42))
	require.NoError(t, l.Close())

	l, err = Open(path)
	require.NoError(t, err)
	defer l.Close()

	seen, err := l.Seen(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, seen)
}
