package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairenq/payment-transactions/internal/model"
)

func TestDeleteUserRefusesBootstrapAdmin(t *testing.T) {
	requested := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requested = true
		w.WriteHeader(http.StatusNoContent)
	}), "admin-token")

	err := client.DeleteUser(context.Background(), model.BootstrapAdminID)
	require.Error(t, err)
	assert.False(t, requested, "the delete must be refused before it reaches the wire")

	err = client.DeleteUser(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, requested)
}

func TestReviewTransactionValidatesStatus(t *testing.T) {
	requested := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
		assert.Equal(t, "/admin/transactions/5/status", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)
		_, _ = w.Write([]byte(`{"id": 5, "status": "completed", "type": "expense", "amount": 12.5}`))
	}), "admin-token")

	for _, bad := range []model.TransactionStatus{model.StatusPending, model.StatusCancelled, "bogus"} {
		_, err := client.ReviewTransaction(context.Background(), 5, bad)
		require.Error(t, err, string(bad))
	}
	assert.False(t, requested, "invalid review statuses must not reach the wire")

	tx, err := client.ReviewTransaction(context.Background(), 5, model.StatusCompleted)
	require.NoError(t, err)
	assert.True(t, requested)
	assert.Equal(t, model.StatusCompleted, tx.Status)
}
