package api

import (
	"context"
	"fmt"

	"github.com/kairenq/payment-transactions/internal/model"
)

// ListUsers returns every account, newest first. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.get(ctx, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser applies a partial edit to an account. Admin only.
func (c *Client) UpdateUser(ctx context.Context, id int64, update model.UserUpdate) (*model.User, error) {
	var user model.User
	if err := c.put(ctx, fmt.Sprintf("/admin/users/%d", id), update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account. The bootstrap admin is protected here as a
// defense-in-depth measure: the call is refused before it reaches the wire.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	if id == model.BootstrapAdminID {
		return fmt.Errorf("user %d is the bootstrap admin and cannot be deleted", id)
	}
	return c.delete(ctx, fmt.Sprintf("/admin/users/%d", id))
}

// AdminStats returns account-level aggregates. Admin only.
func (c *Client) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	var stats model.AdminStats
	if err := c.get(ctx, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// PendingTransactions lists every user's pending transactions for
// moderation. Admin only.
func (c *Client) PendingTransactions(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := c.get(ctx, "/admin/transactions/pending", nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// ReviewTransaction settles a pending transaction as completed or failed.
// Admin only.
func (c *Client) ReviewTransaction(ctx context.Context, id int64, status model.TransactionStatus) (*model.Transaction, error) {
	if status != model.StatusCompleted && status != model.StatusFailed {
		return nil, fmt.Errorf("review status must be %q or %q, got %q", model.StatusCompleted, model.StatusFailed, status)
	}
	body := struct {
		Status model.TransactionStatus `json:"status"`
	}{Status: status}
	var tx model.Transaction
	if err := c.put(ctx, fmt.Sprintf("/admin/transactions/%d/status", id), body, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
