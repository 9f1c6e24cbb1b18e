package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kairenq/payment-transactions/internal/model"
)

// ListTransactions returns the current user's transactions, newest first.
// Zero-valued filter fields are omitted from the query entirely.
func (c *Client) ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error) {
	q := url.Values{}
	q.Set("type", string(filter.Type))
	q.Set("status", string(filter.Status))
	if filter.CategoryID > 0 {
		q.Set("category_id", strconv.FormatInt(filter.CategoryID, 10))
	}
	if filter.Skip > 0 {
		q.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	var txs []model.Transaction
	if err := c.get(ctx, "/api/transactions/", q, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// GetTransaction fetches one transaction by ID.
func (c *Client) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	var tx model.Transaction
	if err := c.get(ctx, fmt.Sprintf("/api/transactions/%d", id), nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// CreateTransaction records a new transaction. New transactions always start
// in pending status; settlement is owned by the backend.
func (c *Client) CreateTransaction(ctx context.Context, params model.TransactionParams) (*model.Transaction, error) {
	var tx model.Transaction
	if err := c.post(ctx, "/api/transactions/", params, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateTransaction applies a partial edit to an owned transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, update model.TransactionUpdate) (*model.Transaction, error) {
	var tx model.Transaction
	if err := c.put(ctx, fmt.Sprintf("/api/transactions/%d", id), update, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DeleteTransaction removes an owned transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/transactions/%d", id))
}

// TransactionHistory returns the audit events recorded for a transaction.
func (c *Client) TransactionHistory(ctx context.Context, id int64) ([]model.HistoryEvent, error) {
	var events []model.HistoryEvent
	if err := c.get(ctx, fmt.Sprintf("/api/transactions/%d/history", id), nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}
