package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/kairenq/payment-transactions/internal/model"
)

// Stats returns the per-user aggregate summary.
func (c *Client) Stats(ctx context.Context) (*model.Stats, error) {
	var stats model.Stats
	if err := c.get(ctx, "/api/analytics/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MonthlyChart returns per-month income/expense totals for the last n months.
func (c *Client) MonthlyChart(ctx context.Context, months int) ([]model.MonthlyPoint, error) {
	q := url.Values{}
	if months > 0 {
		q.Set("months", strconv.Itoa(months))
	}
	var points []model.MonthlyPoint
	if err := c.get(ctx, "/api/analytics/chart/monthly", q, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// DailyChart returns per-day income/expense totals for the last n days.
func (c *Client) DailyChart(ctx context.Context, days int) ([]model.DailyPoint, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	var points []model.DailyPoint
	if err := c.get(ctx, "/api/analytics/chart/daily", q, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// CategoryChart returns completed expense totals grouped by category over the
// last n days.
func (c *Client) CategoryChart(ctx context.Context, days int) ([]model.CategorySlice, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	var slices []model.CategorySlice
	if err := c.get(ctx, "/api/analytics/chart/category", q, &slices); err != nil {
		return nil, err
	}
	return slices, nil
}

// StatusChart returns transaction counts grouped by status.
func (c *Client) StatusChart(ctx context.Context) ([]model.StatusCount, error) {
	var counts []model.StatusCount
	if err := c.get(ctx, "/api/analytics/chart/status", nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// TopCategories ranks categories by completed volume. An empty txType ranks
// across both incomes and expenses.
func (c *Client) TopCategories(ctx context.Context, limit int, txType model.TransactionType) ([]model.TopCategory, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	q.Set("type", string(txType))
	var top []model.TopCategory
	if err := c.get(ctx, "/api/analytics/top-categories", q, &top); err != nil {
		return nil, err
	}
	return top, nil
}

// RecentActivity returns the most recently recorded transactions.
func (c *Client) RecentActivity(ctx context.Context, limit int) ([]model.Transaction, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var txs []model.Transaction
	if err := c.get(ctx, "/api/analytics/recent-activity", q, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
