package api

import (
	"context"
	"fmt"

	"github.com/kairenq/payment-transactions/internal/model"
)

// ListCategories returns all payment categories, sorted by name.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	if err := c.get(ctx, "/api/transactions/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateCategory creates a category. Duplicate names come back as an *Error
// with status 400.
func (c *Client) CreateCategory(ctx context.Context, params model.CategoryParams) (*model.Category, error) {
	var cat model.Category
	if err := c.post(ctx, "/api/transactions/categories", params, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory applies a partial edit to a category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, update model.CategoryUpdate) (*model.Category, error) {
	var cat model.Category
	if err := c.put(ctx, fmt.Sprintf("/api/transactions/categories/%d", id), update, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes a category. Transactions referencing it become
// uncategorized on the backend side.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/transactions/categories/%d", id))
}
