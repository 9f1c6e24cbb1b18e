package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairenq/payment-transactions/internal/model"
)

func TestConfigValidate(t *testing.T) {
	assert.Error(t, Config{}.Validate())
	assert.Error(t, Config{ClientID: "id", ClientSecret: "secret"}.Validate(),
		"missing refresh token should be rejected")
	assert.NoError(t, Config{ClientID: "id", ClientSecret: "secret", RefreshToken: "rt"}.Validate())
}

func TestRows(t *testing.T) {
	catID := int64(3)
	transactions := []model.Transaction{
		{
			ID:              1,
			Type:            model.TypeExpense,
			Amount:          25.50,
			Currency:        "USD",
			Description:     "Coffee",
			Recipient:       "Starbucks",
			Status:          model.StatusCompleted,
			CategoryID:      &catID,
			CategoryName:    "Food",
			TransactionDate: model.NewDateTime(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
		},
		{
			ID:              2,
			Type:            model.TypeIncome,
			Amount:          1500,
			Currency:        "USD",
			Description:     "Salary",
			Sender:          "ACME",
			Status:          model.StatusPending,
			TransactionDate: model.NewDateTime(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)),
		},
	}

	rows := Rows(transactions)
	require.Len(t, rows, 3, "header plus one row per transaction")

	assert.Equal(t, "Date", rows[0][0])

	assert.Equal(t, "2024-01-15", rows[1][0])
	assert.Equal(t, "expense", rows[1][1])
	assert.Equal(t, "completed", rows[1][2])
	assert.Equal(t, 25.50, rows[1][3])
	assert.Equal(t, "Food", rows[1][5])
	assert.Equal(t, "Starbucks", rows[1][7])

	// Uncategorized transactions get a readable placeholder.
	assert.Equal(t, "Uncategorized", rows[2][5])
	assert.Equal(t, "ACME", rows[2][8])
}

func TestRowsEmpty(t *testing.T) {
	rows := Rows(nil)
	require.Len(t, rows, 1, "only the header")
}
