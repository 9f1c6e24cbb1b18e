package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.True(t, TypeTransfer.Valid())
	assert.False(t, TransactionType("").Valid())
	assert.False(t, TransactionType("refund").Valid())
}

func TestTransactionStatusValid(t *testing.T) {
	for _, s := range []TransactionStatus{StatusPending, StatusCompleted, StatusFailed, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, TransactionStatus("settled").Valid())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
}

func TestTransactionFilterIsZero(t *testing.T) {
	assert.True(t, TransactionFilter{}.IsZero())
	assert.False(t, TransactionFilter{Type: TypeIncome}.IsZero())
	assert.False(t, TransactionFilter{Limit: 10}.IsZero())
}
