package model

// TransactionType distinguishes the direction of a payment.
type TransactionType string

const (
	// TypeIncome is money received.
	TypeIncome TransactionType = "income"
	// TypeExpense is money spent.
	TypeExpense TransactionType = "expense"
	// TypeTransfer is money moved between accounts.
	TypeTransfer TransactionType = "transfer"
)

// Valid reports whether the type is one of the known values.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer:
		return true
	}
	return false
}

// TransactionStatus is the processing state of a transaction. Transitions are
// owned by the backend; regular users never set status directly.
type TransactionStatus string

const (
	// StatusPending awaits backend (or admin) settlement.
	StatusPending TransactionStatus = "pending"
	// StatusCompleted is a settled transaction; only completed transactions
	// count toward analytics totals.
	StatusCompleted TransactionStatus = "completed"
	// StatusFailed is a rejected transaction.
	StatusFailed TransactionStatus = "failed"
	// StatusCancelled is a transaction withdrawn by its owner.
	StatusCancelled TransactionStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Transaction is a payment record as returned by the backend. The category
// fields beyond CategoryID are denormalized by the backend's list queries and
// are empty when the transaction is uncategorized.
type Transaction struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"user_id"`
	CategoryID      *int64            `json:"category_id"`
	Type            TransactionType   `json:"type"`
	Amount          float64           `json:"amount"`
	Currency        string            `json:"currency"`
	Description     string            `json:"description"`
	Recipient       string            `json:"recipient"`
	Sender          string            `json:"sender"`
	Status          TransactionStatus `json:"status"`
	TransactionDate DateTime          `json:"transaction_date"`
	CreatedAt       DateTime          `json:"created_at"`
	UpdatedAt       DateTime          `json:"updated_at"`

	CategoryName  string `json:"category_name,omitempty"`
	CategoryColor string `json:"category_color,omitempty"`
	CategoryIcon  string `json:"category_icon,omitempty"`
	UserUsername  string `json:"user_username,omitempty"`
}

// TransactionParams carries the fields for transaction creation.
type TransactionParams struct {
	CategoryID      *int64          `json:"category_id,omitempty"`
	Type            TransactionType `json:"type"`
	Amount          float64         `json:"amount"`
	Currency        string          `json:"currency,omitempty"`
	Description     string          `json:"description,omitempty"`
	Recipient       string          `json:"recipient,omitempty"`
	Sender          string          `json:"sender,omitempty"`
	TransactionDate *DateTime       `json:"transaction_date,omitempty"`
}

// TransactionUpdate carries partial transaction edits. Nil fields are left
// unchanged by the backend.
type TransactionUpdate struct {
	CategoryID      *int64             `json:"category_id,omitempty"`
	Type            *TransactionType   `json:"type,omitempty"`
	Amount          *float64           `json:"amount,omitempty"`
	Currency        *string            `json:"currency,omitempty"`
	Status          *TransactionStatus `json:"status,omitempty"`
	Description     *string            `json:"description,omitempty"`
	Recipient       *string            `json:"recipient,omitempty"`
	Sender          *string            `json:"sender,omitempty"`
	TransactionDate *DateTime          `json:"transaction_date,omitempty"`
}

// TransactionFilter narrows transaction listings. Zero values mean "no
// constraint" and are never transmitted.
type TransactionFilter struct {
	Type       TransactionType
	Status     TransactionStatus
	CategoryID int64
	Skip       int
	Limit      int
}

// IsZero reports whether no constraint is set.
func (f TransactionFilter) IsZero() bool {
	return f == TransactionFilter{}
}

// HistoryEvent is one audit entry in a transaction's history.
type HistoryEvent struct {
	ID            int64    `json:"id"`
	TransactionID int64    `json:"transaction_id"`
	UserID        int64    `json:"user_id"`
	Action        string   `json:"action"`
	OldStatus     string   `json:"old_status"`
	NewStatus     string   `json:"new_status"`
	Notes         string   `json:"notes"`
	CreatedAt     DateTime `json:"created_at"`
}
