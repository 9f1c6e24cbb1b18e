package tui

import (
	"github.com/kairenq/payment-transactions/internal/model"
	"github.com/kairenq/payment-transactions/internal/session"
)

// sessionResolvedMsg reports that the startup session check finished.
type sessionResolvedMsg struct {
	state session.State
}

// authResultMsg reports a login or register attempt. Failure reasons arrive
// through the notices, not here.
type authResultMsg struct {
	ok      bool
	notices []notice
}

// loggedOutMsg reports that logout completed (it always does locally).
type loggedOutMsg struct {
	notices []notice
}

// Batch load results. Each view's fetches are fired together and awaited
// together; a single error represents the whole batch, so a failed batch
// never shows partial data.
type dashboardLoadedMsg struct {
	err    error
	stats  *model.Stats
	recent []model.Transaction
}

type transactionsLoadedMsg struct {
	err        error
	filter     model.TransactionFilter
	items      []model.Transaction
	categories []model.Category
}

type categoriesLoadedMsg struct {
	err   error
	items []model.Category
}

type analyticsLoadedMsg struct {
	err     error
	months  int
	days    int
	monthly []model.MonthlyPoint
	daily   []model.DailyPoint
	byCat   []model.CategorySlice
	status  []model.StatusCount
	top     []model.TopCategory
}

type adminLoadedMsg struct {
	err     error
	users   []model.User
	stats   *model.AdminStats
	pending []model.Transaction
}

type historyLoadedMsg struct {
	err           error
	transactionID int64
	events        []model.HistoryEvent
}

// mutationDoneMsg reports a create/update/delete. On success the owning view
// reloads its full list instead of patching local state.
type mutationDoneMsg struct {
	err    error
	action string
}
