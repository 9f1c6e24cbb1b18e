package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairenq/payment-transactions/internal/api"
	"github.com/kairenq/payment-transactions/internal/model"
	"github.com/kairenq/payment-transactions/internal/route"
	"github.com/kairenq/payment-transactions/internal/session"
)

// memTokens is an in-memory token store for tests.
type memTokens struct {
	token string
}

func (s *memTokens) Token() string          { return s.token }
func (s *memTokens) Save(token string) error { s.token = token; return nil }
func (s *memTokens) Clear() error            { s.token = ""; return nil }

// stubAuth satisfies session.AuthService with canned answers.
type stubAuth struct {
	user *model.User
	err  error
}

func (a *stubAuth) Login(_ context.Context, _ api.Credentials) (*api.AuthResponse, error) {
	return nil, a.err
}

func (a *stubAuth) Register(_ context.Context, _ api.Registration) (*api.AuthResponse, error) {
	return nil, a.err
}

func (a *stubAuth) Logout(_ context.Context) error { return nil }

func (a *stubAuth) CurrentUser(_ context.Context) (*model.User, error) {
	return a.user, a.err
}

func newTestModel(t *testing.T, user *model.User, token string) Model {
	t.Helper()
	tokens := &memTokens{token: token}
	client, err := api.NewClient(api.Config{BaseURL: "http://localhost:1", Tokens: tokens})
	require.NoError(t, err)

	notices := &noticeBuffer{}
	sess := session.NewStore(&stubAuth{user: user}, tokens, notices)
	sess.CheckSession(context.Background())
	return newModel(client, sess, notices)
}

func TestNavigateAnonymousRedirectsToLogin(t *testing.T) {
	m := newTestModel(t, nil, "")

	next, _ := m.navigate(route.Transactions)
	assert.Equal(t, route.Login, next.(Model).page)
}

func TestNavigateAuthenticatedLandsOnTarget(t *testing.T) {
	m := newTestModel(t, &model.User{ID: 1, Username: "alice", Role: model.RoleUser}, "tok")

	next, cmd := m.navigate(route.Transactions)
	assert.Equal(t, route.Transactions, next.(Model).page)
	assert.NotNil(t, cmd, "entering a data view must start its load")
}

func TestNavigateNonAdminDeniedAdminView(t *testing.T) {
	m := newTestModel(t, &model.User{ID: 1, Username: "alice", Role: model.RoleUser}, "tok")

	next, _ := m.navigate(route.Admin)
	assert.Equal(t, route.DefaultAuthenticated, next.(Model).page)
}

func TestNavigateAdminReachesAdminView(t *testing.T) {
	m := newTestModel(t, &model.User{ID: 1, Username: "root", Role: model.RoleAdmin}, "tok")

	next, _ := m.navigate(route.Admin)
	assert.Equal(t, route.Admin, next.(Model).page)
}

func TestLoadErrorKeepsViewFailed(t *testing.T) {
	m := newTestModel(t, &model.User{ID: 1, Username: "alice", Role: model.RoleUser}, "tok")
	m.page = route.Dashboard

	next, _ := m.handleDashboardLoaded(dashboardLoadedMsg{err: assert.AnError})
	got := next.(Model)
	assert.Error(t, got.dashboard.err)
	assert.Nil(t, got.dashboard.stats, "a failed batch must not show partial data")
	assert.NotEmpty(t, got.status)
}

func TestAuthFailureDuringLoadRedirectsToLogin(t *testing.T) {
	m := newTestModel(t, &model.User{ID: 1, Username: "alice", Role: model.RoleUser}, "tok")
	m.page = route.Dashboard

	next, _ := m.handleDashboardLoaded(dashboardLoadedMsg{err: api.ErrAuthFailed})
	got := next.(Model)
	assert.Equal(t, route.Login, got.page)
	assert.Equal(t, session.StateAnonymous, got.session.State())
}

func TestStaleTransactionsResponseIgnored(t *testing.T) {
	m := newTestModel(t, &model.User{ID: 1, Username: "alice", Role: model.RoleUser}, "tok")
	m.transactions.filter = model.TransactionFilter{Type: model.TypeIncome}
	m.transactions.loading = true

	// A response for a filter that is no longer current must not land.
	next, _ := m.handleTransactionsLoaded(transactionsLoadedMsg{
		filter: model.TransactionFilter{Type: model.TypeExpense},
		items:  []model.Transaction{{ID: 1}},
	})
	got := next.(Model)
	assert.True(t, got.transactions.loading)
	assert.Empty(t, got.transactions.items)
}

func TestCycleValue(t *testing.T) {
	assert.Equal(t, model.TypeIncome, cycleValue(typeCycle, ""))
	assert.Equal(t, model.TypeExpense, cycleValue(typeCycle, model.TypeIncome))
	assert.Equal(t, model.TransactionType(""), cycleValue(typeCycle, model.TypeTransfer))
	// Unknown values restart the cycle.
	assert.Equal(t, model.TransactionType(""), cycleValue(typeCycle, model.TransactionType("bogus")))

	assert.Equal(t, 6, cycleValue(model.MonthWindows, 3))
	assert.Equal(t, 3, cycleValue(model.MonthWindows, 12))
}

func TestNoticeBufferDrain(t *testing.T) {
	buf := &noticeBuffer{}
	buf.Success("logged in")
	buf.Error("nope")

	drained := buf.drain()
	require.Len(t, drained, 2)
	assert.Equal(t, noticeSuccess, drained[0].level)
	assert.Equal(t, noticeError, drained[1].level)
	assert.Empty(t, buf.drain(), "drain clears the buffer")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly", truncate("exactly", 7))
	assert.Equal(t, "long te...", truncate("long text that overflows", 10))
}
