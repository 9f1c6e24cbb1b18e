package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairenq/payment-transactions/internal/model"
)

// memTokenStore is an in-memory TokenStore for tests.
type memTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *memTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *memTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *memTokenStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := &memTokenStore{token: token}
	client, err := NewClient(Config{BaseURL: server.URL, Tokens: tokens})
	require.NoError(t, err)
	return client, tokens
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(Config{Tokens: &memTokenStore{}})
	assert.Error(t, err, "missing base URL should be rejected")

	_, err = NewClient(Config{BaseURL: "http://localhost:8000"})
	assert.Error(t, err, "missing token store should be rejected")
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "username": "alice", "email": "a@example.com", "role": "user", "is_active": true}`))
	}), "tok-123")

	_, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}), "")

	_, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestListTransactionsOmitsEmptyFilters(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}), "tok")

	_, err := client.ListTransactions(context.Background(), model.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, gotQuery, "an empty filter must produce no query parameters")

	_, err = client.ListTransactions(context.Background(), model.TransactionFilter{
		Type:  model.TypeExpense,
		Skip:  20,
		Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "expense", gotQuery.Get("type"))
	assert.Equal(t, "20", gotQuery.Get("skip"))
	assert.Equal(t, "10", gotQuery.Get("limit"))
	assert.False(t, gotQuery.Has("status"), "unset status must not reach the wire")
	assert.False(t, gotQuery.Has("category_id"))
}

func TestAuthFailureClearsToken(t *testing.T) {
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}), "stale-token")

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Empty(t, tokens.Token(), "the stale token must be cleared before the error returns")
}

func TestForbiddenClearsToken(t *testing.T) {
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail": "Not enough permissions"}`))
	}), "user-token")

	_, err := client.AdminStats(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Empty(t, tokens.Token())
}

func TestNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Transaction not found"}`))
	}), "tok")

	_, err := client.GetTransaction(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidationErrorFields(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": [
			{"loc": ["body", "password"], "msg": "ensure this value has at least 8 characters"},
			{"loc": ["body", "email"], "msg": "value is not a valid email address"}
		]}`))
	}), "")

	_, err := client.Register(context.Background(), Registration{Username: "bob", Email: "nope", Password: "x"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 2)
	assert.Equal(t, "password", vErr.Fields[0].Field)
	assert.Equal(t, "email", vErr.Fields[1].Field)
}

func TestLoginDecodesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"access_token": "fresh-token",
			"token_type": "bearer",
			"user": {"id": 7, "username": "alice", "email": "a@example.com", "role": "admin", "is_active": true}
		}`))
	}), "")

	resp, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", resp.AccessToken)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
	assert.EqualValues(t, 7, resp.User.ID)
}

func TestServerErrorDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Category name already exists"}`))
	}), "tok")

	_, err := client.CreateCategory(context.Background(), model.CategoryParams{Name: "Food"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Category name already exists", apiErr.Detail)
}

func TestCleanQuery(t *testing.T) {
	q := url.Values{}
	q.Set("type", "")
	q.Set("status", "pending")
	q.Set("limit", "")

	cleaned := cleanQuery(q)
	assert.Equal(t, "pending", cleaned.Get("status"))
	assert.False(t, cleaned.Has("type"))
	assert.False(t, cleaned.Has("limit"))

	assert.Nil(t, cleanQuery(nil))
}
