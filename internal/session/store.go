// Package session holds the single authoritative answer to "who is logged
// in". The store owns the persisted credential and is the only writer of
// session state; views receive it by injection and read derived facts.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/kairenq/payment-transactions/internal/api"
	"github.com/kairenq/payment-transactions/internal/model"
)

// State is the session resolution state. Valid transitions:
//
//	Unresolved -> Resolving -> {Authenticated, Anonymous}
//	Authenticated -> Anonymous   (logout, auth failure)
//	Anonymous -> Authenticated   (login, register)
type State int

const (
	// StateUnresolved means CheckSession has not run yet. Views must not make
	// routing decisions in this state.
	StateUnresolved State = iota
	// StateResolving means the persisted token is being exchanged for an
	// identity. Views render a waiting state, never a redirect.
	StateResolving
	// StateAuthenticated means a user identity is resolved.
	StateAuthenticated
	// StateAnonymous means no valid credential is held.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	}
	return "unknown"
}

// AuthService is the slice of the API client the store needs. It is an
// interface so tests can drive the state machine without a server.
type AuthService interface {
	Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error)
	Register(ctx context.Context, reg api.Registration) (*api.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*model.User, error)
}

// Notifier is the side channel for user-facing messages. Login and register
// report success as a boolean; the human-readable reason travels here.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// LogNotifier routes notifications to slog. It is the default when no UI is
// attached.
type LogNotifier struct{}

// Success logs at info level.
func (LogNotifier) Success(msg string) { slog.Info(msg) }

// Error logs at error level.
func (LogNotifier) Error(msg string) { slog.Error(msg) }

// Info logs at info level.
func (LogNotifier) Info(msg string) { slog.Info(msg) }

// Store tracks the current session. All mutation goes through its methods;
// there is exactly one Store per client process.
type Store struct {
	auth   AuthService
	tokens api.TokenStore
	notify Notifier

	mu    sync.RWMutex
	state State
	user  *model.User
}

// NewStore creates a session store. A nil notifier falls back to LogNotifier.
func NewStore(auth AuthService, tokens api.TokenStore, notify Notifier) *Store {
	if notify == nil {
		notify = LogNotifier{}
	}
	return &Store{
		auth:   auth,
		tokens: tokens,
		notify: notify,
		state:  StateUnresolved,
	}
}

// State returns the current resolution state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the resolved user, or nil when not authenticated.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAdmin reports whether the resolved user holds the admin role. It is safe
// to call in any state; an anonymous session is never an admin.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAuthenticated && s.user != nil && s.user.Role == model.RoleAdmin
}

// CheckSession resolves the persisted token into an identity, if one exists.
// It always leaves the store in StateAuthenticated or StateAnonymous, so a
// route decision made after it returns is never premature. A token that no
// longer resolves is dropped.
func (s *Store) CheckSession(ctx context.Context) {
	if s.tokens.Token() == "" {
		s.setAnonymous()
		return
	}

	s.mu.Lock()
	s.state = StateResolving
	s.mu.Unlock()

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		// The API client has already cleared the token on 401/403; clear
		// defensively for transport failures too, since we cannot tell a dead
		// token from a dead server here and a wrong "authenticated" is worse.
		if !errors.Is(err, api.ErrAuthFailed) {
			if clearErr := s.tokens.Clear(); clearErr != nil {
				slog.Warn("Failed to clear stale token", "error", clearErr)
			}
		}
		slog.Debug("Session check failed", "error", err)
		s.setAnonymous()
		return
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.mu.Unlock()
}

// Login exchanges credentials for a session. It reports success as a boolean
// and sends the failure reason to the notifier instead of returning it.
func (s *Store) Login(ctx context.Context, username, password string) bool {
	resp, err := s.auth.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		s.notify.Error(loginFailureMessage(err))
		return false
	}
	return s.adopt(resp, "Logged in as "+resp.User.Username)
}

// Register creates an account and logs it in. Field-level validation errors
// are surfaced per-field through the notifier; anything else collapses to a
// single generic message.
func (s *Store) Register(ctx context.Context, username, email, password string) bool {
	resp, err := s.auth.Register(ctx, api.Registration{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		var vErr *api.ValidationError
		if errors.As(err, &vErr) && len(vErr.Fields) > 0 {
			for _, f := range vErr.Fields {
				s.notify.Error(f.Field + ": " + f.Message)
			}
		} else {
			s.notify.Error(registerFailureMessage(err))
		}
		return false
	}
	return s.adopt(resp, "Registered as "+resp.User.Username)
}

// adopt persists the token from an auth response and moves to authenticated.
func (s *Store) adopt(resp *api.AuthResponse, successMsg string) bool {
	if err := s.tokens.Save(resp.AccessToken); err != nil {
		s.notify.Error("Failed to save credentials: " + err.Error())
		return false
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	user := resp.User
	s.user = &user
	s.mu.Unlock()

	s.notify.Success(successMsg)
	return true
}

// Logout notifies the server and clears local state. The local clear happens
// unconditionally; logout never fails from the caller's point of view.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		slog.Debug("Server logout failed, clearing local session anyway", "error", err)
	}
	if err := s.tokens.Clear(); err != nil {
		slog.Warn("Failed to clear credentials on logout", "error", err)
	}
	s.setAnonymous()
	s.notify.Info("Logged out")
}

// Invalidate drops the session after an asynchronous auth failure observed by
// a view. The token has already been cleared by the API client.
func (s *Store) Invalidate() {
	s.setAnonymous()
}

func (s *Store) setAnonymous() {
	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.mu.Unlock()
}

func loginFailureMessage(err error) string {
	var apiErr *api.Error
	switch {
	case errors.Is(err, api.ErrAuthFailed):
		return "Invalid username or password"
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		return apiErr.Detail
	}
	return "Login failed: " + err.Error()
}

func registerFailureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Registration failed: " + err.Error()
}
