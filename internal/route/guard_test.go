package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kairenq/payment-transactions/internal/session"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		state   session.State
		isAdmin bool
		target  Name
		want    Decision
	}{
		{"unresolved waits", session.StateUnresolved, false, Dashboard, Wait},
		{"resolving waits", session.StateResolving, false, Dashboard, Wait},
		{"resolving waits even for login", session.StateResolving, false, Login, Wait},

		{"anonymous renders login", session.StateAnonymous, false, Login, Render},
		{"anonymous renders register", session.StateAnonymous, false, Register, Render},
		{"anonymous blocked from dashboard", session.StateAnonymous, false, Dashboard, RedirectLogin},
		{"anonymous blocked from admin", session.StateAnonymous, false, Admin, RedirectLogin},
		{"anonymous unknown name", session.StateAnonymous, false, Name("settings"), RedirectLogin},

		{"user renders dashboard", session.StateAuthenticated, false, Dashboard, Render},
		{"user renders transactions", session.StateAuthenticated, false, Transactions, Render},
		{"user renders categories", session.StateAuthenticated, false, Categories, Render},
		{"user renders analytics", session.StateAuthenticated, false, Analytics, Render},
		{"user denied admin", session.StateAuthenticated, false, Admin, RedirectDefault},
		{"user renders login page", session.StateAuthenticated, false, Login, Render},
		{"user unknown name", session.StateAuthenticated, false, Name("settings"), RedirectDefault},

		{"admin renders admin", session.StateAuthenticated, true, Admin, Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state, tt.isAdmin, tt.target))
		})
	}
}

func TestDefaultAuthenticatedIsGuarded(t *testing.T) {
	// The redirect target itself must always be renderable for an
	// authenticated user, or redirects would loop.
	assert.Equal(t, Render, Decide(session.StateAuthenticated, false, DefaultAuthenticated))
}
