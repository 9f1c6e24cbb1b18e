// Package route decides which view a navigation request may reach given the
// current session state and role.
package route

import "github.com/kairenq/payment-transactions/internal/session"

// Name identifies a navigable view.
type Name string

// The application's views.
const (
	Login        Name = "login"
	Register     Name = "register"
	Dashboard    Name = "dashboard"
	Transactions Name = "transactions"
	Categories   Name = "categories"
	Analytics    Name = "analytics"
	Admin        Name = "admin"
)

// DefaultAuthenticated is where authenticated users land by default, and
// where denied admin-only navigations are redirected.
const DefaultAuthenticated = Dashboard

// route describes one view's access requirements.
type route struct {
	requiresAuth bool
	adminOnly    bool
}

var routes = map[Name]route{
	Login:        {},
	Register:     {},
	Dashboard:    {requiresAuth: true},
	Transactions: {requiresAuth: true},
	Categories:   {requiresAuth: true},
	Analytics:    {requiresAuth: true},
	Admin:        {requiresAuth: true, adminOnly: true},
}

// Decision is the guard's verdict for a navigation request.
type Decision int

const (
	// Wait means the session is still resolving; render a neutral waiting
	// state and retry after resolution. Never redirect while waiting — a
	// reload would bounce an authenticated user to login otherwise.
	Wait Decision = iota
	// Render means the requested view may be shown.
	Render
	// RedirectLogin sends an anonymous user to the login view.
	RedirectLogin
	// RedirectDefault sends the user to the default authenticated view. Used
	// for denied admin-only requests and unmatched names.
	RedirectDefault
)

// Decide resolves a navigation request. Unknown names redirect to the
// default view rather than erroring.
func Decide(state session.State, isAdmin bool, name Name) Decision {
	switch state {
	case session.StateUnresolved, session.StateResolving:
		return Wait
	case session.StateAnonymous, session.StateAuthenticated:
		// Decided below.
	default:
		return Wait
	}

	r, ok := routes[name]
	if !ok {
		if state == session.StateAnonymous {
			return RedirectLogin
		}
		return RedirectDefault
	}

	if state == session.StateAnonymous {
		if r.requiresAuth {
			return RedirectLogin
		}
		return Render
	}

	if r.adminOnly && !isAdmin {
		return RedirectDefault
	}
	return Render
}
