// Package tui is the interactive terminal UI: login, dashboard, transaction
// and category management, analytics, and the admin panel. Navigation between
// views goes through the route guard, and every view reloads its data in full
// after any mutation.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kairenq/payment-transactions/internal/api"
	"github.com/kairenq/payment-transactions/internal/model"
	"github.com/kairenq/payment-transactions/internal/route"
	"github.com/kairenq/payment-transactions/internal/session"
)

// Model is the root bubbletea model.
type Model struct {
	api     *api.Client
	session *session.Store
	notices *noticeBuffer
	keymap  KeyMap

	page       route.Name
	pendingNav route.Name
	width      int
	height     int
	status     []notice
	quitting   bool

	login        loginPage
	register     registerPage
	dashboard    dashboardPage
	transactions transactionsPage
	categories   categoriesPage
	analytics    analyticsPage
	admin        adminPage
}

// newModel creates the root model. The session store must have been built
// with the given notice buffer as its notifier.
func newModel(apiClient *api.Client, sess *session.Store, notices *noticeBuffer) Model {
	return Model{
		api:     apiClient,
		session: sess,
		notices: notices,
		keymap:  DefaultKeyMap(),
		page:    "",
		login:   newLoginPage(),
		analytics: analyticsPage{
			months: model.DefaultMonths,
			days:   model.DefaultDays,
		},
	}
}

// Init starts the session check. No view renders a routing decision until it
// resolves; the splash screen is shown instead.
func (m Model) Init() tea.Cmd {
	return m.checkSession()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case sessionResolvedMsg:
		target := m.pendingNav
		if target == "" {
			target = route.DefaultAuthenticated
		}
		m.pendingNav = ""
		return m.navigate(target)

	case authResultMsg:
		m.status = msg.notices
		if msg.ok {
			return m.navigate(route.DefaultAuthenticated)
		}
		m.login.busy = false
		m.register.busy = false
		return m, nil

	case loggedOutMsg:
		m.status = msg.notices
		return m.navigate(route.Login)

	case dashboardLoadedMsg:
		return m.handleDashboardLoaded(msg)
	case transactionsLoadedMsg:
		return m.handleTransactionsLoaded(msg)
	case categoriesLoadedMsg:
		return m.handleCategoriesLoaded(msg)
	case analyticsLoadedMsg:
		return m.handleAnalyticsLoaded(msg)
	case adminLoadedMsg:
		return m.handleAdminLoaded(msg)
	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)

	case mutationDoneMsg:
		return m.handleMutationDone(msg)
	}

	return m, nil
}

// handleKey routes a key press to the active view, after global bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text-entry views own almost every key.
	switch m.page {
	case route.Login:
		return m.updateLoginKeys(msg)
	case route.Register:
		return m.updateRegisterKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Logout):
		return m, m.logoutCmd()
	case key.Matches(msg, m.keymap.GoDashboard):
		return m.navigate(route.Dashboard)
	case key.Matches(msg, m.keymap.GoTransactions):
		return m.navigate(route.Transactions)
	case key.Matches(msg, m.keymap.GoCategories):
		return m.navigate(route.Categories)
	case key.Matches(msg, m.keymap.GoAnalytics):
		return m.navigate(route.Analytics)
	case key.Matches(msg, m.keymap.GoAdmin):
		return m.navigate(route.Admin)
	}

	switch m.page {
	case route.Dashboard:
		return m.updateDashboardKeys(msg)
	case route.Transactions:
		return m.updateTransactionsKeys(msg)
	case route.Categories:
		return m.updateCategoriesKeys(msg)
	case route.Analytics:
		return m.updateAnalyticsKeys(msg)
	case route.Admin:
		return m.updateAdminKeys(msg)
	}
	return m, nil
}

// navigate consults the route guard and switches to the permitted view,
// kicking off its load.
func (m Model) navigate(name route.Name) (tea.Model, tea.Cmd) {
	switch route.Decide(m.session.State(), m.session.IsAdmin(), name) {
	case route.Wait:
		m.pendingNav = name
		return m, nil
	case route.RedirectLogin:
		name = route.Login
	case route.RedirectDefault:
		name = route.DefaultAuthenticated
	case route.Render:
	}

	m.page = name
	switch name {
	case route.Login:
		m.login = newLoginPage()
		return m, m.login.focusCmd()
	case route.Register:
		m.register = newRegisterPage()
		return m, m.register.focusCmd()
	case route.Dashboard:
		m.dashboard.loading = true
		m.dashboard.err = nil
		return m, m.loadDashboard()
	case route.Transactions:
		m.transactions.loading = true
		m.transactions.err = nil
		m.transactions.confirmDelete = false
		m.transactions.history = nil
		return m, m.loadTransactions(m.transactions.filter)
	case route.Categories:
		m.categories.loading = true
		m.categories.err = nil
		m.categories.confirmDelete = false
		return m, m.loadCategories()
	case route.Analytics:
		m.analytics.loading = true
		m.analytics.err = nil
		return m, m.loadAnalytics(m.analytics.months, m.analytics.days)
	case route.Admin:
		m.admin.loading = true
		m.admin.err = nil
		m.admin.confirmDelete = false
		return m, m.loadAdmin()
	}
	return m, nil
}

// failLoad handles a batch fetch error. Auth failures drop the session and
// bounce to login; everything else keeps the view in its failed state with
// one generic notification, never showing partial data as current.
func (m Model) failLoad(err error) (tea.Model, tea.Cmd, bool) {
	if err == nil {
		return m, nil, false
	}
	if errors.Is(err, api.ErrAuthFailed) {
		m.session.Invalidate()
		m.status = []notice{{level: noticeError, text: "Session expired, please log in again"}}
		next, cmd := m.navigate(route.Login)
		return next, cmd, true
	}
	m.status = []notice{{level: noticeError, text: "Failed to load data: " + err.Error()}}
	return m, nil, true
}

// handleMutationDone reports the outcome and reloads the active view in full
// on success, so displayed data always reflects backend-derived fields.
func (m Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrAuthFailed) {
			m.session.Invalidate()
			m.status = []notice{{level: noticeError, text: "Session expired, please log in again"}}
			return m.navigate(route.Login)
		}
		m.status = []notice{{level: noticeError, text: "Failed to " + msg.action + ": " + msg.err.Error()}}
		return m, nil
	}
	m.status = []notice{{level: noticeSuccess, text: capitalize(msg.action) + " done"}}
	return m.navigate(m.page)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
