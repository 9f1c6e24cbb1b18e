package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/kairenq/payment-transactions/internal/model"
)

// requestTimeout bounds each view's fetch batch.
const requestTimeout = 30 * time.Second

func (m Model) checkSession() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		m.session.CheckSession(ctx)
		return sessionResolvedMsg{state: m.session.State()}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		ok := m.session.Login(ctx, username, password)
		return authResultMsg{ok: ok, notices: m.notices.drain()}
	}
}

func (m Model) registerCmd(username, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		ok := m.session.Register(ctx, username, email, password)
		return authResultMsg{ok: ok, notices: m.notices.drain()}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		m.session.Logout(ctx)
		return loggedOutMsg{notices: m.notices.drain()}
	}
}

// loadDashboard fetches the dashboard batch: all fetches fired together, the
// view is not loaded until every one resolves, and any failure fails the
// whole batch.
func (m Model) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var msg dashboardLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.stats, err = m.api.Stats(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.recent, err = m.api.RecentActivity(gctx, model.DefaultRecentLimit)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (m Model) loadTransactions(filter model.TransactionFilter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg := transactionsLoadedMsg{filter: filter}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.items, err = m.api.ListTransactions(gctx, filter)
			return err
		})
		g.Go(func() error {
			var err error
			msg.categories, err = m.api.ListCategories(gctx)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (m Model) loadCategories() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		items, err := m.api.ListCategories(ctx)
		return categoriesLoadedMsg{items: items, err: err}
	}
}

func (m Model) loadAnalytics(months, days int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg := analyticsLoadedMsg{months: months, days: days}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.monthly, err = m.api.MonthlyChart(gctx, months)
			return err
		})
		g.Go(func() error {
			var err error
			msg.daily, err = m.api.DailyChart(gctx, days)
			return err
		})
		g.Go(func() error {
			var err error
			msg.byCat, err = m.api.CategoryChart(gctx, days)
			return err
		})
		g.Go(func() error {
			var err error
			msg.status, err = m.api.StatusChart(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.top, err = m.api.TopCategories(gctx, model.DefaultTopLimit, "")
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (m Model) loadAdmin() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var msg adminLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.users, err = m.api.ListUsers(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.stats, err = m.api.AdminStats(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.pending, err = m.api.PendingTransactions(gctx)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (m Model) loadHistory(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		events, err := m.api.TransactionHistory(ctx, id)
		return historyLoadedMsg{transactionID: id, events: events, err: err}
	}
}

func (m Model) deleteTransaction(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutationDoneMsg{action: "delete transaction", err: m.api.DeleteTransaction(ctx, id)}
	}
}

func (m Model) deleteCategory(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutationDoneMsg{action: "delete category", err: m.api.DeleteCategory(ctx, id)}
	}
}

func (m Model) deleteUser(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutationDoneMsg{action: "delete user", err: m.api.DeleteUser(ctx, id)}
	}
}

func (m Model) reviewTransaction(id int64, status model.TransactionStatus) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := m.api.ReviewTransaction(ctx, id, status)
		return mutationDoneMsg{action: "review transaction", err: err}
	}
}
