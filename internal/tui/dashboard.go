package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kairenq/payment-transactions/internal/model"
)

// dashboardPage shows overall stats plus the most recent activity.
type dashboardPage struct {
	loading bool
	err     error
	stats   *model.Stats
	recent  []model.Transaction
}

func (m Model) handleDashboardLoaded(msg dashboardLoadedMsg) (tea.Model, tea.Cmd) {
	m.dashboard.loading = false
	if next, cmd, failed := m.failLoad(msg.err); failed {
		m2 := next.(Model)
		m2.dashboard.err = msg.err
		return m2, cmd
	}
	m.dashboard.err = nil
	m.dashboard.stats = msg.stats
	m.dashboard.recent = msg.recent
	return m, nil
}

func (m Model) updateDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Refresh) {
		m.dashboard.loading = true
		return m, m.loadDashboard()
	}
	return m, nil
}

func (m Model) viewDashboard() string {
	if m.dashboard.loading {
		return subtleStyle.Render("Loading dashboard...")
	}
	if m.dashboard.err != nil {
		return statusErrorStyle.Render("Could not load the dashboard. Press r to retry.")
	}
	if m.dashboard.stats == nil {
		return subtleStyle.Render("No data yet.")
	}

	s := m.dashboard.stats
	var b strings.Builder
	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"%s\n\nBalance   %s\nIncome    %s\nExpenses  %s\nEntries   %d",
		titleStyle.Render("Overview"),
		formatAmount(s.Balance),
		incomeStyle.Render(formatAmount(s.TotalIncome)),
		expenseStyle.Render(formatAmount(s.TotalExpense)),
		s.TotalTransactions,
	)))
	b.WriteString("\n\n")
	b.WriteString(headerRowStyle.Render("Recent activity"))
	b.WriteString("\n")
	if len(m.dashboard.recent) == 0 {
		b.WriteString(subtleStyle.Render("  nothing yet"))
	}
	for _, tx := range m.dashboard.recent {
		b.WriteString(renderTransactionLine(tx, false))
		b.WriteString("\n")
	}
	return b.String()
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// renderTransactionLine formats one transaction row for list views.
func renderTransactionLine(tx model.Transaction, selected bool) string {
	amount := formatAmount(tx.Amount)
	switch tx.Type {
	case model.TypeIncome:
		amount = incomeStyle.Render("+" + amount)
	case model.TypeExpense:
		amount = expenseStyle.Render("-" + amount)
	}
	category := tx.CategoryName
	if category == "" {
		category = "uncategorized"
	}
	line := fmt.Sprintf("  %s  %-28s %10s  %s  %s",
		tx.TransactionDate.Format("2006-01-02"),
		truncate(tx.Description, 28),
		amount,
		statusStyle(string(tx.Status)).Render(string(tx.Status)),
		subtleStyle.Render(category),
	)
	if selected {
		return selectedRowStyle.Render(line)
	}
	return line
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
