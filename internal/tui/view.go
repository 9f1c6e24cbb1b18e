package tui

import (
	"strings"

	"github.com/kairenq/payment-transactions/internal/route"
	"github.com/kairenq/payment-transactions/internal/session"
)

// View renders the active page under the tab bar, with the notice line at the
// bottom.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.session.State() == session.StateUnresolved || m.session.State() == session.StateResolving {
		return titleStyle.Render("payment tracker") + "\n\n" +
			subtleStyle.Render("Checking session...")
	}

	var b strings.Builder
	if m.session.State() == session.StateAuthenticated {
		b.WriteString(m.renderTabs())
		b.WriteString("\n\n")
	}

	switch m.page {
	case route.Login:
		b.WriteString(m.viewLogin())
	case route.Register:
		b.WriteString(m.viewRegister())
	case route.Dashboard:
		b.WriteString(m.viewDashboard())
	case route.Transactions:
		b.WriteString(m.viewTransactions())
	case route.Categories:
		b.WriteString(m.viewCategories())
	case route.Analytics:
		b.WriteString(m.viewAnalytics())
	case route.Admin:
		b.WriteString(m.viewAdmin())
	}

	if line := m.renderStatus(); line != "" {
		b.WriteString("\n\n")
		b.WriteString(line)
	}
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := []struct {
		name  route.Name
		label string
	}{
		{route.Dashboard, "1 Dashboard"},
		{route.Transactions, "2 Transactions"},
		{route.Categories, "3 Categories"},
		{route.Analytics, "4 Analytics"},
	}
	var parts []string
	for _, t := range tabs {
		if t.name == m.page {
			parts = append(parts, activeTabStyle.Render(t.label))
		} else {
			parts = append(parts, tabStyle.Render(t.label))
		}
	}
	if m.session.IsAdmin() {
		label := "5 Admin"
		if m.page == route.Admin {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	parts = append(parts, helpStyle.Render("  ctrl+o log out • q quit"))
	return strings.Join(parts, " ")
}

func (m Model) renderStatus() string {
	if len(m.status) == 0 {
		return ""
	}
	var parts []string
	for _, n := range m.status {
		switch n.level {
		case noticeSuccess:
			parts = append(parts, statusSuccessStyle.Render("✓ "+n.text))
		case noticeError:
			parts = append(parts, statusErrorStyle.Render("✗ "+n.text))
		default:
			parts = append(parts, statusInfoStyle.Render(n.text))
		}
	}
	return strings.Join(parts, "\n")
}
