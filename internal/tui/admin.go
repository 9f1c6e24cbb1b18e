package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kairenq/payment-transactions/internal/model"
)

// adminPage holds the user roster, account stats, and the pending moderation
// queue. Tab switches between the user and queue sections.
type adminPage struct {
	loading       bool
	err           error
	users         []model.User
	stats         *model.AdminStats
	pending       []model.Transaction
	section       int // 0 = users, 1 = pending queue
	userCursor    int
	pendingCursor int
	confirmDelete bool
}

func (m Model) handleAdminLoaded(msg adminLoadedMsg) (tea.Model, tea.Cmd) {
	m.admin.loading = false
	if next, cmd, failed := m.failLoad(msg.err); failed {
		m2 := next.(Model)
		m2.admin.err = msg.err
		return m2, cmd
	}
	m.admin.err = nil
	m.admin.users = msg.users
	m.admin.stats = msg.stats
	m.admin.pending = msg.pending
	if m.admin.userCursor >= len(msg.users) {
		m.admin.userCursor = max(0, len(msg.users)-1)
	}
	if m.admin.pendingCursor >= len(msg.pending) {
		m.admin.pendingCursor = max(0, len(msg.pending)-1)
	}
	return m, nil
}

func (m Model) updateAdminKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.admin

	if p.confirmDelete {
		switch {
		case key.Matches(msg, m.keymap.Confirm):
			p.confirmDelete = false
			if u, ok := p.selectedUser(); ok {
				return m, m.deleteUser(u.ID)
			}
		case key.Matches(msg, m.keymap.Cancel):
			p.confirmDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.NextField):
		p.section = (p.section + 1) % 2
	case key.Matches(msg, m.keymap.Up):
		if p.section == 0 && p.userCursor > 0 {
			p.userCursor--
		} else if p.section == 1 && p.pendingCursor > 0 {
			p.pendingCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if p.section == 0 && p.userCursor < len(p.users)-1 {
			p.userCursor++
		} else if p.section == 1 && p.pendingCursor < len(p.pending)-1 {
			p.pendingCursor++
		}
	case key.Matches(msg, m.keymap.Delete):
		u, ok := p.selectedUser()
		if p.section != 0 || !ok {
			break
		}
		// The bootstrap administrator can never be removed; refuse without a
		// network round trip.
		if u.ID == model.BootstrapAdminID {
			m.status = []notice{{level: noticeError, text: "The bootstrap administrator cannot be deleted"}}
			break
		}
		p.confirmDelete = true
	case key.Matches(msg, m.keymap.Approve):
		if tx, ok := p.selectedPending(); p.section == 1 && ok {
			return m, m.reviewTransaction(tx.ID, model.StatusCompleted)
		}
	case key.Matches(msg, m.keymap.Reject):
		if tx, ok := p.selectedPending(); p.section == 1 && ok {
			return m, m.reviewTransaction(tx.ID, model.StatusFailed)
		}
	case key.Matches(msg, m.keymap.Refresh):
		p.loading = true
		return m, m.loadAdmin()
	}
	return m, nil
}

func (p *adminPage) selectedUser() (model.User, bool) {
	if p.userCursor < 0 || p.userCursor >= len(p.users) {
		return model.User{}, false
	}
	return p.users[p.userCursor], true
}

func (p *adminPage) selectedPending() (model.Transaction, bool) {
	if p.pendingCursor < 0 || p.pendingCursor >= len(p.pending) {
		return model.Transaction{}, false
	}
	return p.pending[p.pendingCursor], true
}

func (m Model) viewAdmin() string {
	p := m.admin
	if p.loading {
		return subtleStyle.Render("Loading admin data...")
	}
	if p.err != nil {
		return statusErrorStyle.Render("Could not load admin data. Press r to retry.")
	}

	var b strings.Builder
	if p.stats != nil {
		b.WriteString(boxStyle.Render(fmt.Sprintf(
			"%s\n\nUsers   %d (%d active, %d admin)\nNew in the last week   %d",
			titleStyle.Render("Accounts"),
			p.stats.TotalUsers, p.stats.ActiveUsers, p.stats.AdminCount,
			p.stats.RecentRegistrations,
		)))
		b.WriteString("\n\n")
	}

	b.WriteString(sectionTitle("Users", p.section == 0))
	b.WriteString("\n")
	for i, u := range p.users {
		active := "active"
		if !u.IsActive {
			active = "disabled"
		}
		line := fmt.Sprintf("  %-4d %-20s %-28s %-6s %s",
			u.ID, truncate(u.Username, 20), truncate(u.Email, 28), u.Role, active)
		if p.section == 0 && i == p.userCursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionTitle("Pending transactions", p.section == 1))
	b.WriteString("\n")
	if len(p.pending) == 0 {
		b.WriteString(subtleStyle.Render("  queue is empty"))
		b.WriteString("\n")
	}
	for i, tx := range p.pending {
		line := fmt.Sprintf("  #%-5d %-16s %10s  %s",
			tx.ID, truncate(tx.UserUsername, 16), formatAmount(tx.Amount),
			truncate(tx.Description, 32))
		if p.section == 1 && i == p.pendingCursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if p.confirmDelete {
		if u, ok := p.selectedUser(); ok {
			b.WriteString(confirmStyle.Render(fmt.Sprintf("Delete user %q and all their data? (y/n)", u.Username)))
		}
	} else {
		b.WriteString(helpStyle.Render("tab section • d delete user • a approve • x reject • r refresh"))
	}
	return b.String()
}

func sectionTitle(name string, active bool) string {
	if active {
		return activeTabStyle.Render(name)
	}
	return tabStyle.Render(name)
}
