package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kairenq/payment-transactions/internal/model"
)

// historyOverlay is the audit trail popup for one transaction.
type historyOverlay struct {
	transactionID int64
	loading       bool
	events        []model.HistoryEvent
}

// transactionsPage lists the user's transactions with server-side filters.
type transactionsPage struct {
	loading       bool
	err           error
	filter        model.TransactionFilter
	items         []model.Transaction
	categories    []model.Category
	cursor        int
	confirmDelete bool
	history       *historyOverlay
}

// typeCycle and statusCycle are the filter rotations; the empty value means
// "no filter".
var typeCycle = []model.TransactionType{"", model.TypeIncome, model.TypeExpense, model.TypeTransfer}

var statusCycle = []model.TransactionStatus{
	"", model.StatusPending, model.StatusCompleted, model.StatusFailed, model.StatusCancelled,
}

func (m Model) handleTransactionsLoaded(msg transactionsLoadedMsg) (tea.Model, tea.Cmd) {
	// A stale response from a superseded filter must not overwrite the view.
	if msg.filter != m.transactions.filter {
		return m, nil
	}
	m.transactions.loading = false
	if next, cmd, failed := m.failLoad(msg.err); failed {
		m2 := next.(Model)
		m2.transactions.err = msg.err
		return m2, cmd
	}
	m.transactions.err = nil
	m.transactions.items = msg.items
	m.transactions.categories = msg.categories
	if m.transactions.cursor >= len(msg.items) {
		m.transactions.cursor = max(0, len(msg.items)-1)
	}
	return m, nil
}

func (m Model) handleHistoryLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	h := m.transactions.history
	if h == nil || h.transactionID != msg.transactionID {
		return m, nil
	}
	if next, cmd, failed := m.failLoad(msg.err); failed {
		m2 := next.(Model)
		m2.transactions.history = nil
		return m2, cmd
	}
	h.loading = false
	h.events = msg.events
	return m, nil
}

func (m Model) updateTransactionsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.transactions

	if p.history != nil {
		if key.Matches(msg, m.keymap.Cancel) || key.Matches(msg, m.keymap.Select) {
			p.history = nil
		}
		return m, nil
	}

	if p.confirmDelete {
		switch {
		case key.Matches(msg, m.keymap.Confirm):
			p.confirmDelete = false
			if tx, ok := p.selected(); ok {
				return m, m.deleteTransaction(tx.ID)
			}
		case key.Matches(msg, m.keymap.Cancel):
			p.confirmDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case key.Matches(msg, m.keymap.Select):
		if tx, ok := p.selected(); ok {
			p.history = &historyOverlay{transactionID: tx.ID, loading: true}
			return m, m.loadHistory(tx.ID)
		}
	case key.Matches(msg, m.keymap.Delete):
		if _, ok := p.selected(); ok {
			p.confirmDelete = true
		}
	case key.Matches(msg, m.keymap.CycleType):
		p.filter.Type = cycleValue(typeCycle, p.filter.Type)
		return m.reloadTransactions()
	case key.Matches(msg, m.keymap.CycleStatus):
		p.filter.Status = cycleValue(statusCycle, p.filter.Status)
		return m.reloadTransactions()
	case key.Matches(msg, m.keymap.ClearFilter):
		p.filter = model.TransactionFilter{}
		return m.reloadTransactions()
	case key.Matches(msg, m.keymap.Refresh):
		return m.reloadTransactions()
	}
	return m, nil
}

func (m Model) reloadTransactions() (tea.Model, tea.Cmd) {
	m.transactions.loading = true
	m.transactions.cursor = 0
	return m, m.loadTransactions(m.transactions.filter)
}

func (p *transactionsPage) selected() (model.Transaction, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return model.Transaction{}, false
	}
	return p.items[p.cursor], true
}

func cycleValue[T comparable](cycle []T, current T) T {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func (m Model) viewTransactions() string {
	p := m.transactions
	if p.loading {
		return subtleStyle.Render("Loading transactions...")
	}
	if p.err != nil {
		return statusErrorStyle.Render("Could not load transactions. Press r to retry.")
	}

	var b strings.Builder
	b.WriteString(m.renderTransactionFilter())
	b.WriteString("\n")
	if len(p.items) == 0 {
		b.WriteString(subtleStyle.Render("  no transactions match"))
		b.WriteString("\n")
	}
	for i, tx := range p.items {
		b.WriteString(renderTransactionLine(tx, i == p.cursor))
		b.WriteString("\n")
	}

	if p.history != nil {
		b.WriteString("\n")
		b.WriteString(m.renderHistory(*p.history))
	} else if p.confirmDelete {
		if tx, ok := p.selected(); ok {
			b.WriteString("\n")
			b.WriteString(confirmStyle.Render(fmt.Sprintf("Delete transaction #%d? (y/n)", tx.ID)))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter history • d delete • t type • s status • c clear filters • r refresh"))
	}
	return b.String()
}

func (m Model) renderTransactionFilter() string {
	f := m.transactions.filter
	parts := []string{}
	if f.Type != "" {
		parts = append(parts, "type="+string(f.Type))
	}
	if f.Status != "" {
		parts = append(parts, "status="+string(f.Status))
	}
	if f.CategoryID != 0 {
		parts = append(parts, fmt.Sprintf("category=%d", f.CategoryID))
	}
	if len(parts) == 0 {
		return subtleStyle.Render("filters: none")
	}
	return headerRowStyle.Render("filters: " + strings.Join(parts, " "))
}

func (m Model) renderHistory(h historyOverlay) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("History for #%d", h.transactionID)))
	b.WriteString("\n")
	if h.loading {
		b.WriteString(subtleStyle.Render("loading..."))
		return boxStyle.Render(b.String())
	}
	if len(h.events) == 0 {
		b.WriteString(subtleStyle.Render("no recorded changes"))
		return boxStyle.Render(b.String())
	}
	for _, ev := range h.events {
		line := fmt.Sprintf("%s  %s", ev.CreatedAt.Format("2006-01-02 15:04"), ev.Action)
		if ev.OldStatus != "" || ev.NewStatus != "" {
			line += fmt.Sprintf("  %s → %s", ev.OldStatus, ev.NewStatus)
		}
		if ev.Notes != "" {
			line += "  " + subtleStyle.Render(ev.Notes)
		}
		b.WriteString(line + "\n")
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
