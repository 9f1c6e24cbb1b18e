package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kairenq/payment-transactions/internal/model"
)

// analyticsPage renders the chart endpoints as text summaries. Window sizes
// rotate through the fixed presets.
type analyticsPage struct {
	loading bool
	err     error
	months  int
	days    int
	monthly []model.MonthlyPoint
	daily   []model.DailyPoint
	byCat   []model.CategorySlice
	status  []model.StatusCount
	top     []model.TopCategory
}

func (m Model) handleAnalyticsLoaded(msg analyticsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.months != m.analytics.months || msg.days != m.analytics.days {
		return m, nil
	}
	m.analytics.loading = false
	if next, cmd, failed := m.failLoad(msg.err); failed {
		m2 := next.(Model)
		m2.analytics.err = msg.err
		return m2, cmd
	}
	m.analytics.err = nil
	m.analytics.monthly = msg.monthly
	m.analytics.daily = msg.daily
	m.analytics.byCat = msg.byCat
	m.analytics.status = msg.status
	m.analytics.top = msg.top
	return m, nil
}

func (m Model) updateAnalyticsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.CycleMonths):
		m.analytics.months = cycleValue(model.MonthWindows, m.analytics.months)
		return m.reloadAnalytics()
	case key.Matches(msg, m.keymap.CycleDays):
		m.analytics.days = cycleValue(model.DayWindows, m.analytics.days)
		return m.reloadAnalytics()
	case key.Matches(msg, m.keymap.Refresh):
		return m.reloadAnalytics()
	}
	return m, nil
}

func (m Model) reloadAnalytics() (tea.Model, tea.Cmd) {
	m.analytics.loading = true
	return m, m.loadAnalytics(m.analytics.months, m.analytics.days)
}

func (m Model) viewAnalytics() string {
	p := m.analytics
	if p.loading {
		return subtleStyle.Render("Loading analytics...")
	}
	if p.err != nil {
		return statusErrorStyle.Render("Could not load analytics. Press r to retry.")
	}

	monthly := renderMonthly(p.months, p.monthly)
	daily := renderDaily(p.days, p.daily)
	byCat := renderByCategory(p.days, p.byCat)
	status := renderStatusCounts(p.status)
	top := renderTopCategories(p.top)

	left := lipgloss.JoinVertical(lipgloss.Left, monthly, daily)
	right := lipgloss.JoinVertical(lipgloss.Left, byCat, status, top)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	help := helpStyle.Render("m months window • w days window • r refresh")
	return body + "\n" + help
}

func renderMonthly(months int, points []model.MonthlyPoint) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Monthly trend (%dmo)", months)))
	b.WriteString("\n")
	if len(points) == 0 {
		b.WriteString(subtleStyle.Render("no data"))
	}
	for _, pt := range points {
		b.WriteString(fmt.Sprintf("%-8s %s %s\n",
			pt.Month,
			incomeStyle.Render(fmt.Sprintf("+%10.2f", pt.Income)),
			expenseStyle.Render(fmt.Sprintf("-%10.2f", pt.Expense)),
		))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderDaily(days int, points []model.DailyPoint) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Daily trend (%dd)", days)))
	b.WriteString("\n")
	if len(points) == 0 {
		b.WriteString(subtleStyle.Render("no data"))
	}
	for _, pt := range points {
		b.WriteString(fmt.Sprintf("%-11s %s %s\n",
			pt.Date,
			incomeStyle.Render(fmt.Sprintf("+%9.2f", pt.Income)),
			expenseStyle.Render(fmt.Sprintf("-%9.2f", pt.Expense)),
		))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderByCategory(days int, slices []model.CategorySlice) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Spending by category (%dd)", days)))
	b.WriteString("\n")
	if len(slices) == 0 {
		b.WriteString(subtleStyle.Render("no data"))
	}
	var total float64
	for _, s := range slices {
		total += s.Total
	}
	for _, s := range slices {
		share := 0.0
		if total > 0 {
			share = s.Total / total * 100
		}
		b.WriteString(fmt.Sprintf("%-20s %10.2f  %5.1f%%\n", truncate(s.Category, 20), s.Total, share))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderStatusCounts(counts []model.StatusCount) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("By status"))
	b.WriteString("\n")
	if len(counts) == 0 {
		b.WriteString(subtleStyle.Render("no data"))
	}
	for _, c := range counts {
		b.WriteString(fmt.Sprintf("%s %d\n",
			statusStyle(string(c.Status)).Render(fmt.Sprintf("%-10s", c.Status)), c.Count))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderTopCategories(top []model.TopCategory) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Top categories"))
	b.WriteString("\n")
	if len(top) == 0 {
		b.WriteString(subtleStyle.Render("no data"))
	}
	for i, t := range top {
		b.WriteString(fmt.Sprintf("%d. %-18s %10.2f  %s\n",
			i+1, truncate(t.Category, 18), t.TotalAmount,
			subtleStyle.Render(fmt.Sprintf("%d txns", t.TransactionCount))))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
