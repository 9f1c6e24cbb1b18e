package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kairenq/payment-transactions/internal/model"
)

// categoriesPage lists the shared category catalog.
type categoriesPage struct {
	loading       bool
	err           error
	items         []model.Category
	cursor        int
	confirmDelete bool
}

func (m Model) handleCategoriesLoaded(msg categoriesLoadedMsg) (tea.Model, tea.Cmd) {
	m.categories.loading = false
	if next, cmd, failed := m.failLoad(msg.err); failed {
		m2 := next.(Model)
		m2.categories.err = msg.err
		return m2, cmd
	}
	m.categories.err = nil
	m.categories.items = msg.items
	if m.categories.cursor >= len(msg.items) {
		m.categories.cursor = max(0, len(msg.items)-1)
	}
	return m, nil
}

func (m Model) updateCategoriesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.categories

	if p.confirmDelete {
		switch {
		case key.Matches(msg, m.keymap.Confirm):
			p.confirmDelete = false
			if c, ok := p.selected(); ok {
				return m, m.deleteCategory(c.ID)
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
	case key.Matches(msg, m.keymap.Delete):
		if _, ok := p.selected(); ok {
			p.confirmDelete = true
		}
	case key.Matches(msg, m.keymap.Refresh):
		p.loading = true
		return m, m.loadCategories()
	}
	return m, nil
}

func (p *categoriesPage) selected() (model.Category, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return model.Category{}, false
	}
	return p.items[p.cursor], true
}

func (m Model) viewCategories() string {
	p := m.categories
	if p.loading {
		return subtleStyle.Render("Loading categories...")
	}
	if p.err != nil {
		return statusErrorStyle.Render("Could not load categories. Press r to retry.")
	}

	var b strings.Builder
	b.WriteString(headerRowStyle.Render(fmt.Sprintf("  %-4s %-24s %s", "ID", "Name", "Description")))
	b.WriteString("\n")
	if len(p.items) == 0 {
		b.WriteString(subtleStyle.Render("  no categories yet"))
		b.WriteString("\n")
	}
	for i, c := range p.items {
		icon := c.Icon
		if icon == "" {
			icon = " "
		}
		line := fmt.Sprintf("  %-4d %s %-22s %s", c.ID, icon, truncate(c.Name, 22), subtleStyle.Render(truncate(c.Description, 40)))
		if i == p.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if p.confirmDelete {
		if c, ok := p.selected(); ok {
			b.WriteString(confirmStyle.Render(fmt.Sprintf("Delete category %q? Transactions keep running but lose the label. (y/n)", c.Name)))
		}
	} else {
		b.WriteString(helpStyle.Render("d delete • r refresh"))
	}
	return b.String()
}
