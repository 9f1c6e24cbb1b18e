package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kairenq/payment-transactions/internal/route"
)

// registerPage is the account creation form.
type registerPage struct {
	username textinput.Model
	email    textinput.Model
	password textinput.Model
	focus    int
	busy     bool
}

func newRegisterPage() registerPage {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return registerPage{username: username, email: email, password: password}
}

func (p registerPage) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (m Model) updateRegisterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToLogin):
		return m.navigate(route.Login)

	case key.Matches(msg, m.keymap.NextField):
		m.register.focus = (m.register.focus + 1) % 3
		return m.syncRegisterFocus()

	case key.Matches(msg, m.keymap.Submit):
		if m.register.focus < 2 {
			m.register.focus++
			return m.syncRegisterFocus()
		}
		if m.register.busy {
			return m, nil
		}
		username := strings.TrimSpace(m.register.username.Value())
		email := strings.TrimSpace(m.register.email.Value())
		password := m.register.password.Value()
		if username == "" || email == "" || password == "" {
			m.status = []notice{{level: noticeError, text: "All fields are required"}}
			return m, nil
		}
		m.register.busy = true
		m.status = []notice{{level: noticeInfo, text: "Creating account..."}}
		return m, m.registerCmd(username, email, password)
	}

	var cmd tea.Cmd
	switch m.register.focus {
	case 0:
		m.register.username, cmd = m.register.username.Update(msg)
	case 1:
		m.register.email, cmd = m.register.email.Update(msg)
	default:
		m.register.password, cmd = m.register.password.Update(msg)
	}
	return m, cmd
}

func (m Model) syncRegisterFocus() (tea.Model, tea.Cmd) {
	m.register.username.Blur()
	m.register.email.Blur()
	m.register.password.Blur()
	switch m.register.focus {
	case 0:
		return m, m.register.username.Focus()
	case 1:
		return m, m.register.email.Focus()
	default:
		return m, m.register.password.Focus()
	}
}

func (m Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create Account"))
	b.WriteString("\n\n")
	b.WriteString("Username\n" + m.register.username.View() + "\n\n")
	b.WriteString("Email\n" + m.register.email.View() + "\n\n")
	b.WriteString("Password\n" + m.register.password.View() + "\n")

	body := boxStyle.Render(b.String())
	help := helpStyle.Render("enter submit • tab next field • ctrl+l log in • ctrl+c quit")
	return body + "\n" + help
}
