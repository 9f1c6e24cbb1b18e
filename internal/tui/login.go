package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kairenq/payment-transactions/internal/route"
)

// loginPage is the credential form shown to anonymous users.
type loginPage struct {
	username textinput.Model
	password textinput.Model
	focus    int
	busy     bool
}

func newLoginPage() loginPage {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginPage{username: username, password: password}
}

func (p loginPage) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (m Model) updateLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToSignup):
		return m.navigate(route.Register)

	case key.Matches(msg, m.keymap.NextField):
		m.login.focus = (m.login.focus + 1) % 2
		return m.syncLoginFocus()

	case key.Matches(msg, m.keymap.Submit):
		if m.login.focus == 0 {
			m.login.focus = 1
			return m.syncLoginFocus()
		}
		if m.login.busy {
			return m, nil
		}
		username := strings.TrimSpace(m.login.username.Value())
		password := m.login.password.Value()
		if username == "" || password == "" {
			m.status = []notice{{level: noticeError, text: "Username and password are required"}}
			return m, nil
		}
		m.login.busy = true
		m.status = []notice{{level: noticeInfo, text: "Logging in..."}}
		return m, m.loginCmd(username, password)
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.username, cmd = m.login.username.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m Model) syncLoginFocus() (tea.Model, tea.Cmd) {
	if m.login.focus == 0 {
		m.login.password.Blur()
		return m, m.login.username.Focus()
	}
	m.login.username.Blur()
	return m, m.login.password.Focus()
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign In"))
	b.WriteString("\n\n")
	b.WriteString("Username\n" + m.login.username.View() + "\n\n")
	b.WriteString("Password\n" + m.login.password.View() + "\n")

	body := boxStyle.Render(b.String())
	help := helpStyle.Render("enter submit • tab next field • ctrl+n sign up • ctrl+c quit")
	return body + "\n" + help
}
