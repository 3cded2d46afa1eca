package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rosedew/blush/internal/store"
)

// Authentication is mock-only: any plausible email plus a short password
// establishes a local session. Nothing is verified remotely.

func (m *Model) initAuthInputs() {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	m.loginInputs = [2]textinput.Model{email, password}

	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 64

	regEmail := textinput.New()
	regEmail.Placeholder = "email"
	regEmail.CharLimit = 64

	regPassword := textinput.New()
	regPassword.Placeholder = "password"
	regPassword.CharLimit = 64
	regPassword.EchoMode = textinput.EchoPassword

	m.regInputs = [3]textinput.Model{name, regEmail, regPassword}

	m.formFocus = 0
	m.loginInputs[0].Focus()
	m.regInputs[0].Focus()
}

func (m Model) renderAuth() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Logo.Render("✿ blush"))
	b.WriteString("\n\n")

	if m.currentView == ViewLogin {
		b.WriteString(s.Title.Render("Sign in"))
		b.WriteString("\n\n")
		for _, input := range m.loginInputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("enter sign in · tab next field · ctrl+r create account"))
	} else {
		b.WriteString(s.Title.Render("Create account"))
		b.WriteString("\n\n")
		for _, input := range m.regInputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("enter create · tab next field · ctrl+r sign in instead"))
	}

	if m.formErr != "" {
		b.WriteString("\n\n")
		b.WriteString(s.Danger.Render(m.formErr))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
		m.cycleFormFocus(msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp)
		return m, nil

	case tea.KeyEnter:
		return m.submitAuth()

	case tea.KeyCtrlR:
		if m.currentView == ViewLogin {
			m.currentView = ViewRegister
		} else {
			m.currentView = ViewLogin
		}
		m.formErr = ""
		m.formFocus = 0
		m.refocusForm()
		return m, nil

	case tea.KeyEsc:
		m.currentView = ViewOnboarding
		return m, nil
	}

	var cmd tea.Cmd
	if m.currentView == ViewLogin {
		m.loginInputs[m.formFocus], cmd = m.loginInputs[m.formFocus].Update(msg)
	} else {
		m.regInputs[m.formFocus], cmd = m.regInputs[m.formFocus].Update(msg)
	}
	return m, cmd
}

func (m *Model) cycleFormFocus(backward bool) {
	fields := 2
	if m.currentView == ViewRegister {
		fields = 3
	}
	if backward {
		m.formFocus = (m.formFocus + fields - 1) % fields
	} else {
		m.formFocus = (m.formFocus + 1) % fields
	}
	m.refocusForm()
}

func (m *Model) refocusForm() {
	for i := range m.loginInputs {
		m.loginInputs[i].Blur()
	}
	for i := range m.regInputs {
		m.regInputs[i].Blur()
	}
	if m.currentView == ViewLogin {
		m.loginInputs[m.formFocus].Focus()
	} else {
		m.regInputs[m.formFocus].Focus()
	}
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	var name, email, password string
	if m.currentView == ViewLogin {
		email = strings.TrimSpace(m.loginInputs[0].Value())
		password = m.loginInputs[1].Value()
		name = displayName(email)
	} else {
		name = strings.TrimSpace(m.regInputs[0].Value())
		email = strings.TrimSpace(m.regInputs[1].Value())
		password = m.regInputs[2].Value()
		if name == "" {
			m.formErr = "Name is required"
			return m, nil
		}
	}

	if email == "" || !strings.Contains(email, "@") {
		m.formErr = "Enter a valid email address"
		return m, nil
	}
	if len(password) < 6 {
		m.formErr = "Password must be at least 6 characters"
		return m, nil
	}

	m.formErr = ""
	m.dispatch(store.Login{Session: store.Session{Name: name, Email: email}})
	m.currentView = ViewHome
	return m, nil
}

// displayName derives a friendly name from an email's local part.
func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.TrimSpace(local)
	if local == "" {
		return "User"
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
