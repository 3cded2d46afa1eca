package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rosedew/blush/internal/store"
)

func (m Model) renderProfile() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Title.Render("Profile"))
	b.WriteString("\n\n")

	if session := m.state.Session; session != nil {
		b.WriteString(s.Text.Render(session.Name))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(session.Email))
	} else {
		b.WriteString(s.Muted.Render("Not signed in."))
	}
	b.WriteString("\n\n")

	b.WriteString(s.Muted.Render(fmt.Sprintf("%d items in cart · %d wishlisted", m.state.CartUnits(), len(m.state.Wishlist))))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Theme: " + m.theme.Name + " (T to change)"))
	b.WriteString("\n\n")

	b.WriteString(s.Text.Render("l") + s.Muted.Render("  Log out"))
	b.WriteString("\n")
	b.WriteString(s.Danger.Render("X") + s.Muted.Render("  Clear all saved data"))

	if m.profileNotice != "" {
		b.WriteString("\n\n")
		b.WriteString(s.Banner.Render(m.profileNotice))
	}

	return lipgloss.NewStyle().Height(contentHeight(m.height)).Render(b.String())
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l":
		// Persistence reacts to the logout transition by deleting the
		// saved keys; nothing more to do here.
		m.dispatch(store.Logout{})
		m.resetAfterSignOut()
		m.currentView = ViewLogin
		return m, nil

	case "X":
		m.profileNotice = ""
		return m, m.clearAllCmd()
	}
	return m, nil
}
