package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var onboardPages = []struct {
	title string
	body  string
}{
	{
		title: "Welcome to blush",
		body:  "A little beauty counter that lives in your terminal.\nSerums, lipsticks, fragrances — no browser required.",
	},
	{
		title: "Save what you love",
		body:  "Wishlist favorites with w, build a cart with a.\nEverything is kept on this device between sessions.",
	},
	{
		title: "Ready when you are",
		body:  "Sign in with any email to start browsing.",
	},
}

func (m Model) renderOnboarding() string {
	s := m.styles
	page := onboardPages[m.onboardPage]

	var b strings.Builder
	b.WriteString(s.Logo.Render("✿ blush"))
	b.WriteString("\n\n")
	b.WriteString(s.Title.Render(page.title))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render(page.body))
	b.WriteString("\n\n")

	dots := make([]string, len(onboardPages))
	for i := range onboardPages {
		if i == m.onboardPage {
			dots[i] = s.Accent.Render("●")
		} else {
			dots[i] = s.Faint.Render("○")
		}
	}
	b.WriteString(strings.Join(dots, " "))
	b.WriteString("\n\n")
	if m.onboardPage < len(onboardPages)-1 {
		b.WriteString(s.Muted.Render("enter next · s skip · q quit"))
	} else {
		b.WriteString(s.Muted.Render("enter sign in · q quit"))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", " ", "l", "right":
		if m.onboardPage < len(onboardPages)-1 {
			m.onboardPage++
		} else {
			m.currentView = ViewLogin
		}
	case "h", "left":
		if m.onboardPage > 0 {
			m.onboardPage--
		}
	case "s":
		m.currentView = ViewLogin
	}
	return m, nil
}
