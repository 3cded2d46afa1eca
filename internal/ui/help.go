package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	s := m.styles

	sections := []helpSection{
		{
			title: "Views",
			items: []helpItem{
				{"b", "Browse catalog"},
				{"o", "Offers"},
				{"c", "Cart"},
				{"W", "Wishlist"},
				{"p", "Profile"},
			},
		},
		{
			title: "Navigation",
			items: []helpItem{
				{"j/k", "Move down/up"},
				{"g/G", "Go to top/bottom"},
				{"enter", "Open product"},
				{"esc", "Back"},
			},
		},
		{
			title: "Browsing",
			items: []helpItem{
				{"/", "Search"},
				{"f", "Cycle category"},
				{"r", "Reload catalog"},
				{"a", "Add to cart"},
				{"w", "Toggle wishlist"},
			},
		},
		{
			title: "Cart",
			items: []helpItem{
				{"+/-", "More/fewer"},
				{"x", "Remove line"},
				{"enter", "Checkout"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(s.Faint.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)

	for i, section := range sections {
		b.WriteString(s.Accent.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(s.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
