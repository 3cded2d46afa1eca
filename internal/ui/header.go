package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader draws the top bar: logo plus view tabs with live counts.
func (m Model) renderHeader() string {
	logo := m.styles.Logo.Render("✿ blush")

	tabs := []struct {
		view  View
		label string
	}{
		{ViewHome, "Browse"},
		{ViewOffers, "Offers"},
		{ViewCart, fmt.Sprintf("Cart(%d)", m.state.CartUnits())},
		{ViewWishlist, fmt.Sprintf("Wishlist(%d)", len(m.state.Wishlist))},
		{ViewProfile, "Profile"},
	}

	var parts []string
	for _, tab := range tabs {
		style := m.styles.Tab
		if m.currentView == tab.view || (m.currentView == ViewDetail && tab.view == m.detailFrom) {
			style = m.styles.TabOn
		}
		parts = append(parts, style.Render(tab.label))
	}

	line := logo + "  " + strings.Join(parts, "")
	return m.styles.Header.Width(max(0, m.width-2)).Render(line)
}

// renderFooter draws the bottom hint line for the current view.
func (m Model) renderFooter() string {
	var hints []string
	switch m.currentView {
	case ViewHome:
		hints = []string{"enter open", "a cart", "w wishlist", "/ search", "f category", "r reload"}
	case ViewDetail:
		hints = []string{"a cart", "w wishlist", "esc back"}
	case ViewCart:
		hints = []string{"+/- quantity", "x remove", "enter checkout"}
	case ViewWishlist:
		hints = []string{"a cart", "x remove"}
	case ViewOffers:
		hints = []string{"enter open", "a cart"}
	case ViewProfile:
		hints = []string{"l log out", "X clear saved data"}
	}
	hints = append(hints, "? help", "q quit")
	return m.styles.Footer.Render(strings.Join(hints, "  ·  "))
}

// renderList draws a one-line-per-item list with a selection cursor, padded
// to the content height.
func (m Model) renderList(title string, lines []string, selectedLine int, empty string) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	if len(lines) == 0 {
		b.WriteString(m.styles.Muted.Render(empty))
	}
	for i, line := range lines {
		if i == selectedLine {
			b.WriteString(m.styles.Selected.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Height(contentHeight(m.height)).Render(b.String())
}
