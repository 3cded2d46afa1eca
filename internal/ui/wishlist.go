package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosedew/blush/internal/store"
)

func (m Model) renderWishlist() string {
	wishlist := m.state.Wishlist
	lines := make([]string, 0, len(wishlist))
	for _, p := range wishlist {
		lines = append(lines, m.productLine(p))
	}
	title := fmt.Sprintf("Wishlist · %d saved", len(wishlist))
	return m.renderList(title, lines, m.wishSelected, "Nothing saved yet. Press w while browsing.")
}

func (m Model) handleWishlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	wishlist := m.state.Wishlist

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.wishSelected > 0 {
			m.wishSelected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.wishSelected < len(wishlist)-1 {
			m.wishSelected++
		}

	case key.Matches(msg, m.keys.AddToCart):
		if p, ok := selectedProduct(wishlist, m.wishSelected); ok {
			m.dispatch(store.AddToCart{Product: p})
		}

	case key.Matches(msg, m.keys.Remove), key.Matches(msg, m.keys.ToggleWishlist):
		if p, ok := selectedProduct(wishlist, m.wishSelected); ok {
			m.dispatch(store.RemoveFromWishlist{ProductID: p.ID})
			m.clampSelections()
		}

	case key.Matches(msg, m.keys.Open):
		if p, ok := selectedProduct(wishlist, m.wishSelected); ok {
			return m.openDetail(p, ViewWishlist)
		}
	}

	return m, nil
}
