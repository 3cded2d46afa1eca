package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosedew/blush/internal/catalog"
	"github.com/rosedew/blush/internal/store"
)

// openDetail switches to the detail screen for p and refreshes the full
// record from the catalog in the background.
func (m Model) openDetail(p catalog.Product, from View) (tea.Model, tea.Cmd) {
	product := p
	m.detail = &product
	m.detailFrom = from
	m.currentView = ViewDetail
	m.updateDetailViewport()
	return m, m.fetchProductCmd(p.ID)
}

func (m *Model) updateDetailViewport() {
	if m.detail == nil || !m.ready {
		return
	}
	m.detailViewport.SetContent(m.detailBody(*m.detail))
	m.detailViewport.GotoTop()
}

func (m Model) detailBody(p catalog.Product) string {
	s := m.styles
	var b strings.Builder

	b.WriteString(swatch(p.Title))
	b.WriteString(" ")
	b.WriteString(s.Title.Render(p.Title))
	b.WriteString("\n")
	if p.Brand != "" {
		b.WriteString(s.Muted.Render(p.Brand + " · " + categoryLabel(p.Category)))
	} else {
		b.WriteString(s.Muted.Render(categoryLabel(p.Category)))
	}
	b.WriteString("\n\n")

	if p.HasDiscount() {
		b.WriteString(s.Faint.Strikethrough(true).Render(formatPrice(p.Price)))
		b.WriteString(" ")
		b.WriteString(s.Price.Render(formatPrice(p.DiscountedPrice())))
		b.WriteString(" ")
		b.WriteString(s.Discount.Render(fmt.Sprintf("%.0f%% OFF", p.DiscountPercentage)))
	} else {
		b.WriteString(s.Price.Render(formatPrice(p.Price)))
	}
	b.WriteString("\n")
	b.WriteString(s.Accent.Render(stars(p.Rating)))
	b.WriteString(s.Muted.Render(fmt.Sprintf(" %.1f", p.Rating)))
	b.WriteString("\n")
	switch {
	case p.Stock <= 0:
		b.WriteString(s.Danger.Render("Out of stock"))
	case p.Stock < 10:
		b.WriteString(s.Danger.Render(fmt.Sprintf("Only %d left", p.Stock)))
	default:
		b.WriteString(s.Success.Render("In stock"))
	}
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render(p.Description))
	b.WriteString("\n\n")

	if qty := m.state.CartQuantity(p.ID); qty > 0 {
		b.WriteString(s.Accent.Render(fmt.Sprintf("%d in cart", qty)))
		b.WriteString("\n")
	}
	if m.state.InWishlist(p.ID) {
		b.WriteString(s.Heart.Render("♥ in wishlist"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderDetail() string {
	if m.detail == nil {
		return m.styles.Muted.Render("No product selected.")
	}
	return m.detailViewport.View()
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = m.detailFrom
		m.detail = nil
		return m, nil

	case key.Matches(msg, m.keys.AddToCart):
		if m.detail != nil {
			m.dispatch(store.AddToCart{Product: *m.detail})
			m.updateDetailViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleWishlist):
		if m.detail != nil {
			m.toggleWishlist(*m.detail)
			m.updateDetailViewport()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}
