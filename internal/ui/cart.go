package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/rosedew/blush/internal/store"
)

func (m Model) renderCart() string {
	if m.checkoutConfirm {
		return m.renderCheckoutConfirm()
	}

	cart := m.state.Cart
	lines := make([]string, 0, len(cart))
	for _, line := range cart {
		lines = append(lines, m.cartLine(line))
	}

	title := "Cart"
	if len(cart) > 0 {
		title = fmt.Sprintf("Cart · %d items · total %s", m.state.CartUnits(), formatPrice(m.state.CartTotal()))
	}

	empty := "Your cart is empty. Browse with b."
	if m.orderRef != "" {
		empty = m.styles.Success.Render("Order placed! Reference " + m.orderRef)
	}
	return m.renderList(title, lines, m.cartSelected, empty)
}

func (m Model) cartLine(line store.CartLine) string {
	p := line.Product
	var b strings.Builder
	b.WriteString(swatch(p.Title))
	b.WriteString(" ")
	b.WriteString(truncate(p.Title, 30))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("×%d", line.Quantity)))
	b.WriteString("  ")
	b.WriteString(m.styles.Price.Render(formatPrice(p.DiscountedPrice() * float64(line.Quantity))))
	if p.HasDiscount() {
		b.WriteString(" ")
		b.WriteString(m.styles.Discount.Render(fmt.Sprintf("-%.0f%%", p.DiscountPercentage)))
	}
	return b.String()
}

func (m Model) renderCheckoutConfirm() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Title.Render("Checkout"))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render(fmt.Sprintf("%d items · total %s", m.state.CartUnits(), formatPrice(m.state.CartTotal()))))
	b.WriteString("\n\n")
	b.WriteString(s.Accent.Render("Place order? (y/n)"))
	return b.String()
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cart := m.state.Cart

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cartSelected > 0 {
			m.cartSelected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cartSelected < len(cart)-1 {
			m.cartSelected++
		}

	case key.Matches(msg, m.keys.Increase):
		if line, ok := selectedLine(cart, m.cartSelected); ok {
			m.dispatch(store.SetCartQuantity{ProductID: line.Product.ID, Quantity: line.Quantity + 1})
		}

	case key.Matches(msg, m.keys.Decrease):
		if line, ok := selectedLine(cart, m.cartSelected); ok {
			m.dispatch(store.SetCartQuantity{ProductID: line.Product.ID, Quantity: line.Quantity - 1})
			m.clampSelections()
		}

	case key.Matches(msg, m.keys.Remove):
		if line, ok := selectedLine(cart, m.cartSelected); ok {
			m.dispatch(store.RemoveFromCart{ProductID: line.Product.ID})
			m.clampSelections()
		}

	case key.Matches(msg, m.keys.Checkout):
		if len(cart) > 0 {
			m.checkoutConfirm = true
		}
	}

	return m, nil
}

func (m Model) handleCheckoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.checkoutConfirm = false
		m.orderRef = uuid.NewString()[:8]
		m.dispatch(store.ClearCart{})
		m.cartSelected = 0
	case "n", "esc":
		m.checkoutConfirm = false
	}
	return m, nil
}

func selectedLine(cart []store.CartLine, index int) (store.CartLine, bool) {
	if index < 0 || index >= len(cart) {
		return store.CartLine{}, false
	}
	return cart[index], true
}
