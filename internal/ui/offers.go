package ui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosedew/blush/internal/catalog"
	"github.com/rosedew/blush/internal/store"
)

// minOfferDiscount is the discount percentage a product needs to count as an offer.
const minOfferDiscount = 10.0

// offerProducts returns discounted catalog products, steepest discount first.
func (m Model) offerProducts() []catalog.Product {
	var offers []catalog.Product
	for _, p := range m.state.Catalog {
		if p.DiscountPercentage >= minOfferDiscount {
			offers = append(offers, p)
		}
	}
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].DiscountPercentage > offers[j].DiscountPercentage
	})
	return offers
}

func (m Model) renderOffers() string {
	offers := m.offerProducts()
	lines := make([]string, 0, len(offers))
	for _, p := range offers {
		line := m.styles.Discount.Render(fmt.Sprintf("%2.0f%% OFF ", p.DiscountPercentage)) + m.productLine(p)
		lines = append(lines, line)
	}
	title := fmt.Sprintf("Offers · %d deals", len(offers))
	return m.renderList(title, lines, m.offerSelected, "No deals right now.")
}

func (m Model) handleOffersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	offers := m.offerProducts()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.offerSelected > 0 {
			m.offerSelected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.offerSelected < len(offers)-1 {
			m.offerSelected++
		}

	case key.Matches(msg, m.keys.AddToCart):
		if p, ok := selectedProduct(offers, m.offerSelected); ok {
			m.dispatch(store.AddToCart{Product: p})
		}

	case key.Matches(msg, m.keys.ToggleWishlist):
		if p, ok := selectedProduct(offers, m.offerSelected); ok {
			m.toggleWishlist(p)
		}

	case key.Matches(msg, m.keys.Open):
		if p, ok := selectedProduct(offers, m.offerSelected); ok {
			return m.openDetail(p, ViewOffers)
		}
	}

	return m, nil
}
