package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rosedew/blush/internal/catalog"
	"github.com/rosedew/blush/internal/store"
)

// visibleProducts returns the product list for the browse screen: committed
// remote search results when present, otherwise the catalog, narrowed by the
// category filter and the live search text.
func (m Model) visibleProducts() []catalog.Product {
	base := m.state.Catalog
	if m.remoteResults != nil {
		base = m.remoteResults
	}

	query := strings.ToLower(strings.TrimSpace(m.searchInput.Value()))
	var out []catalog.Product
	for _, p := range base {
		if m.category != "" && p.Category != m.category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p catalog.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func (m Model) renderHome() string {
	if m.state.Err != "" {
		content := m.styles.Banner.Render(m.state.Err) +
			"\n\n" + m.styles.Muted.Render("Press r to retry.")
		return lipgloss.NewStyle().Height(contentHeight(m.height)).Render(content)
	}
	if m.state.Loading || (len(m.state.Catalog) == 0 && m.remoteResults == nil) {
		return m.renderList("Browse", nil, -1, m.spin.View()+" Loading catalog…")
	}

	products := m.visibleProducts()
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, m.productLine(p))
	}

	title := "Browse · " + categoryLabel(m.category)
	if m.remoteResults != nil {
		title = fmt.Sprintf("Search results (%d) · esc to clear", len(m.remoteResults))
	}
	if m.searchMode {
		title += "  /" + m.searchInput.View()
	}

	return m.renderList(title, lines, m.selected, "Nothing matches.")
}

// productLine renders one browse row: swatch, title, price, wishlist heart.
func (m Model) productLine(p catalog.Product) string {
	var b strings.Builder
	b.WriteString(swatch(p.Title))
	b.WriteString(" ")
	b.WriteString(truncate(p.Title, 34))
	b.WriteString("  ")
	if p.HasDiscount() {
		b.WriteString(m.styles.Faint.Strikethrough(true).Render(formatPrice(p.Price)))
		b.WriteString(" ")
		b.WriteString(m.styles.Price.Render(formatPrice(p.DiscountedPrice())))
	} else {
		b.WriteString(m.styles.Price.Render(formatPrice(p.Price)))
	}
	if m.state.InWishlist(p.ID) {
		b.WriteString(" " + m.styles.Heart.Render("♥"))
	}
	if qty := m.state.CartQuantity(p.ID); qty > 0 {
		b.WriteString(m.styles.Accent.Render(fmt.Sprintf(" [%d in cart]", qty)))
	}
	return b.String()
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.visibleProducts()

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.remoteResults != nil || m.searchInput.Value() != "" {
			m.remoteResults = nil
			m.searchInput.Reset()
			m.selected = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleCategory):
		m.category = nextCategory(m.state.Catalog, m.category)
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		m.remoteResults = nil
		m.dispatch(store.SetError{})
		m.dispatch(store.SetLoading{Loading: true})
		return m, m.loadCatalogCmd()

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(products)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(0, len(products)-1)
		return m, nil

	case key.Matches(msg, m.keys.AddToCart):
		if p, ok := selectedProduct(products, m.selected); ok {
			m.dispatch(store.AddToCart{Product: p})
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleWishlist):
		if p, ok := selectedProduct(products, m.selected); ok {
			m.toggleWishlist(p)
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if p, ok := selectedProduct(products, m.selected); ok {
			return m.openDetail(p, ViewHome)
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey routes keys to the search input while it is focused.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searchMode = false
		m.searchInput.Blur()
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		// Committed searches go to the catalog's search endpoint for
		// matches beyond the loaded snapshot.
		return m, m.searchCmd(query)

	case tea.KeyEsc:
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.Reset()
		m.remoteResults = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.selected = 0
	return m, cmd
}

func (m *Model) toggleWishlist(p catalog.Product) {
	if m.state.InWishlist(p.ID) {
		m.dispatch(store.RemoveFromWishlist{ProductID: p.ID})
	} else {
		m.dispatch(store.AddToWishlist{Product: p})
	}
}

func selectedProduct(products []catalog.Product, index int) (catalog.Product, bool) {
	if index < 0 || index >= len(products) {
		return catalog.Product{}, false
	}
	return products[index], true
}

// nextCategory cycles through the catalog's categories, with "" meaning all.
func nextCategory(products []catalog.Product, current string) string {
	categories := catalog.Categories(products)
	if len(categories) == 0 {
		return ""
	}
	if current == "" {
		return categories[0]
	}
	for i, c := range categories {
		if c == current {
			if i+1 < len(categories) {
				return categories[i+1]
			}
			return ""
		}
	}
	return ""
}
