package catalog

import "strings"

// Product mirrors a single product record returned by the catalog API.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

// ProductListResponse mirrors the /products and /products/search payloads.
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// DiscountedPrice returns the price after applying the discount percentage.
func (p Product) DiscountedPrice() float64 {
	if p.DiscountPercentage <= 0 {
		return p.Price
	}
	return p.Price * (1 - p.DiscountPercentage/100)
}

// HasDiscount reports whether the product carries a meaningful discount.
func (p Product) HasDiscount() bool {
	return p.DiscountPercentage >= 1
}

// beautyKeywords marks titles, descriptions, and categories that belong in a
// beauty storefront. The catalog API serves a general product list; everything
// else is filtered out client-side.
var beautyKeywords = []string{
	"beauty",
	"cosmetic",
	"mascara",
	"lipstick",
	"foundation",
	"perfume",
	"cream",
	"oil",
	"serum",
	"powder",
	"lotion",
	"essence",
	"skincare",
	"moisturizer",
	"cleanser",
	"sunscreen",
	"fragrance",
}

var beautyCategories = map[string]bool{
	"beauty":     true,
	"fragrances": true,
	"skin-care":  true,
	"skincare":   true,
}

// IsBeauty reports whether the product plausibly belongs in the storefront.
func (p Product) IsBeauty() bool {
	category := strings.ToLower(p.Category)
	if beautyCategories[category] {
		return true
	}
	title := strings.ToLower(p.Title)
	description := strings.ToLower(p.Description)
	for _, keyword := range beautyKeywords {
		if strings.Contains(title, keyword) ||
			strings.Contains(description, keyword) ||
			strings.Contains(category, keyword) {
			return true
		}
	}
	return false
}

// FilterBeauty returns the beauty-adjacent subset of products. When nothing
// matches, the head of the unfiltered list is returned instead so the
// storefront always has something to show.
func FilterBeauty(products []Product) []Product {
	var matched []Product
	for _, p := range products {
		if p.IsBeauty() {
			matched = append(matched, p)
		}
	}
	if len(matched) > 0 {
		return matched
	}
	if len(products) > fallbackLimit {
		return products[:fallbackLimit]
	}
	return products
}

const fallbackLimit = 10

// Categories returns the distinct categories present in products, in first-seen order.
func Categories(products []Product) []string {
	seen := make(map[string]bool, len(products))
	var out []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
