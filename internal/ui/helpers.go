package ui

import (
	"fmt"
	"strings"
)

// truncate shortens s to at most limit runes, appending an ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(strings.TrimSpace(s))
	if limit <= 0 || len(runes) <= limit {
		return string(runes)
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

// formatPrice renders a dollar amount.
func formatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// stars renders a five-star rating bar.
func stars(rating float64) string {
	filled := int(rating + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// categoryLabel prettifies an API category slug for display.
func categoryLabel(category string) string {
	if category == "" {
		return "All"
	}
	words := strings.Split(strings.ReplaceAll(category, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
