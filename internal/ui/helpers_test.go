package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short", "serum", 10, "serum"},
		{"exact", "serum", 5, "serum"},
		{"cut", "a very long product title", 10, "a very lo…"},
		{"one", "serum", 1, "…"},
		{"zero_limit", "serum", 0, "serum"},
		{"trims", "  serum  ", 10, "serum"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	if got := formatPrice(12.5); got != "$12.50" {
		t.Fatalf("formatPrice = %q, want $12.50", got)
	}
}

func TestStars(t *testing.T) {
	cases := []struct {
		rating float64
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{2.4, "★★☆☆☆"},
		{2.6, "★★★☆☆"},
		{5, "★★★★★"},
		{9, "★★★★★"},
	}
	for _, tc := range cases {
		if got := stars(tc.rating); got != tc.want {
			t.Fatalf("stars(%v) = %q, want %q", tc.rating, got, tc.want)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := categoryLabel(""); got != "All" {
		t.Fatalf("categoryLabel(\"\") = %q, want All", got)
	}
	if got := categoryLabel("skin-care"); got != "Skin Care" {
		t.Fatalf("categoryLabel = %q, want Skin Care", got)
	}
}
