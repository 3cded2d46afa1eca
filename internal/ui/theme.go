package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// pastelPalette holds the muted swatch colors used behind product thumbnails.
// Shared across themes so a product keeps its color when the theme changes.
var pastelPalette = []string{
	// Muted browns
	"#BFA6A0", "#A89F91", "#C9B7A7",
	// Muted pinks
	"#E7C6C2", "#D8A7B1", "#CDB4C5",
	// Muted grays
	"#D3D3D3", "#B0A8B9", "#B8B8B8",
}

// pastelColor picks a swatch color from the product title. The hash is
// deterministic so a product always renders with the same color.
func pastelColor(title string) string {
	hash := 0
	for _, r := range title {
		hash = int(r) + ((hash << 5) - hash)
	}
	if hash < 0 {
		hash = -hash
	}
	return pastelPalette[hash%len(pastelPalette)]
}

var themes = []Theme{
	{
		Name:          "Rosewater",
		Background:    "#1E1A1B",
		Surface:       "#2A2425",
		SelectionBg:   "#D8A7B1",
		SelectionText: "#1E1A1B",
		Text:          "#F2E9E4",
		Muted:         "#A89F91",
		Faint:         "#6B625C",
		Accent:        "#D8A7B1",
		Success:       "#A3B18A",
		Warning:       "#E9C46A",
		Danger:        "#B84953",
	},
	{
		Name:          "Noir",
		Background:    "#121212",
		Surface:       "#1C1C1C",
		SelectionBg:   "#BBBBBB",
		SelectionText: "#121212",
		Text:          "#E0E0E0",
		Muted:         "#888888",
		Faint:         "#555555",
		Accent:        "#BBBBBB",
		Success:       "#7FB069",
		Warning:       "#D9A441",
		Danger:        "#C4554D",
	},
}

// GetTheme returns the theme with the given name, defaulting to the first.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, wrapping around.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Header   lipgloss.Style
	Logo     lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Footer   lipgloss.Style
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Faint    lipgloss.Style
	Accent   lipgloss.Style
	Price    lipgloss.Style
	Discount lipgloss.Style
	Danger   lipgloss.Style
	Success  lipgloss.Style
	Selected lipgloss.Style
	Heart    lipgloss.Style
	Banner   lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		TabOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Price: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		Discount: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Heart: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),

		Banner: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
	}
}

// swatch renders the product's pastel color block used in lists.
func swatch(title string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(pastelColor(title))).
		Render("  ")
}
