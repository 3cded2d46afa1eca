package ui

import "testing"

func TestPastelColorDeterministic(t *testing.T) {
	first := pastelColor("Essence Mascara Lash Princess")
	for i := 0; i < 5; i++ {
		if got := pastelColor("Essence Mascara Lash Princess"); got != first {
			t.Fatalf("pastelColor changed between calls: %q then %q", first, got)
		}
	}
}

func TestPastelColorInPalette(t *testing.T) {
	titles := []string{"", "Red Lipstick", "Eyeshadow Palette with Mirror", "Chanel Coco Noir Eau De", "日焼け止め"}
	for _, title := range titles {
		got := pastelColor(title)
		found := false
		for _, c := range pastelPalette {
			if c == got {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("pastelColor(%q) = %q, not in palette", title, got)
		}
	}
}

func TestGetThemeFallback(t *testing.T) {
	if got := GetTheme("Rosewater"); got.Name != "Rosewater" {
		t.Fatalf("GetTheme(Rosewater) = %q", got.Name)
	}
	if got := GetTheme("no-such-theme"); got.Name != themes[0].Name {
		t.Fatalf("GetTheme fallback = %q, want %q", got.Name, themes[0].Name)
	}
}

func TestNextThemeWraps(t *testing.T) {
	name := themes[0].Name
	for range themes {
		name = NextTheme(name)
	}
	if name != themes[0].Name {
		t.Fatalf("cycling through all themes ended at %q, want %q", name, themes[0].Name)
	}
	if got := NextTheme("no-such-theme"); got != themes[0].Name {
		t.Fatalf("NextTheme unknown = %q, want %q", got, themes[0].Name)
	}
}
