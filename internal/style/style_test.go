package style

import (
	"testing"

	"github.com/youruser/cardforge/internal/cards"
)

func TestEveryStyleHasTheme(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range cards.AllStyles() {
		th := For(s)
		if th.TextureOpacity <= 0 || th.TextureOpacity > 1 {
			t.Errorf("%s: texture opacity %f out of (0,1]", s, th.TextureOpacity)
		}
		key := th.Base.Hex() + th.Accent.Hex()
		if seen[key] {
			t.Errorf("%s: palette duplicates another style", s)
		}
		seen[key] = true
	}
}

func TestBlendAssignments(t *testing.T) {
	tests := []struct {
		style   cards.Style
		blend   BlendMode
		opacity float64
	}{
		{cards.StyleModern, BlendMultiply, 0.3},
		{cards.StyleVintage, BlendOverlay, 0.6},
		{cards.StyleClassic, BlendSoftLight, 0.4},
	}
	for _, tt := range tests {
		th := For(tt.style)
		if th.Blend != tt.blend || th.TextureOpacity != tt.opacity {
			t.Errorf("%s: got %v@%.2f, want %v@%.2f",
				tt.style, th.Blend, th.TextureOpacity, tt.blend, tt.opacity)
		}
	}
}

func TestUnknownStyleFallsBackToModern(t *testing.T) {
	if For(cards.Style("nope")) != For(cards.StyleModern) {
		t.Fatal("unknown style must resolve to the modern theme")
	}
}

func TestLightenDarken(t *testing.T) {
	c := mustHex("#336699")
	lighter := Lighten(c, 0.5)
	darker := Darken(c, 0.5)
	_, _, ll := lighter.Hsl()
	_, _, cl := c.Hsl()
	_, _, dl := darker.Hsl()
	if !(dl < cl && cl < ll) {
		t.Fatalf("lightness ordering violated: %f, %f, %f", dl, cl, ll)
	}
}
