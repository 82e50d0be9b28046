// Package style maps a card style to its visual theme: palette, gradient
// stops, and how the background texture is composited.
package style

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/youruser/cardforge/internal/cards"
)

// BlendMode names how the background texture is composited over the base
// color.
type BlendMode int

const (
	BlendMultiply BlendMode = iota
	BlendOverlay
	BlendSoftLight
)

func (m BlendMode) String() string {
	switch m {
	case BlendMultiply:
		return "multiply"
	case BlendOverlay:
		return "overlay"
	case BlendSoftLight:
		return "soft-light"
	}
	return "unknown"
}

// Theme is the resolved visual identity of one style.
type Theme struct {
	Base      colorful.Color // background base fill
	Accent    colorful.Color // borders and headers
	Text      colorful.Color // primary text
	Secondary colorful.Color // secondary text

	// Two-stop background gradient, used as the texture fallback and for
	// the back face.
	GradientTop    colorful.Color
	GradientBottom colorful.Color

	Blend          BlendMode
	TextureOpacity float64
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("style: bad hex constant " + s)
	}
	return c
}

// Lighten moves c toward white by t in Lab space.
func Lighten(c colorful.Color, t float64) colorful.Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendLab(white, t).Clamped()
}

// Darken moves c toward black by t in Lab space.
func Darken(c colorful.Color, t float64) colorful.Color {
	return c.BlendLab(colorful.Color{}, t).Clamped()
}

var themes = map[cards.Style]Theme{
	cards.StyleModern: {
		Base:           mustHex("#1b2a4a"),
		Accent:         mustHex("#2ec4b6"),
		Text:           mustHex("#10203b"),
		Secondary:      mustHex("#44597d"),
		GradientTop:    mustHex("#24385f"),
		GradientBottom: mustHex("#101b33"),
		Blend:          BlendMultiply,
		TextureOpacity: 0.3,
	},
	cards.StyleClassic: {
		Base:           mustHex("#f2e8d5"),
		Accent:         mustHex("#7a1f2b"),
		Text:           mustHex("#2d1a1a"),
		Secondary:      mustHex("#6b5a4a"),
		GradientTop:    mustHex("#f7f0e1"),
		GradientBottom: mustHex("#dcc9a6"),
		Blend:          BlendSoftLight,
		TextureOpacity: 0.4,
	},
	cards.StyleVintage: {
		Base:           mustHex("#c8a878"),
		Accent:         mustHex("#5b3a1e"),
		Text:           mustHex("#3a2814"),
		Secondary:      mustHex("#705438"),
		GradientTop:    mustHex("#d6ba8e"),
		GradientBottom: mustHex("#a7855a"),
		Blend:          BlendOverlay,
		TextureOpacity: 0.6,
	},
	cards.StylePremium: {
		Base:           mustHex("#14141a"),
		Accent:         mustHex("#c9a227"),
		Text:           mustHex("#121217"),
		Secondary:      mustHex("#4e4e5c"),
		GradientTop:    mustHex("#23232e"),
		GradientBottom: mustHex("#0b0b10"),
		Blend:          BlendSoftLight,
		TextureOpacity: 0.5,
	},
	cards.StyleRookie: {
		Base:           mustHex("#e8eef6"),
		Accent:         mustHex("#c62828"),
		Text:           mustHex("#1a2733"),
		Secondary:      mustHex("#49617a"),
		GradientTop:    mustHex("#f4f8fd"),
		GradientBottom: mustHex("#cfdded"),
		Blend:          BlendOverlay,
		TextureOpacity: 0.35,
	},
}

// For returns the theme of the given style. Unknown styles resolve to the
// modern theme so rendering never lacks a palette.
func For(s cards.Style) Theme {
	if t, ok := themes[s]; ok {
		return t
	}
	return themes[cards.StyleModern]
}
