package cards

import (
	"fmt"
	"strings"
)

// Style selects the visual theme of a card: palette, texture and blend.
type Style string

const (
	StyleModern  Style = "modern"
	StyleClassic Style = "classic"
	StyleVintage Style = "vintage"
	StylePremium Style = "premium"
	StyleRookie  Style = "rookie"
)

// AllStyles returns every known style in a stable order.
func AllStyles() []Style {
	return []Style{StyleModern, StyleClassic, StyleVintage, StylePremium, StyleRookie}
}

// ParseStyle converts a user-supplied string into a Style.
// An empty string maps to the default modern style.
func ParseStyle(s string) (Style, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StyleModern, nil
	}
	for _, st := range AllStyles() {
		if Style(s) == st {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown style %q", s)
}

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	for _, st := range AllStyles() {
		if s == st {
			return true
		}
	}
	return false
}

// Player holds everything one render needs. It is passed by value into a
// render and never mutated, so concurrent renders over the same data are
// safe without locks.
type Player struct {
	Name       string
	Position   string
	Team       string
	CardNumber string
	SetName    string
	Year       string
	Bio        string

	// CustomStats, when non-empty, overrides the generated stat lines.
	// One "Label: Value" pair per line.
	CustomStats string

	Photo  ImageSource
	Emblem ImageSource

	Style Style
}

// ValidationError identifies the input field that failed pre-render checks.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid player data: %s: %s", e.Field, e.Reason)
}

// Validate rejects unusable input before any drawing begins. A Player that
// passes Validate can always be rendered; later image failures only
// degrade the output.
func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Photo == nil {
		return &ValidationError{Field: "photo", Reason: "image source is required"}
	}
	if p.Emblem == nil {
		return &ValidationError{Field: "emblem", Reason: "image source is required"}
	}
	if p.Style != "" && !p.Style.Valid() {
		return &ValidationError{Field: "style", Reason: fmt.Sprintf("unknown style %q", string(p.Style))}
	}
	return nil
}

// EffectiveStyle returns the player's style, defaulting to modern.
func (p Player) EffectiveStyle() Style {
	if p.Style == "" {
		return StyleModern
	}
	return p.Style
}

// Identity returns a short human-readable card identity string, e.g.
// "Alex Johnson #12 (2024 Prime Series)". Empty fields are elided.
func (p Player) Identity() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(p.Name))
	if p.CardNumber != "" {
		b.WriteString(" #")
		b.WriteString(p.CardNumber)
	}
	inner := strings.TrimSpace(strings.TrimSpace(p.Year) + " " + strings.TrimSpace(p.SetName))
	if inner != "" {
		b.WriteString(" (")
		b.WriteString(inner)
		b.WriteString(")")
	}
	return b.String()
}

// Result is the terminal output of one render: both faces encoded as PNG
// plus the stats text block. The caller owns it; the engine keeps nothing.
type Result struct {
	FrontPNG  []byte
	BackPNG   []byte
	StatsText string
}
