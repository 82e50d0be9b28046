// Package stats synthesizes the season-stats block printed on a card
// back. Values are randomized within plausible ranges; the random source
// is injectable so tests can pin the output.
package stats

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/youruser/cardforge/internal/cards"
)

// Line is one labeled stat value.
type Line struct {
	Label string
	Value string
}

// Sheet is the stats content of one card: the stat lines plus the bio.
type Sheet struct {
	Lines []Line
	Bio   string
}

// Text renders the sheet in the fixed line-oriented exchange format: one
// "Label: Value" per line, a "---" separator, then the free-text bio.
func (s Sheet) Text() string {
	var b strings.Builder
	for _, ln := range s.Lines {
		b.WriteString(ln.Label)
		b.WriteString(": ")
		b.WriteString(ln.Value)
		b.WriteString("\n")
	}
	if s.Bio != "" {
		b.WriteString("---\n")
		b.WriteString(s.Bio)
		b.WriteString("\n")
	}
	return b.String()
}

// Generator produces Sheets. Not safe for concurrent use; give each
// render its own.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. A nil source falls back to a time seed.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(src)}
}

// Sheet builds the stats for one player. Custom stat lines, when present,
// replace the generated ones; the bio falls back to a generated sentence
// so the block's bio section is never empty.
func (g *Generator) Sheet(p cards.Player) Sheet {
	s := Sheet{Bio: bioFor(p)}
	if custom := parseCustom(p.CustomStats); len(custom) > 0 {
		s.Lines = custom
		return s
	}
	s.Lines = []Line{
		{Label: "Games", Value: strconv.Itoa(g.intIn(100, 160))},
		{Label: "Batting Average", Value: average(g.floatIn(0.200, 0.500))},
		{Label: "Home Runs", Value: strconv.Itoa(g.intIn(2, 9))},
		{Label: "RBIs", Value: strconv.Itoa(g.intIn(20, 90))},
		{Label: "Stolen Bases", Value: strconv.Itoa(g.intIn(5, 40))},
	}
	return s
}

func (g *Generator) intIn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) floatIn(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// average formats a batting average baseball-style, e.g. ".342".
func average(v float64) string {
	return strings.TrimPrefix(fmt.Sprintf("%.3f", v), "0")
}

func bioFor(p cards.Player) string {
	if bio := strings.TrimSpace(p.Bio); bio != "" {
		return bio
	}
	name := strings.TrimSpace(p.Name)
	switch {
	case p.Position != "" && p.Team != "":
		return fmt.Sprintf("%s holds down %s for %s with steady at-bats and a dependable glove.", name, p.Position, p.Team)
	case p.Position != "":
		return fmt.Sprintf("%s holds down %s with steady at-bats and a dependable glove.", name, p.Position)
	case p.Team != "":
		return fmt.Sprintf("%s brings steady at-bats and a dependable glove to %s.", name, p.Team)
	}
	return fmt.Sprintf("%s brings steady at-bats and a dependable glove to every series.", name)
}

// parseCustom reads "Label: Value" lines; malformed lines are skipped.
func parseCustom(text string) []Line {
	var out []Line
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		label, value, ok := strings.Cut(raw, ":")
		if !ok {
			continue
		}
		label = strings.TrimSpace(label)
		value = strings.TrimSpace(value)
		if label == "" || value == "" {
			continue
		}
		out = append(out, Line{Label: label, Value: value})
	}
	return out
}
