package render

import (
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measurer reports the rendered extent of text at a candidate font size.
// The fitting functions are written against this interface so tests can
// use a fixed-advance measurer instead of real glyph metrics.
type Measurer interface {
	Measure(text string, size float64) (w, h float64)
}

type fontMeasurer struct {
	fnt *truetype.Font
}

func (m fontMeasurer) Measure(text string, size float64) (float64, float64) {
	face := newFace(m.fnt, size)
	adv := font.MeasureString(face, text)
	met := face.Metrics()
	return fixedToFloat(adv), fixedToFloat(met.Ascent + met.Descent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v.Ceil())
}

// FitFontSize finds the largest font size, decrementing from start, at
// which text fits within maxW x maxH. If no size down to floor fits, the
// floor wins; the search never fails. Re-running with the same inputs
// yields the same size, and growing the box never shrinks the result.
func FitFontSize(m Measurer, text string, maxW, maxH, start, floor float64) float64 {
	if floor < 1 {
		floor = 1
	}
	if start < floor {
		start = floor
	}
	for size := start; size > floor; size-- {
		w, h := m.Measure(text, size)
		if w <= maxW && h <= maxH {
			return size
		}
	}
	return floor
}

// WrapWords breaks text into lines no wider than maxW using greedy
// word-wrap. A single word wider than maxW stands alone on its own line
// rather than being hyphenated. Whitespace is normalized: joining the
// returned lines with single spaces reproduces strings.Fields(text)
// joined the same way.
func WrapWords(m Measurer, text string, size, maxW float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, 4)
	cur := words[0]
	for _, w := range words[1:] {
		cand := cur + " " + w
		if cw, _ := m.Measure(cand, size); cw <= maxW {
			cur = cand
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	return append(lines, cur)
}
