package render

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Embedded Go fonts, parsed once. Using embedded faces keeps renders free
// of filesystem lookups and identical across machines.
var (
	fontRegular = mustParseFont(goregular.TTF)
	fontBold    = mustParseFont(gobold.TTF)
	fontItalic  = mustParseFont(goitalic.TTF)
)

func mustParseFont(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic("render: embedded font failed to parse: " + err.Error())
	}
	return f
}

// newFace creates a face at the given pixel size. Faces are cheap to
// build, so each drawing site makes its own instead of sharing mutable
// face state between renders.
func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
