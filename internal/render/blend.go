package render

import (
	"image"
	"image/color"
	"math"

	"github.com/youruser/cardforge/internal/style"
)

// applyTexture composites tex over dst using the theme's blend mode at the
// given opacity. tex must already be sized to dst's bounds. Neither
// imaging nor gg exposes multiply/overlay/soft-light, so the math runs per
// pixel here, on normalized channel values.
func applyTexture(dst *image.RGBA, tex image.Image, mode style.BlendMode, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	bounds := dst.Bounds()
	texBounds := tex.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		ty := texBounds.Min.Y + (y - bounds.Min.Y)
		if ty >= texBounds.Max.Y {
			break
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			tx := texBounds.Min.X + (x - bounds.Min.X)
			if tx >= texBounds.Max.X {
				break
			}
			base := dst.RGBAAt(x, y)
			top := color.NRGBAModel.Convert(tex.At(tx, ty)).(color.NRGBA)

			// Effective weight of the blended result at this pixel.
			a := opacity * float64(top.A) / 255
			if a == 0 {
				continue
			}

			br := float64(base.R) / 255
			bg := float64(base.G) / 255
			bb := float64(base.B) / 255
			tr := float64(top.R) / 255
			tg := float64(top.G) / 255
			tb := float64(top.B) / 255

			rr := blendChannel(mode, br, tr)
			rg := blendChannel(mode, bg, tg)
			rb := blendChannel(mode, bb, tb)

			dst.SetRGBA(x, y, color.RGBA{
				R: to8(br + (rr-br)*a),
				G: to8(bg + (rg-bg)*a),
				B: to8(bb + (rb-bb)*a),
				A: base.A,
			})
		}
	}
}

// blendChannel implements the W3C compositing formulas for one normalized
// channel, b = backdrop, s = source.
func blendChannel(mode style.BlendMode, b, s float64) float64 {
	switch mode {
	case style.BlendMultiply:
		return b * s
	case style.BlendOverlay:
		if b <= 0.5 {
			return 2 * b * s
		}
		return 1 - 2*(1-b)*(1-s)
	case style.BlendSoftLight:
		if s <= 0.5 {
			return b - (1-2*s)*b*(1-b)
		}
		var d float64
		if b <= 0.25 {
			d = ((16*b-12)*b + 4) * b
		} else {
			d = math.Sqrt(b)
		}
		return b + (2*s-1)*(d-b)
	}
	return b
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
