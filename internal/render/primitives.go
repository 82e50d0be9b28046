package render

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/youruser/cardforge/internal/layout"
)

// drawPanel fills and strokes a rounded rectangle using one path for both
// operations, so the border sits exactly on the fill edge with no seam.
func drawPanel(dc *gg.Context, b layout.Box, radius float64, fill, stroke color.Color, lineWidth float64) {
	dc.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, radius)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(stroke)
	dc.SetLineWidth(lineWidth)
	dc.Stroke()
}

// drawCirclePanel fills and strokes a circle, same single-path rule as
// drawPanel.
func drawCirclePanel(dc *gg.Context, cx, cy, r float64, fill, stroke color.Color, lineWidth float64) {
	dc.DrawCircle(cx, cy, r)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(stroke)
	dc.SetLineWidth(lineWidth)
	dc.Stroke()
}

// clipRounded establishes a rounded-rectangle clip region. Callers pair it
// with dc.ResetClip.
func clipRounded(dc *gg.Context, b layout.Box, radius float64) {
	dc.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, radius)
	dc.Clip()
}

// clipCircle establishes a circular clip region. Callers pair it with
// dc.ResetClip.
func clipCircle(dc *gg.Context, cx, cy, r float64) {
	dc.DrawCircle(cx, cy, r)
	dc.Clip()
}

// fillLinearGradient fills b with a vertical two-stop gradient.
func fillLinearGradient(dc *gg.Context, b layout.Box, top, bottom color.Color) {
	grad := gg.NewLinearGradient(b.X, b.Y, b.X, b.Bottom())
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	dc.Fill()
}
