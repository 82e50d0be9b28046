// Package layout computes the container geometry of a card face. All
// functions are pure: the same dimensions always produce the same boxes,
// so every layer that needs a box (panel fill, photo clip, text fitting)
// agrees exactly.
package layout

import "fmt"

// Standard trading card: 2.5in x 3.5in at 300 DPI.
const (
	DPI            = 300
	CardWidthPx    = 750
	CardHeightPx   = 1050
	safeMarginPx   = 38
	defaultBleedPx = 0
)

// Layout ratios. Image area takes the top of the content box; info and
// emblem share the remaining row, split 75/25 of the width left after a
// gutter of 10% of the content width.
const (
	imageHeightRatio = 0.80
	infoWidthRatio   = 0.75
	emblemWidthRatio = 0.25
	gutterWidthRatio = 0.10
)

// Box is an axis-aligned rectangle in pixel coordinates.
type Box struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the box's right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the box's bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the x coordinate of the box's center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the y coordinate of the box's center.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Inset returns the box shrunk by d on every side.
func (b Box) Inset(d float64) Box {
	return Box{X: b.X + d, Y: b.Y + d, W: b.W - 2*d, H: b.H - 2*d}
}

// Contains reports whether other lies fully inside b, allowing for
// floating-point slack on the edges.
func (b Box) Contains(other Box) bool {
	const eps = 1e-6
	return other.X >= b.X-eps &&
		other.Y >= b.Y-eps &&
		other.Right() <= b.Right()+eps &&
		other.Bottom() <= b.Bottom()+eps
}

// Overlaps reports whether the interiors of b and other intersect.
// Boxes sharing only an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	const eps = 1e-6
	return b.X < other.Right()-eps &&
		other.X < b.Right()-eps &&
		b.Y < other.Bottom()-eps &&
		other.Y < b.Bottom()-eps
}

// CardDimensions fixes the pixel size of a card face and its margins.
// Bleed is the trim allowance at the outer edge; SafeMargin is the inset
// inside the trim that all content must respect.
type CardDimensions struct {
	Width      int
	Height     int
	Bleed      float64
	SafeMargin float64
}

// StandardDimensions returns the fixed 750x1050 card used by downstream
// display and print flows.
func StandardDimensions() CardDimensions {
	return CardDimensions{
		Width:      CardWidthPx,
		Height:     CardHeightPx,
		Bleed:      defaultBleedPx,
		SafeMargin: safeMarginPx,
	}
}

// Validate rejects dimensions whose margins leave no usable content area.
func (d CardDimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("card dimensions %dx%d: sides must be positive", d.Width, d.Height)
	}
	if d.Bleed < 0 || d.SafeMargin < 0 {
		return fmt.Errorf("card margins (bleed %.1f, safe %.1f) must not be negative", d.Bleed, d.SafeMargin)
	}
	inset := 2 * (d.Bleed + d.SafeMargin)
	if inset >= float64(d.Width) || inset >= float64(d.Height) {
		return fmt.Errorf("card margins (bleed %.1f, safe %.1f) leave no usable area in %dx%d",
			d.Bleed, d.SafeMargin, d.Width, d.Height)
	}
	return nil
}

// Bounds returns the full canvas as a Box.
func (d CardDimensions) Bounds() Box {
	return Box{X: 0, Y: 0, W: float64(d.Width), H: float64(d.Height)}
}

// ContentBox returns the safe area all containers must nest inside.
func (d CardDimensions) ContentBox() Box {
	return d.Bounds().Inset(d.Bleed + d.SafeMargin)
}

// Layout is the set of container boxes for one card face.
type Layout struct {
	Content Box // safe-margin inset; everything below nests inside it
	Image   Box // player photo container, top of the content area
	Info    Box // player text container, bottom-left
	Emblem  Box // team emblem container, bottom-right
}

// Compute derives the container boxes for the given dimensions. It has no
// failure mode: callers validate dimensions once up front and the ratios
// are compile-time constants.
func Compute(d CardDimensions) Layout {
	content := d.ContentBox()

	imageH := content.H * imageHeightRatio
	img := Box{X: content.X, Y: content.Y, W: content.W, H: imageH}

	rowY := content.Y + imageH
	rowH := content.H - imageH
	gutter := content.W * gutterWidthRatio
	avail := content.W - gutter

	info := Box{X: content.X, Y: rowY, W: avail * infoWidthRatio, H: rowH}
	emblem := Box{
		X: content.X + info.W + gutter,
		Y: rowY,
		W: avail * emblemWidthRatio,
		H: rowH,
	}

	return Layout{Content: content, Image: img, Info: info, Emblem: emblem}
}
