package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/layout"
	"github.com/youruser/cardforge/internal/style"
)

const (
	panelRadius   = 18.0
	panelStroke   = 3.0
	panelPad      = 6.0
	infoTextPad   = 10.0
	nameHeightCut = 0.75 // name may use this share of the info box height
	minNameSize   = 14.0
	positionSize  = 22.0
	numberSize    = 18.0
)

var panelFill = color.NRGBA{R: 255, G: 255, B: 255, A: 235}

type frontLayer struct {
	name  string
	paint func(ctx context.Context, dc *gg.Context, p cards.Player, th style.Theme, l layout.Layout)
}

// RenderFront paints the seven front-face layers in their fixed order.
// Individual layers degrade on bad image data; the only errors returned
// are context cancellation between layers.
func (r *Renderer) RenderFront(ctx context.Context, p cards.Player) (image.Image, error) {
	th := style.For(p.EffectiveStyle())
	l := layout.Compute(r.dims)
	dc := gg.NewContext(r.dims.Width, r.dims.Height)

	layers := []frontLayer{
		{"background", r.paintBackground},
		{"image-panel", r.paintImagePanel},
		{"info-panel", r.paintInfoPanel},
		{"emblem-panel", r.paintEmblemPanel},
		{"photo", r.paintPhoto},
		{"emblem", r.paintEmblem},
		{"info-text", r.paintInfoText},
	}
	for _, layer := range layers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("front face aborted at %s: %w", layer.name, err)
		}
		r.notify("front", layer.name)
		layer.paint(ctx, dc, p, th, l)
	}
	return dc.Image(), nil
}

// paintBackground fills the base color and composites the style texture
// over it. A texture failure degrades to the theme gradient and never
// aborts the render.
func (r *Renderer) paintBackground(ctx context.Context, dc *gg.Context, p cards.Player, th style.Theme, l layout.Layout) {
	dc.SetColor(th.Base)
	dc.Clear()

	tex, err := r.textures.Texture(ctx, p.EffectiveStyle())
	if err != nil {
		fillLinearGradient(dc, r.dims.Bounds(), th.GradientTop, th.GradientBottom)
		return
	}
	stretched := imaging.Resize(tex, r.dims.Width, r.dims.Height, imaging.Lanczos)
	if rgba, ok := dc.Image().(*image.RGBA); ok {
		applyTexture(rgba, stretched, th.Blend, th.TextureOpacity)
	}
}

func (r *Renderer) paintImagePanel(_ context.Context, dc *gg.Context, _ cards.Player, th style.Theme, l layout.Layout) {
	drawPanel(dc, l.Image, panelRadius, panelFill, style.Darken(th.Base, 0.5), panelStroke)
}

// paintInfoPanel draws the text panel plus a short top-aligned shadow
// gradient clipped to the panel path, which reads as an inner edge.
func (r *Renderer) paintInfoPanel(_ context.Context, dc *gg.Context, _ cards.Player, th style.Theme, l layout.Layout) {
	drawPanel(dc, l.Info, panelRadius, panelFill, style.Darken(th.Base, 0.5), panelStroke)

	clipRounded(dc, l.Info, panelRadius)
	shadow := layout.Box{X: l.Info.X, Y: l.Info.Y, W: l.Info.W, H: 18}
	fillLinearGradient(dc, shadow,
		color.NRGBA{A: 70},
		color.NRGBA{A: 0})
	dc.ResetClip()
}

func (r *Renderer) paintEmblemPanel(_ context.Context, dc *gg.Context, _ cards.Player, th style.Theme, l layout.Layout) {
	radius := math.Min(l.Emblem.W, l.Emblem.H) / 2
	drawCirclePanel(dc, l.Emblem.CenterX(), l.Emblem.CenterY(), radius,
		color.White, th.Accent, panelStroke)
}

// paintPhoto cover-fits the player photo into the image panel. Any source
// failure degrades to a labeled placeholder.
func (r *Renderer) paintPhoto(ctx context.Context, dc *gg.Context, p cards.Player, th style.Theme, l layout.Layout) {
	inner := l.Image.Inset(panelPad)

	img, err := p.Photo.Image(ctx)
	if err != nil || img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		r.paintPhotoPlaceholder(dc, th, inner)
		return
	}

	b := img.Bounds()
	draw := layout.CoverFit(b.Dx(), b.Dy(), inner)
	resized := imaging.Resize(img, roundInt(draw.W), roundInt(draw.H), imaging.Lanczos)

	clipRounded(dc, inner, panelRadius-panelPad/2)
	dc.DrawImage(resized, roundInt(draw.X), roundInt(draw.Y))
	dc.ResetClip()
}

func (r *Renderer) paintPhotoPlaceholder(dc *gg.Context, th style.Theme, inner layout.Box) {
	dc.DrawRoundedRectangle(inner.X, inner.Y, inner.W, inner.H, panelRadius-panelPad/2)
	dc.SetColor(color.NRGBA{R: 214, G: 214, B: 218, A: 255})
	dc.Fill()

	dc.SetFontFace(newFace(fontItalic, 30))
	dc.SetColor(th.Secondary)
	dc.DrawStringAnchored("Photo Unavailable", inner.CenterX(), inner.CenterY(), 0.5, 0.5)
}

// paintEmblem contain-fits the team emblem inside the circle panel. The
// emblem is decorative: any failure is skipped silently.
func (r *Renderer) paintEmblem(ctx context.Context, dc *gg.Context, p cards.Player, _ style.Theme, l layout.Layout) {
	img, err := p.Emblem.Image(ctx)
	if err != nil {
		return
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}

	diameter := math.Min(l.Emblem.W, l.Emblem.H) - 2*panelPad
	if diameter <= 0 {
		return
	}
	cx, cy := l.Emblem.CenterX(), l.Emblem.CenterY()
	draw := layout.ContainFit(b.Dx(), b.Dy(), cx, cy, diameter)
	resized := imaging.Resize(img, roundInt(draw.W), roundInt(draw.H), imaging.Lanczos)

	clipCircle(dc, cx, cy, diameter/2)
	dc.DrawImage(resized, roundInt(draw.X), roundInt(draw.Y))
	dc.ResetClip()
}

// paintInfoText renders the name shrink-to-fit, then stacks the secondary
// lines below it, each drawn only if it still fits the info box.
func (r *Renderer) paintInfoText(_ context.Context, dc *gg.Context, p cards.Player, th style.Theme, l layout.Layout) {
	inner := l.Info.Inset(infoTextPad)
	nameMaxH := inner.H * nameHeightCut

	bold := fontMeasurer{fnt: fontBold}
	size := FitFontSize(bold, p.Name, inner.W, nameMaxH, nameMaxH, minNameSize)
	_, nameH := bold.Measure(p.Name, size)

	dc.SetFontFace(newFace(fontBold, size))
	dc.SetColor(th.Text)
	dc.DrawStringAnchored(p.Name, inner.X, inner.Y+nameH/2, 0, 0.5)
	cursor := inner.Y + nameH

	regular := fontMeasurer{fnt: fontRegular}
	dc.SetColor(th.Secondary)
	for _, line := range secondaryLines(p) {
		_, h := regular.Measure(line.text, line.size)
		if cursor+h > inner.Bottom() {
			break
		}
		dc.SetFontFace(newFace(fontRegular, line.size))
		dc.DrawStringAnchored(line.text, inner.X, cursor+h/2, 0, 0.5)
		cursor += h + 2
	}
}

type infoLine struct {
	text string
	size float64
}

func secondaryLines(p cards.Player) []infoLine {
	var lines []infoLine
	if p.Position != "" {
		lines = append(lines, infoLine{text: p.Position, size: positionSize})
	}
	num := ""
	if p.CardNumber != "" {
		num = "#" + p.CardNumber
	}
	if p.Year != "" {
		if num != "" {
			num += " / "
		}
		num += p.Year
	}
	if num != "" {
		lines = append(lines, infoLine{text: num, size: numberSize})
	}
	return lines
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
