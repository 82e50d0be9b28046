package render

import (
	"context"
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/layout"
	"github.com/youruser/cardforge/internal/stats"
	"github.com/youruser/cardforge/internal/style"
)

const (
	backPad        = 14.0
	backHeaderMax  = 54.0
	backBodySize   = 21.0
	backStatsTitle = 28.0
	maxBioLines    = 6
	qrSizePx       = 96
)

// RenderBack paints the back face: a fixed vertical stack of header name,
// wrapped bio, stats header and stat lines, advancing a running cursor.
// Content past the available height is dropped silently. A share QR is
// added bottom-right when room remains.
func (r *Renderer) RenderBack(ctx context.Context, p cards.Player, sheet stats.Sheet) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("back face aborted: %w", err)
	}
	th := style.For(p.EffectiveStyle())
	content := r.dims.ContentBox()
	dc := gg.NewContext(r.dims.Width, r.dims.Height)

	r.notify("back", "background")
	dc.SetColor(th.Base)
	dc.Clear()
	fillLinearGradient(dc, r.dims.Bounds(), th.GradientTop, th.GradientBottom)
	drawPanel(dc, content, panelRadius, panelFill, style.Darken(th.Base, 0.5), panelStroke)

	inner := content.Inset(backPad)
	cursor := inner.Y

	r.notify("back", "header")
	bold := fontMeasurer{fnt: fontBold}
	size := FitFontSize(bold, p.Name, inner.W, backHeaderMax, backHeaderMax, minNameSize)
	_, headerH := bold.Measure(p.Name, size)
	dc.SetFontFace(newFace(fontBold, size))
	dc.SetColor(th.Text)
	dc.DrawStringAnchored(p.Name, inner.X, cursor+headerH/2, 0, 0.5)
	cursor += headerH + 4

	dc.SetColor(th.Accent)
	dc.SetLineWidth(2)
	dc.DrawLine(inner.X, cursor, inner.Right(), cursor)
	dc.Stroke()
	cursor += 12

	regular := fontMeasurer{fnt: fontRegular}

	if sheet.Bio != "" {
		r.notify("back", "bio")
		cursor = r.paintBackLines(dc, th, inner, cursor, regular,
			capLines(WrapWords(regular, sheet.Bio, backBodySize, inner.W), maxBioLines),
			backBodySize)
		cursor += 10
	}

	r.notify("back", "stats")
	_, titleH := bold.Measure("Season Stats", backStatsTitle)
	if cursor+titleH <= inner.Bottom() {
		dc.SetFontFace(newFace(fontBold, backStatsTitle))
		dc.SetColor(th.Text)
		dc.DrawStringAnchored("Season Stats", inner.X, cursor+titleH/2, 0, 0.5)
		cursor += titleH + 6
	}
	statLines := make([]string, 0, len(sheet.Lines))
	for _, ln := range sheet.Lines {
		statLines = append(statLines, ln.Label+": "+ln.Value)
	}
	cursor = r.paintBackLines(dc, th, inner, cursor, regular, statLines, backBodySize)

	r.notify("back", "qr")
	r.paintShareQR(dc, p, inner, cursor)

	return dc.Image(), nil
}

// paintBackLines draws lines downward from cursor, dropping any line that
// would overflow the box. Returns the advanced cursor.
func (r *Renderer) paintBackLines(dc *gg.Context, th style.Theme, box layout.Box, cursor float64, m Measurer, lines []string, size float64) float64 {
	dc.SetFontFace(newFace(fontRegular, size))
	dc.SetColor(th.Secondary)
	for _, line := range lines {
		_, h := m.Measure(line, size)
		if cursor+h > box.Bottom() {
			break
		}
		dc.DrawStringAnchored(line, box.X, cursor+h/2, 0, 0.5)
		cursor += h + 3
	}
	return cursor
}

// paintShareQR places the card-identity QR bottom-right if the stack left
// room for it. Failures and tight layouts skip it, same as the emblem.
func (r *Renderer) paintShareQR(dc *gg.Context, p cards.Player, box layout.Box, cursor float64) {
	x := box.Right() - qrSizePx
	y := box.Bottom() - qrSizePx
	if cursor > y-8 {
		return
	}
	q, err := shareQR(p.Identity(), qrSizePx)
	if err != nil {
		return
	}
	dc.DrawImage(q, roundInt(x), roundInt(y))
}

func capLines(lines []string, max int) []string {
	if len(lines) > max {
		return lines[:max]
	}
	return lines
}
