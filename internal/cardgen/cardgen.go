// Package cardgen is the orchestrator: one call renders both faces of a
// card, synthesizes the stats block, and returns the encoded result.
package cardgen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/render"
	"github.com/youruser/cardforge/internal/stats"
)

type config struct {
	renderer *render.Renderer
	statsSrc rand.Source
}

// Option configures a generation call.
type Option func(*config)

// WithRenderer reuses an existing renderer instead of building a default
// one per call. Renderers are stateless and safe to share.
func WithRenderer(r *render.Renderer) Option {
	return func(c *config) { c.renderer = r }
}

// WithStatsSource pins the stats random source, for deterministic output.
func WithStatsSource(src rand.Source) Option {
	return func(c *config) { c.statsSrc = src }
}

// Generate renders one card. Invalid input is rejected before any drawing
// with a field-identifying error; image failures inside layers degrade
// visually instead of failing; everything else that goes wrong surfaces as
// a single error for the whole card.
func Generate(ctx context.Context, p cards.Player, opts ...Option) (*cards.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	r := cfg.renderer
	if r == nil {
		var err error
		if r, err = render.New(); err != nil {
			return nil, err
		}
	}

	sheet := stats.New(cfg.statsSrc).Sheet(p)

	front, err := r.RenderFront(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("render front: %w", err)
	}
	back, err := r.RenderBack(ctx, p, sheet)
	if err != nil {
		return nil, fmt.Errorf("render back: %w", err)
	}

	frontPNG, err := encodePNG(front)
	if err != nil {
		return nil, fmt.Errorf("encode front: %w", err)
	}
	backPNG, err := encodePNG(back)
	if err != nil {
		return nil, fmt.Errorf("encode back: %w", err)
	}

	return &cards.Result{
		FrontPNG:  frontPNG,
		BackPNG:   backPNG,
		StatsText: sheet.Text(),
	}, nil
}

// Variation is the outcome of rendering one style of a card.
type Variation struct {
	Style  cards.Style
	Result *cards.Result
	Err    error
}

// GenerateVariations renders one card per distinct requested style,
// concurrently. Duplicate styles are collapsed keeping the first
// occurrence. Each variation succeeds or fails on its own; a bad
// variation never blocks its siblings.
//
// A pinned stats source is not handed to the goroutines directly:
// rand.Source values are not safe for concurrent use, so each variation
// gets its own source, seeded serially from the pinned one before any
// goroutine starts. Same seed in, same set of sheets out.
func GenerateVariations(ctx context.Context, p cards.Player, styles []cards.Style, opts ...Option) ([]Variation, error) {
	distinct := dedupeStyles(styles)
	if len(distinct) == 0 {
		return nil, &cards.ValidationError{Field: "styles", Reason: "at least one style is required"}
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	var seeds []int64
	if cfg.statsSrc != nil {
		seeder := rand.New(cfg.statsSrc)
		seeds = make([]int64, len(distinct))
		for i := range seeds {
			seeds[i] = seeder.Int63()
		}
	}

	out := make([]Variation, len(distinct))
	var g errgroup.Group
	for i, s := range distinct {
		i, s := i, s
		g.Go(func() error {
			v := p // each variation owns its copy of the player data
			v.Style = s
			vOpts := opts
			if seeds != nil {
				// Later options win, so this overrides the shared source.
				vOpts = append(append([]Option{}, opts...), WithStatsSource(rand.NewSource(seeds[i])))
			}
			res, err := Generate(ctx, v, vOpts...)
			out[i] = Variation{Style: s, Result: res, Err: err}
			return nil // errors stay per-variation
		})
	}
	g.Wait()
	return out, nil
}

func dedupeStyles(styles []cards.Style) []cards.Style {
	seen := make(map[cards.Style]bool, len(styles))
	out := make([]cards.Style, 0, len(styles))
	for _, s := range styles {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
