// Package render paints card faces. A Renderer is stateless between
// renders: each call owns its drawing surface, so concurrent renders never
// interfere.
package render

import (
	"github.com/youruser/cardforge/internal/layout"
)

// Observer receives layer-by-layer progress for one render. It replaces
// the ambient debug hooks of earlier card tooling; when nil, rendering is
// silent.
type Observer func(face, layer string)

// Renderer paints front and back card faces.
type Renderer struct {
	dims     layout.CardDimensions
	textures TextureSource
	observe  Observer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDimensions overrides the standard 750x1050 card dimensions.
func WithDimensions(d layout.CardDimensions) Option {
	return func(r *Renderer) { r.dims = d }
}

// WithTextures overrides the texture source.
func WithTextures(ts TextureSource) Option {
	return func(r *Renderer) { r.textures = ts }
}

// WithObserver installs a progress callback.
func WithObserver(fn Observer) Option {
	return func(r *Renderer) { r.observe = fn }
}

// New builds a Renderer. Invalid dimensions are the one fatal setup error:
// they would make every layout box degenerate.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		dims:     layout.StandardDimensions(),
		textures: GrainTextures(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.dims.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Dimensions returns the card dimensions this renderer paints at.
func (r *Renderer) Dimensions() layout.CardDimensions {
	return r.dims
}

func (r *Renderer) notify(face, layer string) {
	if r.observe != nil {
		r.observe(face, layer)
	}
}
