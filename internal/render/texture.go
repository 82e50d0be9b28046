package render

import (
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"io/fs"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/youruser/cardforge/internal/cards"
)

// TextureSource supplies the background texture for a style. A failed
// lookup is never fatal: the background layer falls back to its gradient.
type TextureSource interface {
	Texture(ctx context.Context, s cards.Style) (image.Image, error)
}

type dirTextures struct {
	fsys fs.FS
}

// DirTextures looks up textures as <style>.png (then <style>.jpg) in the
// given filesystem.
func DirTextures(fsys fs.FS) TextureSource {
	return dirTextures{fsys: fsys}
}

func (d dirTextures) Texture(ctx context.Context, s cards.Style) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, name := range []string{string(s) + ".png", string(s) + ".jpg"} {
		f, err := d.fsys.Open(name)
		if err != nil {
			continue
		}
		img, err := imaging.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode texture %s: %w", name, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("no texture asset for style %q", s)
}

type grainTextures struct {
	size int
}

// GrainTextures generates a deterministic paper-grain texture per style,
// so the default renderer needs no binary assets and identical inputs
// keep producing identical cards.
func GrainTextures() TextureSource {
	return grainTextures{size: 256}
}

func (g grainTextures) Texture(ctx context.Context, s cards.Style) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(styleSeed(s)))
	img := image.NewNRGBA(image.Rect(0, 0, g.size, g.size))
	for y := 0; y < g.size; y++ {
		// A faint horizontal band every few rows reads as paper fiber.
		band := 0
		if y%7 == 0 {
			band = -12
		}
		for x := 0; x < g.size; x++ {
			v := 112 + band + rng.Intn(64)
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(v), G: uint8(v), B: uint8(v), A: 255})
		}
	}
	return img, nil
}

func styleSeed(s cards.Style) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
