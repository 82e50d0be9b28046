package cards

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ImageSource supplies a decoded raster on demand. Resolving a source is
// the only point where a render can block, so every implementation honors
// the caller's context before doing work. A source that returns an error
// degrades the affected layer; it never fails the card.
type ImageSource interface {
	Image(ctx context.Context) (image.Image, error)
}

type staticSource struct {
	img image.Image
}

func (s staticSource) Image(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.img == nil {
		return nil, fmt.Errorf("no image available")
	}
	return s.img, nil
}

// StaticImage wraps an already-decoded image as an ImageSource.
func StaticImage(img image.Image) ImageSource {
	return staticSource{img: img}
}

type bytesSource struct {
	data []byte
}

func (s bytesSource) Image(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(s.data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// ImageBytes returns a source that decodes the given encoded image data
// lazily, at render time.
func ImageBytes(data []byte) ImageSource {
	return bytesSource{data: data}
}

type fileSource struct {
	path string
}

func (s fileSource) Image(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := imaging.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	return img, nil
}

// ImageFile returns a source that opens and decodes the file at render
// time. A missing or corrupt file degrades the layer instead of failing
// the card.
func ImageFile(path string) ImageSource {
	return fileSource{path: path}
}
