package layout

import (
	"math"
	"testing"
)

func TestCoverFit(t *testing.T) {
	target := Box{X: 10, Y: 20, W: 200, H: 100}
	tests := []struct {
		name       string
		srcW, srcH int
	}{
		{"wider than box", 400, 100},
		{"taller than box", 100, 400},
		{"square", 300, 300},
		{"matching aspect", 400, 200},
		{"tiny", 3, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draw := CoverFit(tt.srcW, tt.srcH, target)

			// Fully covers the target on both axes.
			const eps = 1e-9
			if draw.X > target.X+eps || draw.Y > target.Y+eps ||
				draw.Right() < target.Right()-eps || draw.Bottom() < target.Bottom()-eps {
				t.Fatalf("draw %+v does not cover target %+v", draw, target)
			}

			// Preserves the source aspect ratio.
			srcAspect := float64(tt.srcW) / float64(tt.srcH)
			drawAspect := draw.W / draw.H
			if math.Abs(srcAspect-drawAspect) > 1e-9 {
				t.Fatalf("aspect %f, want %f", drawAspect, srcAspect)
			}

			// One axis matches the box exactly and the crop is centered.
			if math.Abs(draw.W-target.W) > eps {
				if math.Abs(draw.H-target.H) > eps {
					t.Fatalf("neither axis matches the target: %+v", draw)
				}
				leftCrop := target.X - draw.X
				rightCrop := draw.Right() - target.Right()
				if math.Abs(leftCrop-rightCrop) > eps {
					t.Fatalf("horizontal crop not centered: %f vs %f", leftCrop, rightCrop)
				}
			}
		})
	}
}

func TestCoverFitDegenerateSource(t *testing.T) {
	target := Box{X: 0, Y: 0, W: 50, H: 50}
	if got := CoverFit(0, 10, target); got != target {
		t.Fatalf("zero-width source: got %+v, want target", got)
	}
}

func TestContainFit(t *testing.T) {
	const cx, cy, diameter = 100.0, 80.0, 60.0
	tests := []struct {
		name       string
		srcW, srcH int
	}{
		{"landscape", 200, 100},
		{"portrait", 100, 200},
		{"square", 128, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draw := ContainFit(tt.srcW, tt.srcH, cx, cy, diameter)

			longer := math.Max(draw.W, draw.H)
			shorter := math.Min(draw.W, draw.H)
			if longer != diameter {
				t.Fatalf("longer dimension = %f, want exactly %f", longer, diameter)
			}
			if shorter > diameter {
				t.Fatalf("shorter dimension %f exceeds diameter %f", shorter, diameter)
			}
			if math.Abs(draw.CenterX()-cx) > 1e-9 || math.Abs(draw.CenterY()-cy) > 1e-9 {
				t.Fatalf("draw not centered: %+v", draw)
			}
		})
	}
}
