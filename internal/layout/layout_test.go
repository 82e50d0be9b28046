package layout

import (
	"math"
	"testing"
)

func TestCardDimensionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		dims    CardDimensions
		wantErr bool
	}{
		{"standard", StandardDimensions(), false},
		{"no margins", CardDimensions{Width: 100, Height: 100}, false},
		{"zero width", CardDimensions{Width: 0, Height: 100}, true},
		{"negative margin", CardDimensions{Width: 100, Height: 100, SafeMargin: -1}, true},
		{"margin eats width", CardDimensions{Width: 100, Height: 400, SafeMargin: 50}, true},
		{"margin eats height", CardDimensions{Width: 400, Height: 100, SafeMargin: 50}, true},
		{"bleed plus margin eats width", CardDimensions{Width: 100, Height: 400, Bleed: 30, SafeMargin: 20}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dims.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStandardDimensions(t *testing.T) {
	d := StandardDimensions()
	if d.Width != 750 || d.Height != 1050 {
		t.Fatalf("standard card must be 750x1050, got %dx%d", d.Width, d.Height)
	}
}

func TestComputeContainmentAndDisjointness(t *testing.T) {
	dims := []CardDimensions{
		StandardDimensions(),
		{Width: 300, Height: 420, SafeMargin: 10},
		{Width: 1500, Height: 2100, Bleed: 37.5, SafeMargin: 75},
		{Width: 750, Height: 1050, SafeMargin: 1},
	}
	for _, d := range dims {
		if err := d.Validate(); err != nil {
			t.Fatalf("dims %+v should be valid: %v", d, err)
		}
		l := Compute(d)

		for name, b := range map[string]Box{"image": l.Image, "info": l.Info, "emblem": l.Emblem} {
			if !l.Content.Contains(b) {
				t.Errorf("dims %+v: %s box %+v escapes content %+v", d, name, b, l.Content)
			}
		}

		siblings := []struct {
			name string
			a, b Box
		}{
			{"image/info", l.Image, l.Info},
			{"image/emblem", l.Image, l.Emblem},
			{"info/emblem", l.Info, l.Emblem},
		}
		for _, s := range siblings {
			if s.a.Overlaps(s.b) {
				t.Errorf("dims %+v: %s overlap: %+v vs %+v", d, s.name, s.a, s.b)
			}
		}
	}
}

func TestComputeImageHeightRatio(t *testing.T) {
	l := Compute(StandardDimensions())
	want := l.Content.H * 0.80
	if math.Abs(l.Image.H-want) > 0.5 {
		t.Fatalf("image height = %.2f, want about %.2f", l.Image.H, want)
	}
}

func TestComputeGutter(t *testing.T) {
	l := Compute(StandardDimensions())
	gutter := l.Emblem.X - l.Info.Right()
	want := l.Content.W * 0.10
	if math.Abs(gutter-want) > 1e-6 {
		t.Fatalf("gutter = %.4f, want %.4f", gutter, want)
	}
	ratio := l.Info.W / l.Emblem.W
	if math.Abs(ratio-3.0) > 1e-6 {
		t.Fatalf("info/emblem width ratio = %.4f, want 3", ratio)
	}
}

func TestComputeDeterministic(t *testing.T) {
	d := StandardDimensions()
	if Compute(d) != Compute(d) {
		t.Fatal("Compute must return identical layouts for identical dimensions")
	}
}
