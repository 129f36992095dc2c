package components

import (
	"math"
	"testing"
)

func TestDefaultHeadingTransform(t *testing.T) {
	tr := DefaultHeadingTransform()

	tests := []struct {
		progress    float64
		wantOpacity float64
		wantOffset  float64
	}{
		{0, 0, 50},
		{0.1, 0.5, 25},
		{0.5, 1, 0},
		{0.9, 0.5, -25},
		{1, 0, -50},
	}
	for _, tt := range tests {
		if got := tr.OpacityFrames.At(tt.progress); math.Abs(got-tt.wantOpacity) > 1e-9 {
			t.Errorf("opacity at %v = %v, want %v", tt.progress, got, tt.wantOpacity)
		}
		if got := tr.OffsetFrames.At(tt.progress); math.Abs(got-tt.wantOffset) > 1e-9 {
			t.Errorf("offset at %v = %v, want %v", tt.progress, got, tt.wantOffset)
		}
	}
}

func TestNewHeadingTransform(t *testing.T) {
	tr := NewHeadingTransform(100)
	if got := tr.OffsetFrames.At(0); got != 100 {
		t.Errorf("offset at 0 = %v, want 100", got)
	}
	if got := tr.OffsetFrames.At(1); got != -100 {
		t.Errorf("offset at 1 = %v, want -100", got)
	}
	if got := tr.OpacityFrames.At(0.5); got != 1 {
		t.Errorf("opacity at 0.5 = %v, want 1", got)
	}
}

func TestSectionComponent_Bottom(t *testing.T) {
	s := &SectionComponent{Top: 720, Height: 500}
	if s.Bottom() != 1220 {
		t.Errorf("Bottom() = %v, want 1220", s.Bottom())
	}
}

func TestCarouselComponent_ViewportWidth(t *testing.T) {
	c := &CarouselComponent{Width: 1279.6}
	if c.ViewportWidth() != 1279 {
		t.Errorf("ViewportWidth() = %d, want 1279", c.ViewportWidth())
	}
}
