package systems

import (
	"testing"

	"github.com/gonewx/truview/pkg/config"
	"github.com/gonewx/truview/pkg/ecs"
	"github.com/google/go-cmp/cmp"
)

func TestCarouselLayout_Dots(t *testing.T) {
	l := carouselLayout{X: 0, Y: 0, W: 1280, H: 300, DotsY: 312}

	got := l.dots(3, 1)
	// 总宽 8+16+8 + 2*8 = 48，起点 616
	want := []dotRect{
		{X: 616, Y: 312, W: config.DotSize, H: config.DotSize, Index: 0},
		{X: 632, Y: 312, W: config.DotActiveWidth, H: config.DotSize, Index: 1, Active: true},
		{X: 656, Y: 312, W: config.DotSize, H: config.DotSize, Index: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dots() mismatch (-want +got):\n%s", diff)
	}

	if l.dots(0, -1) != nil {
		t.Error("empty carousel should have no dots")
	}
	if idx := l.dotAt(3, 1, 640, 316); idx != 1 {
		t.Errorf("dotAt(640, 316) = %d, want 1", idx)
	}
	if idx := l.dotAt(3, 1, 640, 200); idx != -1 {
		t.Errorf("dotAt(640, 200) = %d, want -1", idx)
	}
}

func TestCarouselLayout_FollowsScroll(t *testing.T) {
	em := ecs.NewEntityManager()
	id, c := newCarouselEntity(t, em, 3, nil)
	section := sectionOf(t, em, id)
	section.Top = 1000
	c.TopInset = 200

	l := layoutCarousel(c, section, 900)
	if l.Y != 300 {
		t.Errorf("Y = %v, want 300", l.Y)
	}
	if l.DotsY != 300+testCardHeight+config.DotSize*1.5 {
		t.Errorf("DotsY = %v, want below the cards", l.DotsY)
	}

	c.DotsOverlay = true
	l = layoutCarousel(c, section, 900)
	if l.DotsY >= l.Y+l.H {
		t.Errorf("overlay dots at %v should sit inside the card row ending at %v", l.DotsY, l.Y+l.H)
	}
}

func TestCarouselLayout_HitTesting(t *testing.T) {
	em := ecs.NewEntityManager()
	id, c := newCarouselEntity(t, em, 5, nil)
	l := layoutCarousel(c, sectionOf(t, em, id), 0)
	frame := c.Engine.Frame()

	tests := []struct {
		name      string
		x, y      float64
		wantCard  int
		wantArrow int
	}{
		{"active card", 640, 150, 0, 0},
		{"next card", 1000, 150, 1, 0},
		{"gap between cards", 870, 150, -1, 0},
		{"left arrow zone", 10, 150, -1, -1},
		{"right arrow zone", 1270, 150, 1, 1},
		{"below cards", 640, 310, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.cardAt(frame, tt.x, tt.y); got != tt.wantCard {
				t.Errorf("cardAt = %d, want %d", got, tt.wantCard)
			}
			if got := l.arrowAt(tt.x, tt.y); got != tt.wantArrow {
				t.Errorf("arrowAt = %d, want %d", got, tt.wantArrow)
			}
		})
	}
}
