package config

import "testing"

func TestSectionHeight(t *testing.T) {
	tests := []struct {
		name       string
		cardHeight float64
		want       float64
	}{
		{"empty row", 0, SectionPadding*2 + SectionHeadingHeight + DotSize*4},
		{"testimonial cards", 320, SectionPadding*2 + SectionHeadingHeight + 320 + DotSize*4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SectionHeight(tt.cardHeight); got != tt.want {
				t.Errorf("SectionHeight(%v) = %v, want %v", tt.cardHeight, got, tt.want)
			}
		})
	}
}

func TestCardTop(t *testing.T) {
	// 卡片行紧跟在标题下方
	if got, want := CardTop(1000), 1000+SectionPadding+SectionHeadingHeight; got != want {
		t.Errorf("CardTop(1000) = %v, want %v", got, want)
	}
	if CardTop(0)+320 >= SectionHeight(320) {
		t.Error("card row must fit inside its section")
	}
}
