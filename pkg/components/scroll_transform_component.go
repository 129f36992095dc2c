package components

import "github.com/gonewx/truview/pkg/carousel"

// ScrollTransformComponent 随区段滚动进度变化的标题透明度和位移
type ScrollTransformComponent struct {
	OpacityFrames carousel.Keyframes
	OffsetFrames  carousel.Keyframes

	// 由 SectionTransformSystem 每帧写入
	Opacity float64
	OffsetY float64
}

// DefaultHeadingTransform 区段标题的默认映射：进入时淡入上移，离开时淡出继续上移
func DefaultHeadingTransform() *ScrollTransformComponent {
	return NewHeadingTransform(50)
}

// NewHeadingTransform 与默认映射相同，位移幅度为 travel 像素
func NewHeadingTransform(travel float64) *ScrollTransformComponent {
	in := []float64{0, 0.2, 0.8, 1}
	return &ScrollTransformComponent{
		OpacityFrames: carousel.Keyframes{In: in, Out: []float64{0, 1, 1, 0}},
		OffsetFrames:  carousel.Keyframes{In: in, Out: []float64{travel, 0, 0, -travel}},
	}
}
