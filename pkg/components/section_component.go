package components

import "image/color"

// SectionComponent 页面区段
// 纵向坐标为页面坐标（相对页面顶部），与滚动位置无关
type SectionComponent struct {
	Name     string
	Title    string
	Subtitle string

	Top    float64
	Height float64

	// Background 区段背景色
	Background color.RGBA

	// InView 可见比例达到阈值
	InView bool
	// SeenOnce 是否至少进入过一次视口
	SeenOnce bool
	// Progress 区段滚动进度：区段顶部到达视口底部为 0，区段底部离开视口顶部为 1
	Progress float64

	// OnFirstView 第一次进入视口时调用一次（可选）
	OnFirstView func()
}

// Bottom 区段底部的页面坐标
func (s *SectionComponent) Bottom() float64 {
	return s.Top + s.Height
}
