package components

// HoverComponent 悬停状态
// 用于轮播悬停时暂停自动播放，以及激活卡片的高亮渐变
type HoverComponent struct {
	// IsHovered 指针当前是否在区域内
	IsHovered bool

	// Intensity 高亮强度（0.0 - 1.0），悬停时渐入、离开时渐出
	Intensity float64
}
