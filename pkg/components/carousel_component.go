package components

import (
	"github.com/gonewx/truview/pkg/carousel"
	"github.com/gonewx/truview/pkg/content"
)

// CarouselComponent 页面上的一个轮播实例
//
// 引擎本身不知道自己画在哪里；屏幕位置由所在实体的 SectionComponent
// 和这里的 X / Width / CardHeight 共同决定。
type CarouselComponent struct {
	// Variant 配置中的变体名称，如 "testimonials"
	Variant string

	// Engine 轮播引擎
	Engine *carousel.Carousel

	// Cards 每张卡片的文字，数量与引擎的 ItemCount 一致
	Cards []content.Card

	// X / Width 轮播视口在屏幕上的水平范围
	// Width 由 CarouselSystem 随窗口宽度更新，并作为引擎的 ViewportObserver
	X     float64
	Width float64

	// CardHeight 卡片高度（像素）
	CardHeight float64

	// TopInset 卡片行相对区段顶部的纵向偏移
	TopInset float64

	// DotsOverlay 导航圆点叠在卡片底部（首屏），否则画在卡片下方
	DotsOverlay bool

	// Press 当前按下手势，nil 表示没有按在这个轮播上
	Press *PressState
}

// PressState 记录一次按下，用于区分点击和拖拽
type PressState struct {
	StartX, StartY float64
	MaxTravel      float64 // 按下期间离起点的最大水平距离
	Dragging       bool    // 引擎是否接受了 DragStart
}

// ViewportWidth 实现 carousel.ViewportObserver
func (c *CarouselComponent) ViewportWidth() int {
	return int(c.Width)
}
