package systems

import (
	"log"

	"github.com/gonewx/truview/pkg/config"
	"github.com/gonewx/truview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ScrollProvider 页面滚动位置的提供者
// 轮播和区段只通过这个接口读取滚动位置或请求平滑滚动
type ScrollProvider interface {
	ScrollY() float64
	ScrollToTarget(y float64)
}

// WheelInput 滚轮输入接口
// 用于依赖注入，支持测试时 mock
type WheelInput interface {
	Wheel() (float64, float64)
}

// ebitenWheelInput Ebitengine 默认实现
type ebitenWheelInput struct{}

func (e *ebitenWheelInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

var defaultWheelInput WheelInput = &ebitenWheelInput{}

// PageScrollSystem 页面平滑滚动
//
// 滚轮和 ScrollToTarget 都只改目标位置，实际位置在 Duration 内按
// utils.EaseSmoothScroll 从动画起点移动到目标，结束时精确落在目标上。
type PageScrollSystem struct {
	wheel WheelInput

	scrollY    float64
	target     float64
	from       float64
	elapsed    float64
	animating  bool
	duration   float64
	wheelStep  float64
	pageHeight float64
	viewportH  float64
}

// NewPageScrollSystem 创建页面滚动系统
func NewPageScrollSystem(pageHeight, viewportHeight float64) *PageScrollSystem {
	return NewPageScrollSystemWithInput(pageHeight, viewportHeight, defaultWheelInput)
}

// NewPageScrollSystemWithInput 创建带自定义滚轮输入的页面滚动系统（用于测试）
func NewPageScrollSystemWithInput(pageHeight, viewportHeight float64, input WheelInput) *PageScrollSystem {
	return &PageScrollSystem{
		wheel:      input,
		duration:   config.PageScrollDuration,
		wheelStep:  config.WheelScrollStep,
		pageHeight: pageHeight,
		viewportH:  viewportHeight,
	}
}

// ScrollY 当前滚动位置
func (s *PageScrollSystem) ScrollY() float64 {
	return s.scrollY
}

// Target 当前滚动目标
func (s *PageScrollSystem) Target() float64 {
	return s.target
}

// Animating 是否正在平滑滚动
func (s *PageScrollSystem) Animating() bool {
	return s.animating
}

// ViewportHeight 视口高度
func (s *PageScrollSystem) ViewportHeight() float64 {
	return s.viewportH
}

// MaxScroll 最大滚动位置
func (s *PageScrollSystem) MaxScroll() float64 {
	return max(0, s.pageHeight-s.viewportH)
}

// ScrollToTarget 平滑滚动到 y（超出范围时夹紧）
func (s *PageScrollSystem) ScrollToTarget(y float64) {
	y = utils.Clamp(y, 0, s.MaxScroll())
	if y == s.target && (s.animating || y == s.scrollY) {
		return
	}
	log.Printf("[PageScroll] scroll to %.1f (from %.1f)", y, s.scrollY)
	s.start(y)
}

// JumpTo 立即跳到 y，不做动画
func (s *PageScrollSystem) JumpTo(y float64) {
	y = utils.Clamp(y, 0, s.MaxScroll())
	s.scrollY = y
	s.target = y
	s.animating = false
}

// SetViewportHeight 窗口高度变化时调用，重新夹紧当前位置
func (s *PageScrollSystem) SetViewportHeight(h float64) {
	if h == s.viewportH {
		return
	}
	s.viewportH = h
	s.reclamp()
}

// SetPageHeight 页面内容高度变化时调用
func (s *PageScrollSystem) SetPageHeight(h float64) {
	if h == s.pageHeight {
		return
	}
	s.pageHeight = h
	s.reclamp()
}

func (s *PageScrollSystem) reclamp() {
	maxY := s.MaxScroll()
	s.scrollY = utils.Clamp(s.scrollY, 0, maxY)
	s.target = utils.Clamp(s.target, 0, maxY)
	s.from = utils.Clamp(s.from, 0, maxY)
}

func (s *PageScrollSystem) start(target float64) {
	s.from = s.scrollY
	s.target = target
	s.elapsed = 0
	s.animating = true
}

// Update 读取滚轮并推进平滑滚动
func (s *PageScrollSystem) Update(deltaTime float64) {
	if _, dy := s.wheel.Wheel(); dy != 0 {
		// 滚轮向下为负值，页面向下滚动
		next := utils.Clamp(s.target-dy*s.wheelStep, 0, s.MaxScroll())
		if next != s.target {
			s.start(next)
		}
	}

	if !s.animating {
		return
	}
	s.elapsed += deltaTime
	t := 1.0
	if s.duration > 0 {
		t = min(1, s.elapsed/s.duration)
	}
	s.scrollY = utils.Lerp(s.from, s.target, utils.EaseSmoothScroll(t))
	if t >= 1 {
		s.scrollY = s.target
		s.animating = false
	}
}
