package carousel

import (
	"fmt"
	"log"
	"time"
)

// ViewportObserver 提供容器宽度（像素）
// 引擎只在创建时和 HandleResize 时读取，不逐帧轮询
type ViewportObserver interface {
	ViewportWidth() int
}

// ViewportFunc 把普通函数适配为 ViewportObserver
type ViewportFunc func() int

func (f ViewportFunc) ViewportWidth() int { return f() }

// FixedViewport 宽度固定的视口，主要用于测试
type FixedViewport int

func (v FixedViewport) ViewportWidth() int { return int(v) }

// ItemFrame 单张卡片在本帧的渲染信息
type ItemFrame struct {
	Index     int
	X         float64 // 卡片左边缘（视口坐标）
	Active    bool
	ParallaxY float64
}

// RenderFrame 渲染层每帧读取的全部信息，无需了解引擎内部状态
type RenderFrame struct {
	TrackOffset float64
	ActiveIndex int // 空轨道时为 -1
	Items       []ItemFrame
	Settled     bool
}

// Carousel 组合轨道、位置控制、输入协调、自动播放和滚动绑定
type Carousel struct {
	opts     Options
	state    State
	viewport ViewportObserver

	controller *PositionController
	input      *InputCoordinator
	autoplay   *Autoplay
	scroll     *ScrollBinding

	closed bool
}

// New 创建轮播，初始索引为 0 且偏移直接对齐第一张卡片
func New(opts Options, itemCount int, viewport ViewportObserver) (*Carousel, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Carousel{opts: opts, viewport: viewport}
	c.state.ViewportWidth = c.readViewport()

	track := NewTrack(opts.ItemWidth, opts.Gap, itemCount)
	c.controller = NewPositionController(track, opts.Edge, opts.Spring, &c.state)
	c.autoplay = NewAutoplay(opts.Autoplay && opts.Control == ControlInteractive, opts.AutoplayInterval, &c.state)
	c.input = NewInputCoordinator(opts, c.controller, c.autoplay, &c.state)
	c.scroll = NewScrollBinding(opts.Control == ControlScroll, opts.Parallax)

	c.controller.SetActiveIndex(0, false)
	if c.scroll.Selects() {
		c.controller.SetTargetOffset(c.scroll.TargetOffset(track, c.state.ViewportWidth))
		c.state.CurrentOffset = c.state.TargetOffset
	}
	return c, nil
}

func (c *Carousel) readViewport() float64 {
	if c.viewport == nil {
		return 0
	}
	w := c.viewport.ViewportWidth()
	if w < 0 {
		return 0
	}
	return float64(w)
}

// Options 返回实例配置（已填充默认值）
func (c *Carousel) Options() Options {
	return c.opts
}

// Track 返回当前轨道
func (c *Carousel) Track() Track {
	return c.controller.Track()
}

// State 返回状态快照
func (c *Carousel) State() State {
	return c.state.clone()
}

// ActiveIndex 当前激活的卡片，空轨道返回 -1
func (c *Carousel) ActiveIndex() int {
	if c.controller.Track().Empty() {
		return -1
	}
	return c.state.ActiveIndex
}

// Dragging 是否正在拖拽
func (c *Carousel) Dragging() bool {
	return c.state.Drag != nil
}

// Settled 偏移已到位且没有拖拽
func (c *Carousel) Settled() bool {
	return c.state.Drag == nil && c.controller.Settled()
}

// AutoplayPhase 自动播放当前阶段
func (c *Carousel) AutoplayPhase() AutoplayPhase {
	return c.autoplay.Phase()
}

// Next 前进一张
func (c *Carousel) Next() error {
	return c.Navigate(NavNext)
}

// Previous 后退一张
func (c *Carousel) Previous() error {
	return c.Navigate(NavPrevious)
}

// GoTo 跳到指定索引，越界时按边界策略折回或夹紧
func (c *Carousel) GoTo(index int) error {
	return c.Navigate(NavIndex(index))
}

// Navigate 执行导航命令
func (c *Carousel) Navigate(target NavTarget) error {
	if c.closed {
		return ErrClosed
	}
	if err := c.input.OnNavigate(target); err != nil {
		return fmt.Errorf("navigate %v: %w", target, err)
	}
	return nil
}

// DragStart 指针按下
func (c *Carousel) DragStart(pointerX float64, ts time.Duration) error {
	if c.closed {
		return ErrClosed
	}
	return c.input.OnDragStart(pointerX, ts)
}

// DragMove 指针移动
func (c *Carousel) DragMove(pointerX float64, ts time.Duration) error {
	if c.closed {
		return ErrClosed
	}
	return c.input.OnDragMove(pointerX, ts)
}

// DragEnd 指针抬起
func (c *Carousel) DragEnd(pointerX float64, ts time.Duration) error {
	if c.closed {
		return ErrClosed
	}
	return c.input.OnDragEnd(pointerX, ts)
}

// DragCancel 指针丢失
func (c *Carousel) DragCancel() error {
	if c.closed {
		return ErrClosed
	}
	return c.input.OnDragCancel()
}

// SetHover 指针是否悬停在轮播上
func (c *Carousel) SetHover(hovered bool) {
	if c.closed {
		return
	}
	c.autoplay.SetSource(SuspendHover, hovered)
}

// SetInView 轮播是否在视口内
func (c *Carousel) SetInView(inView bool) {
	if c.closed {
		return
	}
	c.autoplay.SetSource(SuspendOutOfView, !inView)
}

// SetScrollProgress 更新所在区段的滚动进度
// 滚动驱动模式下同时更新目标偏移，其余模式只影响视差
func (c *Carousel) SetScrollProgress(p float64) {
	if c.closed {
		return
	}
	c.scroll.SetProgress(p)
	if c.scroll.Selects() {
		c.controller.SetTargetOffset(c.scroll.TargetOffset(c.controller.Track(), c.state.ViewportWidth))
	}
}

// HandleResize 响应尺寸变化事件，重新读取视口宽度
// 返回宽度是否变化
func (c *Carousel) HandleResize() bool {
	if c.closed {
		return false
	}
	w := c.readViewport()
	if w == c.state.ViewportWidth {
		return false
	}
	c.controller.OnViewportResize(w)
	if c.scroll.Selects() {
		c.controller.SetTargetOffset(c.scroll.TargetOffset(c.controller.Track(), w))
	}
	return true
}

// SetItemCount 条目数量变化时重建轨道，进行中的拖拽被取消
func (c *Carousel) SetItemCount(n int) {
	if c.closed {
		return
	}
	if c.state.Drag != nil {
		_ = c.input.OnDragCancel()
	}
	track := NewTrack(c.opts.ItemWidth, c.opts.Gap, n)
	if track.ItemCount == c.controller.Track().ItemCount {
		return
	}
	c.controller.SetTrack(track)
}

// Update 推进一帧：先自动播放，再弹簧收敛
// 返回 true 表示仍在动画中，调用方需继续调度下一帧
func (c *Carousel) Update(dt float64) bool {
	if c.closed {
		return false
	}
	step := time.Duration(dt * float64(time.Second))
	if c.autoplay.Update(step) {
		target := NavNext
		track := c.controller.Track()
		if c.opts.Edge == EdgeClamp && c.state.ActiveIndex >= track.ItemCount-1 {
			target = NavIndex(0)
		}
		if err := c.input.navigate(target); err != nil {
			log.Printf("[Carousel] autoplay advance skipped: %v", err)
		}
		c.autoplay.Done()
	}
	if c.state.Drag != nil {
		return true
	}
	return c.controller.Tick(dt)
}

// Frame 生成本帧的渲染信息
func (c *Carousel) Frame() RenderFrame {
	track := c.controller.Track()
	frame := RenderFrame{
		TrackOffset: c.state.CurrentOffset,
		ActiveIndex: c.ActiveIndex(),
		Items:       make([]ItemFrame, track.ItemCount),
		Settled:     c.Settled(),
	}
	parallax := c.scroll.ParallaxY()
	for i := range frame.Items {
		frame.Items[i] = ItemFrame{
			Index:     i,
			X:         track.ItemX(i, c.state.CurrentOffset),
			Active:    i == frame.ActiveIndex,
			ParallaxY: parallax,
		}
	}
	return frame
}

// Close 卸载轮播，停止计时器；之后的调用全部无效
func (c *Carousel) Close() {
	if c.closed {
		return
	}
	c.autoplay.Stop()
	c.state.Drag = nil
	c.closed = true
}

// Closed 是否已卸载
func (c *Carousel) Closed() bool {
	return c.closed
}
