package carousel

import "time"

// State 轮播的可变状态
//
// 只有三个角色会修改它：InputCoordinator（手势与导航）、Autoplay（计时推进）、
// PositionController.Tick（仅修改 CurrentOffset / Velocity）。
// 任一时刻 CurrentOffset 只有一个所有者：Drag != nil 时归拖拽，否则归弹簧。
type State struct {
	ActiveIndex   int
	CurrentOffset float64
	TargetOffset  float64
	Velocity      float64 // 弹簧速度（像素/秒）
	ViewportWidth float64

	// Drag 仅在拖拽进行中存在，nil 即表示没有拖拽
	Drag *DragState

	Autoplay AutoplayState
}

// Dragging 是否有拖拽正在进行
func (s *State) Dragging() bool {
	return s.Drag != nil
}

// DragState 一次拖拽手势的记录
type DragState struct {
	Active        bool
	StartPointer  float64
	StartOffset   float64
	LastPointer   float64
	LastTimestamp time.Duration

	samples []dragSample
}

// dragSample 用于松手时估计速度
type dragSample struct {
	x  float64
	ts time.Duration
}

// AutoplayState 自动播放的对外可见状态
type AutoplayState struct {
	Enabled             bool
	Suspended           bool
	ElapsedSinceAdvance time.Duration
}

// clone 返回深拷贝，供外部读取快照
func (s *State) clone() State {
	c := *s
	if s.Drag != nil {
		d := *s.Drag
		d.samples = append([]dragSample(nil), s.Drag.samples...)
		c.Drag = &d
	}
	return c
}
