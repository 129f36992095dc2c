package carousel

import (
	"fmt"
	"log"
	"math"
	"time"
)

// NavTarget 导航目标：下一张、上一张或指定索引
type NavTarget struct {
	kind  navKind
	index int
}

type navKind int

const (
	navNext navKind = iota
	navPrevious
	navIndex
)

var (
	NavNext     = NavTarget{kind: navNext}
	NavPrevious = NavTarget{kind: navPrevious}
)

// NavIndex 跳到指定索引（导航圆点、点击卡片）
func NavIndex(i int) NavTarget {
	return NavTarget{kind: navIndex, index: i}
}

func (n NavTarget) String() string {
	switch n.kind {
	case navNext:
		return "next"
	case navPrevious:
		return "previous"
	default:
		return fmt.Sprintf("index(%d)", n.index)
	}
}

// InputCoordinator 把拖拽手势和导航命令翻译为索引变化或临时偏移
//
// 它负责拖拽与弹簧动画之间的互斥：拖拽进行中拒绝任何索引变更。
type InputCoordinator struct {
	opts       Options
	controller *PositionController
	autoplay   *Autoplay
	state      *State
}

// NewInputCoordinator 创建输入协调器
func NewInputCoordinator(opts Options, pc *PositionController, ap *Autoplay, state *State) *InputCoordinator {
	return &InputCoordinator{
		opts:       opts,
		controller: pc,
		autoplay:   ap,
		state:      state,
	}
}

// OnDragStart 开始拖拽
//
// 已有拖拽时拒绝（记录日志，状态不变）。新的拖拽可以打断尚未到位的弹簧动画，
// 直接从当前偏移接管。
func (ic *InputCoordinator) OnDragStart(pointerX float64, ts time.Duration) error {
	if ic.opts.Control == ControlScroll {
		return ErrDragDisabled
	}
	s := ic.state
	if s.Drag != nil {
		log.Printf("[Carousel] rejected re-entrant drag start at x=%.1f (drag started at x=%.1f)", pointerX, s.Drag.StartPointer)
		return ErrDragInProgress
	}
	s.Drag = &DragState{
		Active:        true,
		StartPointer:  pointerX,
		StartOffset:   s.CurrentOffset,
		LastPointer:   pointerX,
		LastTimestamp: ts,
		samples:       []dragSample{{x: pointerX, ts: ts}},
	}
	s.Velocity = 0
	ic.autoplay.Suspend(SuspendDrag)
	return nil
}

// OnDragMove 拖拽移动，直接设置 CurrentOffset
func (ic *InputCoordinator) OnDragMove(pointerX float64, ts time.Duration) error {
	s := ic.state
	d := s.Drag
	if d == nil {
		return ErrNoDrag
	}
	s.CurrentOffset = ic.dragOffset(d.StartOffset + (pointerX - d.StartPointer))
	ic.record(d, pointerX, ts)
	return nil
}

// dragOffset 在 EdgeClamp 策略下对越界部分施加阻尼
func (ic *InputCoordinator) dragOffset(raw float64) float64 {
	if ic.controller.Track().Empty() {
		return 0
	}
	if ic.opts.Edge != EdgeClamp {
		return raw
	}
	lo, hi := ic.controller.Track().OffsetBounds(ic.state.ViewportWidth)
	switch {
	case raw > hi:
		return hi + (raw-hi)*ic.opts.EdgeResistance
	case raw < lo:
		return lo + (raw-lo)*ic.opts.EdgeResistance
	default:
		return raw
	}
}

// record 记录采样点并丢弃速度窗口之外的旧样本
func (ic *InputCoordinator) record(d *DragState, x float64, ts time.Duration) {
	d.LastPointer = x
	d.LastTimestamp = ts
	d.samples = append(d.samples, dragSample{x: x, ts: ts})
	cutoff := ts - ic.opts.VelocityWindow
	drop := 0
	// 至少保留两个样本用于计算速度
	for drop < len(d.samples)-2 && d.samples[drop].ts < cutoff {
		drop++
	}
	if drop > 0 {
		d.samples = append(d.samples[:0], d.samples[drop:]...)
	}
}

// velocity 速度窗口内的平均速度（像素/秒）
func (ic *InputCoordinator) velocity(d *DragState) float64 {
	if len(d.samples) < 2 {
		return 0
	}
	last := d.samples[len(d.samples)-1]
	cutoff := last.ts - ic.opts.VelocityWindow
	first := d.samples[0]
	for _, sm := range d.samples {
		if sm.ts >= cutoff {
			first = sm
			break
		}
	}
	dt := (last.ts - first.ts).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.x - first.x) / dt
}

// OnDragEnd 结束拖拽并决定翻页还是回弹
//
// 规则：|位移| > stride*SwipeDistanceRatio 或 |速度| > SwipeVelocity 时按拖拽方向前进一张
// （向左拖 ⇒ 下一张），否则回到当前卡片。之后交还给弹簧从当前位置继续收敛。
func (ic *InputCoordinator) OnDragEnd(pointerX float64, ts time.Duration) error {
	s := ic.state
	d := s.Drag
	if d == nil {
		return ErrNoDrag
	}
	if pointerX != d.LastPointer || ts != d.LastTimestamp {
		s.CurrentOffset = ic.dragOffset(d.StartOffset + (pointerX - d.StartPointer))
		ic.record(d, pointerX, ts)
	}

	delta := pointerX - d.StartPointer
	velocity := ic.velocity(d)
	track := ic.controller.Track()

	s.Drag = nil
	ic.autoplay.Resume(SuspendDrag)

	if track.ItemCount <= 1 {
		ic.controller.SetActiveIndex(s.ActiveIndex, true)
		return nil
	}

	next := s.ActiveIndex
	if math.Abs(delta) > track.Stride()*ic.opts.SwipeDistanceRatio || math.Abs(velocity) > ic.opts.SwipeVelocity {
		// 以位移方向为准；位移为 0 时退回到速度方向
		dir := delta
		if dir == 0 {
			dir = velocity
		}
		if dir < 0 {
			next++
		} else if dir > 0 {
			next--
		}
	}
	if next != s.ActiveIndex {
		ic.autoplay.Reset()
	}
	ic.controller.SetActiveIndex(next, true)
	return nil
}

// OnDragCancel 指针丢失时取消拖拽并回弹到当前卡片
func (ic *InputCoordinator) OnDragCancel() error {
	s := ic.state
	if s.Drag == nil {
		return ErrNoDrag
	}
	s.Drag = nil
	ic.autoplay.Resume(SuspendDrag)
	ic.controller.SetActiveIndex(s.ActiveIndex, true)
	return nil
}

// OnNavigate 处理箭头、导航圆点和点击卡片
// 拖拽进行中拒绝，调用方需在拖拽结束后重新发起
func (ic *InputCoordinator) OnNavigate(target NavTarget) error {
	if ic.opts.Control == ControlScroll {
		return ErrNavigationDisabled
	}
	if err := ic.navigate(target); err != nil {
		return err
	}
	ic.autoplay.Reset()
	return nil
}

// navigate 执行导航但不重置自动播放计时，自动播放推进时直接调用
func (ic *InputCoordinator) navigate(target NavTarget) error {
	s := ic.state
	if s.Drag != nil {
		return ErrDragInProgress
	}
	if ic.controller.Track().Empty() {
		return nil
	}
	switch target.kind {
	case navNext:
		ic.controller.SetActiveIndex(s.ActiveIndex+1, true)
	case navPrevious:
		ic.controller.SetActiveIndex(s.ActiveIndex-1, true)
	default:
		ic.controller.SetActiveIndex(target.index, true)
	}
	return nil
}
