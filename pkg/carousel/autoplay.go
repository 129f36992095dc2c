package carousel

import (
	"fmt"
	"time"
)

// SuspendSource 暂停自动播放的原因
// 多个来源按集合记录，只有全部解除后才恢复计时
type SuspendSource int

const (
	SuspendDrag SuspendSource = iota
	SuspendHover
	SuspendOutOfView
)

func (s SuspendSource) String() string {
	switch s {
	case SuspendDrag:
		return "drag"
	case SuspendHover:
		return "hover"
	case SuspendOutOfView:
		return "out-of-view"
	default:
		return fmt.Sprintf("SuspendSource(%d)", int(s))
	}
}

// AutoplayPhase 自动播放状态机：Idle → Counting → Advancing → Idle
type AutoplayPhase int

const (
	PhaseIdle AutoplayPhase = iota
	PhaseCounting
	PhaseAdvancing
)

func (p AutoplayPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCounting:
		return "counting"
	case PhaseAdvancing:
		return "advancing"
	default:
		return fmt.Sprintf("AutoplayPhase(%d)", int(p))
	}
}

// Autoplay 空闲时按固定间隔推进索引的计时器
type Autoplay struct {
	interval time.Duration
	sources  map[SuspendSource]struct{}
	phase    AutoplayPhase
	state    *State
}

// NewAutoplay 创建自动播放计时器
func NewAutoplay(enabled bool, interval time.Duration, state *State) *Autoplay {
	state.Autoplay = AutoplayState{Enabled: enabled && interval > 0}
	return &Autoplay{
		interval: interval,
		sources:  make(map[SuspendSource]struct{}),
		state:    state,
	}
}

// Suspend 添加一个暂停来源
func (a *Autoplay) Suspend(src SuspendSource) {
	a.sources[src] = struct{}{}
	a.sync()
}

// Resume 移除一个暂停来源
func (a *Autoplay) Resume(src SuspendSource) {
	delete(a.sources, src)
	a.sync()
}

// SetSource 根据条件添加或移除暂停来源
func (a *Autoplay) SetSource(src SuspendSource, active bool) {
	if active {
		a.Suspend(src)
	} else {
		a.Resume(src)
	}
}

// Suspended 是否存在任一暂停来源
func (a *Autoplay) Suspended() bool {
	return len(a.sources) > 0
}

// HasSource 是否存在指定的暂停来源
func (a *Autoplay) HasSource(src SuspendSource) bool {
	_, ok := a.sources[src]
	return ok
}

// Phase 当前阶段
func (a *Autoplay) Phase() AutoplayPhase {
	return a.phase
}

// Reset 重新开始计时（用户手动导航后调用）
func (a *Autoplay) Reset() {
	a.state.Autoplay.ElapsedSinceAdvance = 0
}

// Stop 停止计时并清除所有来源，卸载时调用
func (a *Autoplay) Stop() {
	a.state.Autoplay = AutoplayState{}
	a.sources = make(map[SuspendSource]struct{})
	a.phase = PhaseIdle
}

// Update 推进计时，返回 true 表示本帧应当前进一张
func (a *Autoplay) Update(dt time.Duration) bool {
	st := &a.state.Autoplay
	if !st.Enabled || st.Suspended {
		a.phase = PhaseIdle
		return false
	}
	a.phase = PhaseCounting
	st.ElapsedSinceAdvance += dt
	if st.ElapsedSinceAdvance < a.interval {
		return false
	}
	a.phase = PhaseAdvancing
	st.ElapsedSinceAdvance = 0
	return true
}

// Done 推进完成后回到 Idle
func (a *Autoplay) Done() {
	if a.phase == PhaseAdvancing {
		a.phase = PhaseIdle
	}
}

func (a *Autoplay) sync() {
	a.state.Autoplay.Suspended = len(a.sources) > 0
}
