package carousel

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// PositionController 持有当前索引并让轨道偏移平滑收敛到目标
//
// 目标偏移在索引或视口宽度变化时重新计算；
// CurrentOffset 通过阻尼弹簧逐帧逼近 TargetOffset。
type PositionController struct {
	track  Track
	edge   EdgePolicy
	spring SpringOptions
	state  *State

	// harmonica.Spring 的系数依赖 dt，缓存最近一次的 dt 避免每帧重算
	cached   harmonica.Spring
	cachedDt float64
}

// NewPositionController 创建位置控制器
func NewPositionController(track Track, edge EdgePolicy, spring SpringOptions, state *State) *PositionController {
	return &PositionController{
		track:  track,
		edge:   edge,
		spring: spring,
		state:  state,
	}
}

// Track 返回当前轨道
func (pc *PositionController) Track() Track {
	return pc.track
}

// SetTrack 替换轨道（条目数量变化时），索引重新夹紧，偏移立即对齐
func (pc *PositionController) SetTrack(track Track) {
	pc.track = track
	pc.SetActiveIndex(track.ClampIndex(pc.state.ActiveIndex), false)
}

// normalize 按边界策略把索引折回或夹紧
func (pc *PositionController) normalize(i int) int {
	if pc.edge == EdgeClamp {
		return pc.track.ClampIndex(i)
	}
	return pc.track.WrapIndex(i)
}

// SetActiveIndex 设置当前索引并重新计算目标偏移
//
// animate 为 false 时（如尺寸变化后的瞬间跳转）同时把 CurrentOffset 设为目标并清零速度。
// 拖拽进行中只更新索引与目标，不触碰 CurrentOffset。
func (pc *PositionController) SetActiveIndex(i int, animate bool) {
	s := pc.state
	s.ActiveIndex = pc.normalize(i)
	s.TargetOffset = pc.track.CenteringOffset(s.ActiveIndex, s.ViewportWidth)
	if !animate && s.Drag == nil {
		s.CurrentOffset = s.TargetOffset
		s.Velocity = 0
	}
}

// SetTargetOffset 直接指定目标偏移（仅滚动驱动模式使用），索引取最接近视口中心的卡片
func (pc *PositionController) SetTargetOffset(offset float64) {
	s := pc.state
	s.TargetOffset = offset
	s.ActiveIndex = pc.track.NearestIndex(offset, s.ViewportWidth)
}

// OnViewportResize 更新视口宽度并重新计算目标
//
// CurrentOffset 照常收敛，避免缩放窗口时画面跳动；
// 只有当前位置与新目标相距超过一整个视口宽度时才直接对齐。
func (pc *PositionController) OnViewportResize(width float64) {
	if width < 0 || math.IsNaN(width) {
		width = 0
	}
	s := pc.state
	s.ViewportWidth = width
	s.TargetOffset = pc.track.CenteringOffset(s.ActiveIndex, width)
	if s.Drag == nil && width > 0 && math.Abs(s.CurrentOffset-s.TargetOffset) > width {
		s.CurrentOffset = s.TargetOffset
		s.Velocity = 0
	}
}

// Settled 当前偏移是否已到达目标且静止
func (pc *PositionController) Settled() bool {
	s := pc.state
	return math.Abs(s.CurrentOffset-s.TargetOffset) < SettleEpsilon && math.Abs(s.Velocity) < SettleVelocity
}

// Tick 推进一帧弹簧动画
//
// 返回 false 表示已经到位，调用方可以停止调度后续帧；到位后重复调用不会再改变偏移。
// 拖拽进行中偏移归拖拽所有，Tick 不做任何修改。
func (pc *PositionController) Tick(dt float64) bool {
	s := pc.state
	if s.Drag != nil {
		return true
	}
	if pc.Settled() {
		s.CurrentOffset = s.TargetOffset
		s.Velocity = 0
		return false
	}
	if dt <= 0 {
		return true
	}

	spring := pc.springFor(dt)
	s.CurrentOffset, s.Velocity = spring.Update(s.CurrentOffset, s.Velocity, s.TargetOffset)

	if pc.Settled() {
		s.CurrentOffset = s.TargetOffset
		s.Velocity = 0
		return false
	}
	return true
}

func (pc *PositionController) springFor(dt float64) harmonica.Spring {
	if dt != pc.cachedDt {
		pc.cached = harmonica.NewSpring(dt, pc.spring.AngularFrequency, pc.spring.DampingRatio)
		pc.cachedDt = dt
	}
	return pc.cached
}
