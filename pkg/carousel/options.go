package carousel

import (
	"fmt"
	"time"
)

// EdgePolicy 决定越过首尾卡片时的行为
type EdgePolicy int

const (
	// EdgeWrap 索引取模回绕，拖拽无阻尼（适合没有自然起止的营销轮播）
	EdgeWrap EdgePolicy = iota
	// EdgeClamp 索引夹紧，拖拽越界部分按 EdgeResistance 缩放（适合严格有序的内容）
	EdgeClamp
)

func (p EdgePolicy) String() string {
	switch p {
	case EdgeWrap:
		return "wrap"
	case EdgeClamp:
		return "clamp"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", int(p))
	}
}

// ControlMode 决定由谁驱动当前索引，两种模式互斥
type ControlMode int

const (
	// ControlInteractive 由拖拽、导航和自动播放驱动
	ControlInteractive ControlMode = iota
	// ControlScroll 由页面滚动进度驱动，禁用拖拽和自动播放
	ControlScroll
)

func (m ControlMode) String() string {
	switch m {
	case ControlInteractive:
		return "interactive"
	case ControlScroll:
		return "scroll"
	default:
		return fmt.Sprintf("ControlMode(%d)", int(m))
	}
}

// SpringOptions 弹簧参数
//
// AngularFrequency 即 sqrt(stiffness/mass)，DampingRatio = 1 为临界阻尼（无过冲），
// 小于 1 允许轻微回弹。
type SpringOptions struct {
	AngularFrequency float64
	DampingRatio     float64
}

// 默认参数
const (
	DefaultAngularFrequency   = 15.0 // 约 0.45 秒收敛
	DefaultDampingRatio       = 1.0
	BounceDampingRatio        = 0.6
	DefaultEdgeResistance     = 0.3
	DefaultSwipeVelocity      = 500.0 // 像素/秒
	DefaultSwipeDistanceRatio = 1.0 / 3.0
	DefaultAutoplayInterval   = 5 * time.Second
	DefaultVelocityWindow     = 100 * time.Millisecond

	// SettleEpsilon 偏移差小于此值视为到位（像素）
	SettleEpsilon = 0.1
	// SettleVelocity 速度小于此值视为静止（像素/秒）
	SettleVelocity = 1.0
)

// Options 单个轮播实例的配置
// 不同页面上的轮播变体只在配置上不同，共享同一套逻辑
type Options struct {
	ItemWidth float64
	Gap       float64

	Edge           EdgePolicy
	EdgeResistance float64 // EdgeClamp 下越界部分的拖拽系数

	Control ControlMode

	Autoplay         bool
	AutoplayInterval time.Duration

	Spring SpringOptions

	SwipeVelocity      float64       // 松手时速度超过此值即翻页
	SwipeDistanceRatio float64       // 拖拽距离超过 stride*ratio 即翻页
	VelocityWindow     time.Duration // 速度估计只看最近这段时间的采样

	Parallax Keyframes // 可选：卡片图片层的视差映射
}

// DefaultOptions 返回营销轮播的默认配置
func DefaultOptions() Options {
	return Options{
		ItemWidth:          450,
		Gap:                20,
		Edge:               EdgeWrap,
		EdgeResistance:     DefaultEdgeResistance,
		Control:            ControlInteractive,
		Autoplay:           true,
		AutoplayInterval:   DefaultAutoplayInterval,
		Spring:             SpringOptions{AngularFrequency: DefaultAngularFrequency, DampingRatio: DefaultDampingRatio},
		SwipeVelocity:      DefaultSwipeVelocity,
		SwipeDistanceRatio: DefaultSwipeDistanceRatio,
		VelocityWindow:     DefaultVelocityWindow,
	}
}

// withDefaults 为零值字段填充默认值
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.EdgeResistance == 0 {
		o.EdgeResistance = d.EdgeResistance
	}
	if o.AutoplayInterval == 0 {
		o.AutoplayInterval = d.AutoplayInterval
	}
	if o.Spring.AngularFrequency == 0 {
		o.Spring.AngularFrequency = d.Spring.AngularFrequency
	}
	if o.Spring.DampingRatio == 0 {
		o.Spring.DampingRatio = d.Spring.DampingRatio
	}
	if o.SwipeVelocity == 0 {
		o.SwipeVelocity = d.SwipeVelocity
	}
	if o.SwipeDistanceRatio == 0 {
		o.SwipeDistanceRatio = d.SwipeDistanceRatio
	}
	if o.VelocityWindow == 0 {
		o.VelocityWindow = d.VelocityWindow
	}
	return o
}

// Validate 检查配置是否合法
func (o Options) Validate() error {
	if o.ItemWidth <= 0 {
		return fmt.Errorf("%w: item width must be positive, got %v", ErrInvalidOptions, o.ItemWidth)
	}
	if o.Gap < 0 {
		return fmt.Errorf("%w: gap must not be negative, got %v", ErrInvalidOptions, o.Gap)
	}
	if o.EdgeResistance < 0 || o.EdgeResistance > 1 {
		return fmt.Errorf("%w: edge resistance must be in [0,1], got %v", ErrInvalidOptions, o.EdgeResistance)
	}
	if o.Spring.AngularFrequency < 0 || o.Spring.DampingRatio < 0 {
		return fmt.Errorf("%w: spring parameters must not be negative", ErrInvalidOptions)
	}
	if o.AutoplayInterval < 0 {
		return fmt.Errorf("%w: autoplay interval must not be negative", ErrInvalidOptions)
	}
	if o.Edge != EdgeWrap && o.Edge != EdgeClamp {
		return fmt.Errorf("%w: unknown edge policy %v", ErrInvalidOptions, o.Edge)
	}
	switch o.Control {
	case ControlInteractive:
	case ControlScroll:
		if o.Autoplay {
			return fmt.Errorf("%w: autoplay cannot run in scroll-control mode", ErrModeConflict)
		}
	default:
		return fmt.Errorf("%w: unknown control mode %v", ErrInvalidOptions, o.Control)
	}
	if err := o.Parallax.Validate(); err != nil {
		return err
	}
	return nil
}
