package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如导航栏延迟出现、区段进入视口后的滚动居中）
//
// 计时器本身是一个实体：销毁场景中的实体即取消所有未触发的计时器。
type TimerComponent struct {
	Name        string  // 计时器名称，如 "navbar_reveal"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成

	// OnFire 到时后调用一次
	OnFire func()
}
