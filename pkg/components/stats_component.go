package components

// StatItem 一个数据条目及其出场动画状态
type StatItem struct {
	Number string
	Label  string

	// Delay 区段首次进入视口后延迟多久开始出场（秒）
	Delay float64

	// 由 StatsRevealSystem 每帧写入
	Opacity float64
	OffsetY float64
	Scale   float64
}

// StatsComponent 数据区段：首次进入视口后依次淡入上移、数字放大，只播放一次
type StatsComponent struct {
	Items []StatItem

	// Elapsed 区段首次进入视口后经过的时间
	Elapsed float64
}
