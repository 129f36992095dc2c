package components

// NavbarComponent 顶部导航栏
type NavbarComponent struct {
	Items []string

	// Revealed 启动延迟结束后才显示
	Revealed bool

	// Scrolled 滚动超过阈值后切换为实心背景
	Scrolled bool

	// Hidden 首页向下滚动时收起，向上滚动时出现
	Hidden bool

	// HomePage 只有首页启用滚动收起
	HomePage bool

	// LastScrollY 上一帧的滚动位置，用于判断方向
	LastScrollY float64

	// Offset 当前纵向偏移（0 为完全显示，-NavbarHeight 为完全收起）
	Offset float64
}
