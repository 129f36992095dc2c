package config

// 页面布局常量
// 所有纵向坐标使用"页面坐标系"（相对于页面顶部），渲染时减去当前滚动位置得到屏幕坐标

const (
	// DefaultWindowWidth / DefaultWindowHeight 窗口初始尺寸
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720

	// NavbarHeight 顶部导航栏高度
	NavbarHeight = 72.0

	// NavbarScrolledThreshold 滚动超过此值后导航栏切换为实心背景
	NavbarScrolledThreshold = 50.0

	// NavbarRevealDelay 导航栏在启动后延迟出现（秒），与加载画面同步
	NavbarRevealDelay = 2.8

	// SectionPadding 区段上下内边距
	SectionPadding = 80.0

	// SectionHeadingHeight 区段标题区域高度
	SectionHeadingHeight = 120.0

	// HeroHeight 首屏区段高度（等于一屏）
	HeroHeight = float64(DefaultWindowHeight)

	// DotSize / DotGap 导航圆点尺寸与间距
	DotSize = 8.0
	DotGap  = 8.0

	// DotActiveWidth 激活圆点被拉长的宽度
	DotActiveWidth = 16.0

	// ArrowZoneWidth 轮播左右两侧箭头点击区宽度
	ArrowZoneWidth = 56.0

	// ClickSlop 按下到抬起移动小于此距离视为点击而非拖拽（像素）
	ClickSlop = 6.0

	// InViewRatio 区段可见比例达到此值视为"在视口内"
	InViewRatio = 0.5

	// CenterOnViewDelay 推荐区段进入视口后延迟滚动居中（秒）
	CenterOnViewDelay = 0.1

	// PageScrollDuration 平滑滚动到目标位置的时长（秒）
	PageScrollDuration = 1.2

	// WheelScrollStep 鼠标滚轮每格滚动距离
	WheelScrollStep = 120.0
)

// SectionHeight 返回容纳给定卡片高度的区段总高度
func SectionHeight(cardHeight float64) float64 {
	return SectionPadding*2 + SectionHeadingHeight + cardHeight + DotSize*4
}

// CardTop 返回区段内卡片行的页面纵坐标
func CardTop(sectionTop float64) float64 {
	return sectionTop + SectionPadding + SectionHeadingHeight
}
