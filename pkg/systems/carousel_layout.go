package systems

import (
	"github.com/gonewx/truview/pkg/carousel"
	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/config"
	"github.com/gonewx/truview/pkg/utils"
)

// carouselLayout 轮播在本帧的屏幕布局
// 输入系统的命中测试和渲染系统共用，保证点到的就是画出来的
type carouselLayout struct {
	X, Y, W, H float64 // 卡片行
	DotsY      float64 // 圆点行顶部
	ItemWidth  float64
}

func layoutCarousel(c *components.CarouselComponent, section *components.SectionComponent, scrollY float64) carouselLayout {
	l := carouselLayout{
		X:         c.X,
		Y:         section.Top + c.TopInset - scrollY,
		W:         c.Width,
		H:         c.CardHeight,
		ItemWidth: c.Engine.Track().ItemWidth,
	}
	if c.DotsOverlay {
		l.DotsY = l.Y + l.H - config.DotSize*4
	} else {
		l.DotsY = l.Y + l.H + config.DotSize*1.5
	}
	return l
}

// contains 指针是否在轮播区域内（卡片行加圆点行）
func (l carouselLayout) contains(x, y float64) bool {
	bottom := max(l.Y+l.H, l.DotsY+config.DotSize*2)
	return utils.PointInRect(x, y, l.X, l.Y, l.W, bottom-l.Y)
}

// inCards 指针是否在卡片行内
func (l carouselLayout) inCards(x, y float64) bool {
	return utils.PointInRect(x, y, l.X, l.Y, l.W, l.H)
}

// arrowAt 返回 -1（左箭头）、1（右箭头）或 0
func (l carouselLayout) arrowAt(x, y float64) int {
	if !l.inCards(x, y) {
		return 0
	}
	switch {
	case x < l.X+config.ArrowZoneWidth:
		return -1
	case x >= l.X+l.W-config.ArrowZoneWidth:
		return 1
	default:
		return 0
	}
}

// cardAt 返回指针下的卡片索引，没有则返回 -1
func (l carouselLayout) cardAt(frame carousel.RenderFrame, x, y float64) int {
	if !l.inCards(x, y) {
		return -1
	}
	for _, item := range frame.Items {
		left := l.X + item.X
		if x >= left && x < left+l.ItemWidth {
			return item.Index
		}
	}
	return -1
}

// dotRect 一个导航圆点的屏幕矩形
type dotRect struct {
	X, Y, W, H float64
	Index      int
	Active     bool
}

// dots 计算导航圆点的位置，激活圆点被拉长，整行水平居中
func (l carouselLayout) dots(count, active int) []dotRect {
	if count <= 0 {
		return nil
	}
	total := float64(count-1) * config.DotGap
	for i := 0; i < count; i++ {
		total += dotWidth(i == active)
	}
	x := l.X + (l.W-total)/2
	rects := make([]dotRect, count)
	for i := range rects {
		w := dotWidth(i == active)
		rects[i] = dotRect{X: x, Y: l.DotsY, W: w, H: config.DotSize, Index: i, Active: i == active}
		x += w + config.DotGap
	}
	return rects
}

// dotAt 返回指针下的圆点索引，没有则返回 -1
// 纵向命中范围上下各放宽一个圆点高度
func (l carouselLayout) dotAt(count, active int, x, y float64) int {
	for _, d := range l.dots(count, active) {
		if utils.PointInRect(x, y, d.X-config.DotGap/2, d.Y-config.DotSize, d.W+config.DotGap, d.H+config.DotSize*2) {
			return d.Index
		}
	}
	return -1
}

func dotWidth(active bool) float64 {
	if active {
		return config.DotActiveWidth
	}
	return config.DotSize
}
