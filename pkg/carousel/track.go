// Package carousel 实现卡片轮播的编排引擎
//
// 引擎由四部分组成：
//   - Track: 纯几何（卡片宽度、间距、数量）
//   - PositionController: 当前索引和弹簧动画偏移
//   - InputCoordinator: 拖拽手势与导航命令
//   - Autoplay / ScrollBinding: 自动播放计时器与页面滚动绑定
//
// Carousel 将四者组合为渲染层可直接使用的接口。所有状态都在调用方的帧循环中推进，
// 引擎自身不启动任何 goroutine。
package carousel

import "math"

// Track 描述轮播轨道的几何参数
// 值类型，每次条目数量变化时重新创建，从不原地修改
type Track struct {
	ItemWidth float64 // 卡片宽度（像素）
	Gap       float64 // 卡片间距（像素）
	ItemCount int     // 卡片数量
}

// NewTrack 创建轨道，负数数量视为 0
func NewTrack(itemWidth, gap float64, itemCount int) Track {
	if itemCount < 0 {
		itemCount = 0
	}
	return Track{ItemWidth: itemWidth, Gap: gap, ItemCount: itemCount}
}

// Stride 相邻两张卡片中心之间的距离
func (t Track) Stride() float64 {
	return t.ItemWidth + t.Gap
}

// TotalLength 整条轨道的长度，空轨道为 0
func (t Track) TotalLength() float64 {
	if t.ItemCount <= 0 {
		return 0
	}
	return float64(t.ItemCount)*t.Stride() - t.Gap
}

// Empty 轨道是否没有任何卡片
func (t Track) Empty() bool {
	return t.ItemCount <= 0
}

// CenteringOffset 返回让第 index 张卡片中心对齐视口中心的轨道偏移
//
// 公式：viewportWidth/2 − (index*stride + itemWidth/2)
// 空轨道返回 0（恒等状态）
func (t Track) CenteringOffset(index int, viewportWidth float64) float64 {
	if t.Empty() {
		return 0
	}
	return viewportWidth/2 - (float64(index)*t.Stride() + t.ItemWidth/2)
}

// WrapIndex 以取模方式把索引折回 [0, ItemCount)
func (t Track) WrapIndex(i int) int {
	if t.Empty() {
		return 0
	}
	i %= t.ItemCount
	if i < 0 {
		i += t.ItemCount
	}
	return i
}

// ClampIndex 把索引限制在 [0, ItemCount) 内
func (t Track) ClampIndex(i int) int {
	if t.Empty() || i < 0 {
		return 0
	}
	if i >= t.ItemCount {
		return t.ItemCount - 1
	}
	return i
}

// OffsetBounds 返回合法偏移范围 [最后一张居中, 第一张居中]
// 拖拽超出此范围时在 EdgeClamp 策略下产生阻尼
func (t Track) OffsetBounds(viewportWidth float64) (lo, hi float64) {
	if t.Empty() {
		return 0, 0
	}
	return t.CenteringOffset(t.ItemCount-1, viewportWidth), t.CenteringOffset(0, viewportWidth)
}

// NearestIndex 返回中心最接近视口中心的卡片索引
func (t Track) NearestIndex(offset, viewportWidth float64) int {
	if t.Empty() || t.Stride() <= 0 {
		return 0
	}
	// 反解 CenteringOffset：index = (viewportWidth/2 − offset − itemWidth/2) / stride
	raw := (viewportWidth/2 - offset - t.ItemWidth/2) / t.Stride()
	return t.ClampIndex(int(math.Round(raw)))
}

// ItemX 返回第 index 张卡片在视口坐标中的左边缘
func (t Track) ItemX(index int, offset float64) float64 {
	return offset + float64(index)*t.Stride()
}
