package carousel

import (
	"fmt"
	"math"
)

// Keyframes 分段线性映射，输入超出范围时取端点值
//
// 例如 In=[0,0.2,0.8,1], Out=[50,0,0,-50] 表示进入区段时从 50 移到 0，
// 中段保持，离开时移到 -50。
type Keyframes struct {
	In  []float64
	Out []float64
}

// Empty 是否未配置
func (k Keyframes) Empty() bool {
	return len(k.In) == 0
}

// Validate 输入必须严格递增且与输出等长
func (k Keyframes) Validate() error {
	if len(k.In) != len(k.Out) {
		return fmt.Errorf("%w: keyframes have %d inputs but %d outputs", ErrInvalidOptions, len(k.In), len(k.Out))
	}
	for i := 1; i < len(k.In); i++ {
		if k.In[i] <= k.In[i-1] {
			return fmt.Errorf("%w: keyframe inputs must be strictly increasing at %d", ErrInvalidOptions, i)
		}
	}
	return nil
}

// At 返回 x 处的映射值，未配置时返回 0
func (k Keyframes) At(x float64) float64 {
	n := len(k.In)
	if n == 0 || len(k.Out) != n {
		return 0
	}
	if x <= k.In[0] {
		return k.Out[0]
	}
	if x >= k.In[n-1] {
		return k.Out[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= k.In[i] {
			t := (x - k.In[i-1]) / (k.In[i] - k.In[i-1])
			return k.Out[i-1] + (k.Out[i]-k.Out[i-1])*t
		}
	}
	return k.Out[n-1]
}

// ScrollBinding 把所在区段的页面滚动进度映射为轨道目标或视差偏移
//
// 进度 0 表示区段顶部刚进入视口底部，1 表示区段底部离开视口顶部。
// 绑定对索引只读：滚动驱动选择的变体不会同时运行自动播放或拖拽。
type ScrollBinding struct {
	selects  bool
	parallax Keyframes
	progress float64
}

// NewScrollBinding 创建滚动绑定；selects 为 true 时进度直接决定居中卡片
func NewScrollBinding(selects bool, parallax Keyframes) *ScrollBinding {
	return &ScrollBinding{selects: selects, parallax: parallax}
}

// SetProgress 更新进度，返回夹紧后的值
func (sb *ScrollBinding) SetProgress(p float64) float64 {
	if math.IsNaN(p) {
		p = 0
	}
	sb.progress = math.Max(0, math.Min(1, p))
	return sb.progress
}

// Progress 当前进度
func (sb *ScrollBinding) Progress() float64 {
	return sb.progress
}

// Selects 是否由滚动选择卡片
func (sb *ScrollBinding) Selects() bool {
	return sb.selects
}

// TargetOffset 在首尾两张卡片的居中偏移之间按进度插值
func (sb *ScrollBinding) TargetOffset(track Track, viewportWidth float64) float64 {
	if track.Empty() {
		return 0
	}
	first := track.CenteringOffset(0, viewportWidth)
	last := track.CenteringOffset(track.ItemCount-1, viewportWidth)
	return first + (last-first)*sb.progress
}

// ParallaxY 卡片图片层的视差偏移
func (sb *ScrollBinding) ParallaxY() float64 {
	return sb.parallax.At(sb.progress)
}
