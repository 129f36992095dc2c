package carousel

import (
	"errors"
	"math"
	"testing"
	"time"
)

func newTestCarousel(t *testing.T, mutate func(*Options), count int) *Carousel {
	t.Helper()
	opts := DefaultOptions()
	opts.Autoplay = false
	if mutate != nil {
		mutate(&opts)
	}
	c, err := New(opts, count, FixedViewport(1200))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func settle(t *testing.T, c *Carousel) {
	t.Helper()
	for i := 0; i < 1200; i++ {
		if !c.Update(frameDt) {
			return
		}
	}
	t.Fatal("轮播在 20 秒内没有到位")
}

// drag 模拟一次缓慢的拖拽：按下、移动、抬起，速度远低于甩动阈值
func drag(t *testing.T, c *Carousel, from, to float64) {
	t.Helper()
	if err := c.DragStart(from, 0); err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	if err := c.DragMove((from+to)/2, 300*time.Millisecond); err != nil {
		t.Fatalf("DragMove() error = %v", err)
	}
	if err := c.DragMove(to, 600*time.Millisecond); err != nil {
		t.Fatalf("DragMove() error = %v", err)
	}
	if err := c.DragEnd(to, 900*time.Millisecond); err != nil {
		t.Fatalf("DragEnd() error = %v", err)
	}
}

// TestInputCoordinator_DragThreshold itemWidth=450, gap=20, 4 张卡片，从索引 1 开始
func TestInputCoordinator_DragThreshold(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		expected int
	}{
		{"向左拖 200px 前进一张", 600, 400, 2},
		{"向左拖 50px 回弹", 600, 550, 1},
		{"向右拖 200px 后退一张", 400, 600, 0},
		{"向右拖 150px 未过 stride/3 回弹", 400, 550, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCarousel(t, nil, 4)
			if err := c.GoTo(1); err != nil {
				t.Fatalf("GoTo(1) error = %v", err)
			}
			settle(t, c)

			drag(t, c, tt.from, tt.to)
			if got := c.ActiveIndex(); got != tt.expected {
				t.Errorf("ActiveIndex() = %d, 期望 %d", got, tt.expected)
			}
			if c.State().Drag != nil {
				t.Error("拖拽结束后 Drag 应为 nil")
			}

			settle(t, c)
			want := c.Track().CenteringOffset(tt.expected, 1200)
			if diff := c.State().CurrentOffset - want; diff > SettleEpsilon || diff < -SettleEpsilon {
				t.Errorf("回到弹簧后偏移 = %v, 期望 %v", c.State().CurrentOffset, want)
			}
		})
	}
}

// TestInputCoordinator_FlickVelocity 短距离快速甩动也会翻页
func TestInputCoordinator_FlickVelocity(t *testing.T) {
	c := newTestCarousel(t, nil, 4)

	_ = c.DragStart(600, 0)
	_ = c.DragMove(590, 10*time.Millisecond)
	_ = c.DragMove(560, 50*time.Millisecond)
	// 40px / 0.05s = 800 px/s
	if err := c.DragEnd(560, 50*time.Millisecond); err != nil {
		t.Fatalf("DragEnd() error = %v", err)
	}
	if got := c.ActiveIndex(); got != 1 {
		t.Errorf("快速甩动后 ActiveIndex() = %d, 期望 1", got)
	}
}

// TestInputCoordinator_StaleVelocityIgnored 停顿超过速度窗口后松手不算甩动
func TestInputCoordinator_StaleVelocityIgnored(t *testing.T) {
	c := newTestCarousel(t, nil, 4)

	_ = c.DragStart(600, 0)
	_ = c.DragMove(540, 20*time.Millisecond)
	_ = c.DragMove(540, 500*time.Millisecond)
	_ = c.DragEnd(540, 520*time.Millisecond)

	if got := c.ActiveIndex(); got != 0 {
		t.Errorf("停顿后松手 ActiveIndex() = %d, 期望 0", got)
	}
}

// TestInputCoordinator_DragFollowsPointer 拖拽期间偏移跟随指针
func TestInputCoordinator_DragFollowsPointer(t *testing.T) {
	c := newTestCarousel(t, nil, 4)
	if err := c.GoTo(1); err != nil {
		t.Fatal(err)
	}
	settle(t, c)

	start := c.State().CurrentOffset
	_ = c.DragStart(500, 0)
	_ = c.DragMove(380, 100*time.Millisecond)
	if got := c.State().CurrentOffset; got != start-120 {
		t.Errorf("CurrentOffset = %v, 期望 %v", got, start-120)
	}
	// 拖拽期间 Update 不能覆盖拖拽设置的偏移
	c.Update(frameDt)
	if got := c.State().CurrentOffset; got != start-120 {
		t.Errorf("Update 覆盖了拖拽偏移: %v", got)
	}
}

// TestInputCoordinator_DragExclusivity 重复 DragStart 被拒绝且状态不变
func TestInputCoordinator_DragExclusivity(t *testing.T) {
	c := newTestCarousel(t, nil, 4)
	if err := c.GoTo(1); err != nil {
		t.Fatal(err)
	}
	settle(t, c)

	if err := c.DragStart(500, 0); err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	_ = c.DragMove(450, 50*time.Millisecond)
	before := c.State()

	err := c.DragStart(100, 60*time.Millisecond)
	if !errors.Is(err, ErrDragInProgress) {
		t.Fatalf("重复 DragStart 应返回 ErrDragInProgress, got %v", err)
	}
	after := c.State()
	if after.ActiveIndex != before.ActiveIndex {
		t.Errorf("ActiveIndex 被修改: %d -> %d", before.ActiveIndex, after.ActiveIndex)
	}
	if after.Drag.StartOffset != before.Drag.StartOffset || after.Drag.StartPointer != before.Drag.StartPointer {
		t.Error("重复 DragStart 修改了拖拽起点")
	}
}

// TestInputCoordinator_NavigationRejectedDuringDrag 拖拽期间拒绝导航
func TestInputCoordinator_NavigationRejectedDuringDrag(t *testing.T) {
	c := newTestCarousel(t, nil, 4)
	_ = c.DragStart(500, 0)

	for _, nav := range []func() error{c.Next, c.Previous, func() error { return c.GoTo(3) }} {
		if err := nav(); !errors.Is(err, ErrDragInProgress) {
			t.Errorf("拖拽期间导航应返回 ErrDragInProgress, got %v", err)
		}
	}
	if c.ActiveIndex() != 0 {
		t.Errorf("拖拽期间索引被修改为 %d", c.ActiveIndex())
	}

	_ = c.DragEnd(500, 100*time.Millisecond)
	if err := c.Next(); err != nil {
		t.Errorf("拖拽结束后重新导航失败: %v", err)
	}
	if c.ActiveIndex() != 1 {
		t.Errorf("ActiveIndex() = %d, 期望 1", c.ActiveIndex())
	}
}

// TestInputCoordinator_AutoplaySuspension 拖拽挂起自动播放，结束后恢复
func TestInputCoordinator_AutoplaySuspension(t *testing.T) {
	c := newTestCarousel(t, func(o *Options) { o.Autoplay = true }, 4)

	if c.State().Autoplay.Suspended {
		t.Fatal("初始状态不应挂起")
	}
	_ = c.DragStart(500, 0)
	if !c.State().Autoplay.Suspended {
		t.Error("开始拖拽后 Autoplay.Suspended 应为 true")
	}
	_ = c.DragEnd(500, 100*time.Millisecond)
	if c.State().Autoplay.Suspended {
		t.Error("结束拖拽后 Autoplay.Suspended 应为 false")
	}

	// 悬停来源仍在时，拖拽结束不应恢复
	c.SetHover(true)
	_ = c.DragStart(500, time.Second)
	_ = c.DragEnd(500, time.Second+100*time.Millisecond)
	if !c.State().Autoplay.Suspended {
		t.Error("悬停期间结束拖拽不应恢复自动播放")
	}
}

// TestInputCoordinator_WrapAround 回绕策略下拖拽越过两端
func TestInputCoordinator_WrapAround(t *testing.T) {
	c := newTestCarousel(t, nil, 4)

	drag(t, c, 400, 700)
	if got := c.ActiveIndex(); got != 3 {
		t.Errorf("在第一张向右拖后 ActiveIndex() = %d, 期望 3", got)
	}
	drag(t, c, 700, 400)
	if got := c.ActiveIndex(); got != 0 {
		t.Errorf("在最后一张向左拖后 ActiveIndex() = %d, 期望 0", got)
	}
}

// TestInputCoordinator_EdgeResistance 夹紧策略下越界拖拽有阻尼且不回绕
func TestInputCoordinator_EdgeResistance(t *testing.T) {
	c := newTestCarousel(t, func(o *Options) { o.Edge = EdgeClamp }, 4)
	start := c.State().CurrentOffset

	_ = c.DragStart(400, 0)
	_ = c.DragMove(500, 300*time.Millisecond)
	want := start + 100*DefaultEdgeResistance
	if got := c.State().CurrentOffset; math.Abs(got-want) > 1e-9 {
		t.Errorf("越界拖拽偏移 = %v, 期望 %v", got, want)
	}
	_ = c.DragEnd(600, 600*time.Millisecond)
	if got := c.ActiveIndex(); got != 0 {
		t.Errorf("夹紧策略下 ActiveIndex() = %d, 期望 0", got)
	}
}

// TestInputCoordinator_SingleItem 只有一张卡片时拖拽结束不改变索引
func TestInputCoordinator_SingleItem(t *testing.T) {
	c := newTestCarousel(t, nil, 1)
	drag(t, c, 600, 100)
	if got := c.ActiveIndex(); got != 0 {
		t.Errorf("ActiveIndex() = %d, 期望 0", got)
	}
	if c.Dragging() {
		t.Error("拖拽应已结束")
	}
	settle(t, c)
}

// TestInputCoordinator_DragCancel 取消拖拽回弹到当前卡片
func TestInputCoordinator_DragCancel(t *testing.T) {
	c := newTestCarousel(t, nil, 4)
	_ = c.DragStart(600, 0)
	_ = c.DragMove(100, 50*time.Millisecond)

	if err := c.DragCancel(); err != nil {
		t.Fatalf("DragCancel() error = %v", err)
	}
	if c.ActiveIndex() != 0 || c.Dragging() {
		t.Errorf("取消后 ActiveIndex=%d Dragging=%v", c.ActiveIndex(), c.Dragging())
	}
	if err := c.DragCancel(); !errors.Is(err, ErrNoDrag) {
		t.Errorf("没有拖拽时 DragCancel 应返回 ErrNoDrag, got %v", err)
	}
	if err := c.DragMove(10, 0); !errors.Is(err, ErrNoDrag) {
		t.Errorf("没有拖拽时 DragMove 应返回 ErrNoDrag, got %v", err)
	}
}

// TestInputCoordinator_DragInterruptsAnimation 新拖拽直接接管未到位的动画
func TestInputCoordinator_DragInterruptsAnimation(t *testing.T) {
	c := newTestCarousel(t, nil, 4)
	_ = c.Next()
	for i := 0; i < 5; i++ {
		c.Update(frameDt)
	}
	mid := c.State().CurrentOffset
	if mid == c.State().TargetOffset {
		t.Fatal("5 帧后动画不应已完成")
	}

	if err := c.DragStart(500, 0); err != nil {
		t.Fatalf("动画中开始拖拽失败: %v", err)
	}
	if got := c.State().Drag.StartOffset; got != mid {
		t.Errorf("StartOffset = %v, 期望从当前偏移 %v 接管", got, mid)
	}
}
