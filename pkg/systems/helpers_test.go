package systems

import (
	"testing"

	"github.com/gonewx/truview/pkg/carousel"
	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/ecs"
)

// stubScroll 固定滚动位置，记录 ScrollToTarget 请求
type stubScroll struct {
	y       float64
	targets []float64
}

func (s *stubScroll) ScrollY() float64 { return s.y }

func (s *stubScroll) ScrollToTarget(y float64) { s.targets = append(s.targets, y) }

const (
	testViewportW  = 1280.0
	testViewportH  = 720.0
	testCardHeight = 300.0
)

// newCarouselEntity 创建一个位于页面顶部、宽度等于视口的轮播实体
// 卡片 450 宽、间距 20，初始居中偏移为 (1280-450)/2 = 415
func newCarouselEntity(t *testing.T, em *ecs.EntityManager, count int, mutate func(*carousel.Options)) (ecs.EntityID, *components.CarouselComponent) {
	t.Helper()
	opts := carousel.DefaultOptions()
	opts.Autoplay = false
	if mutate != nil {
		mutate(&opts)
	}

	comp := &components.CarouselComponent{
		Variant:    "test",
		Width:      testViewportW,
		CardHeight: testCardHeight,
	}
	engine, err := carousel.New(opts, count, comp)
	if err != nil {
		t.Fatalf("carousel.New() failed: %v", err)
	}
	comp.Engine = engine

	id := em.CreateEntity()
	ecs.AddComponent(em, id, comp)
	ecs.AddComponent(em, id, &components.SectionComponent{Name: "test", Top: 0, Height: 400})
	return id, comp
}

// settleCarousel 推进引擎直到静止
func settleCarousel(t *testing.T, c *components.CarouselComponent) {
	t.Helper()
	for i := 0; i < 600; i++ {
		if !c.Engine.Update(testFrame) {
			return
		}
	}
	t.Fatal("carousel did not settle within 10s")
}

func sectionOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.SectionComponent {
	t.Helper()
	section, ok := ecs.GetComponent[*components.SectionComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no section", id)
	}
	return section
}
