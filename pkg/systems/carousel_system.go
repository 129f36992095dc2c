package systems

import (
	"log"

	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/config"
	"github.com/gonewx/truview/pkg/ecs"
	"github.com/gonewx/truview/pkg/utils"
)

// ViewportSize 返回当前逻辑视口尺寸
type ViewportSize func() (width, height float64)

// CarouselSystem 区段可见性与轮播推进系统
//
// 每帧：
//  1. 计算每个区段的可见比例和滚动进度，首次进入视口时触发 OnFirstView
//  2. 视口宽度变化时通知轮播 HandleResize
//  3. 把可见性和滚动进度转交给轮播引擎，然后推进一帧
type CarouselSystem struct {
	entityManager *ecs.EntityManager
	scroll        ScrollProvider
	viewport      ViewportSize
}

// NewCarouselSystem 创建轮播系统
func NewCarouselSystem(em *ecs.EntityManager, scroll ScrollProvider, viewport ViewportSize) *CarouselSystem {
	return &CarouselSystem{
		entityManager: em,
		scroll:        scroll,
		viewport:      viewport,
	}
}

// Update 更新区段和轮播
func (s *CarouselSystem) Update(deltaTime float64) {
	vw, vh := s.viewport()
	scrollY := s.scroll.ScrollY()

	for _, entityID := range ecs.GetEntitiesWith1[*components.SectionComponent](s.entityManager) {
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, entityID)
		s.updateSection(section, scrollY, vh)
	}

	entities := ecs.GetEntitiesWith2[*components.CarouselComponent, *components.SectionComponent](s.entityManager)
	for _, entityID := range entities {
		c, _ := ecs.GetComponent[*components.CarouselComponent](s.entityManager, entityID)
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, entityID)
		if c.Engine == nil || c.Engine.Closed() {
			continue
		}

		width := max(0, vw-2*c.X)
		if width != c.Width {
			c.Width = width
			if c.Engine.HandleResize() {
				log.Printf("[Carousel] %s: viewport width changed to %.0f", c.Variant, width)
			}
		}

		c.Engine.SetInView(section.InView)
		c.Engine.SetScrollProgress(section.Progress)
		c.Engine.Update(deltaTime)
	}
}

func (s *CarouselSystem) updateSection(section *components.SectionComponent, scrollY, viewportH float64) {
	section.InView = VisibleRatio(section.Top-scrollY, section.Height, viewportH) >= config.InViewRatio
	section.Progress = SectionProgress(section.Top, section.Height, scrollY, viewportH)

	if section.InView && !section.SeenOnce {
		section.SeenOnce = true
		log.Printf("[Section] %s entered view", section.Name)
		if section.OnFirstView != nil {
			section.OnFirstView()
		}
	}
}

// VisibleRatio 区段在视口中的可见比例
// 比视口高的区段以视口高度为分母，占满视口即视为完全可见
func VisibleRatio(screenTop, height, viewportH float64) float64 {
	if height <= 0 || viewportH <= 0 {
		return 0
	}
	overlap := min(screenTop+height, viewportH) - max(screenTop, 0)
	if overlap <= 0 {
		return 0
	}
	return overlap / min(height, viewportH)
}

// SectionProgress 区段滚动进度
// 区段顶部到达视口底部为 0，区段底部离开视口顶部为 1
func SectionProgress(top, height, scrollY, viewportH float64) float64 {
	span := viewportH + height
	if span <= 0 {
		return 0
	}
	return utils.Clamp((scrollY+viewportH-top)/span, 0, 1)
}
