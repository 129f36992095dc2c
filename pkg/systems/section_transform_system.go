package systems

import (
	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/ecs"
)

// SectionTransformSystem 根据区段滚动进度计算标题的透明度和位移
// 必须在 CarouselSystem 之后运行，进度由它写入
type SectionTransformSystem struct {
	entityManager *ecs.EntityManager
}

// NewSectionTransformSystem 创建区段变换系统
func NewSectionTransformSystem(em *ecs.EntityManager) *SectionTransformSystem {
	return &SectionTransformSystem{entityManager: em}
}

// Update 更新所有区段标题
func (s *SectionTransformSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.SectionComponent, *components.ScrollTransformComponent](s.entityManager)
	for _, entityID := range entities {
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, entityID)
		tr, _ := ecs.GetComponent[*components.ScrollTransformComponent](s.entityManager, entityID)

		tr.Opacity = 1
		if !tr.OpacityFrames.Empty() {
			tr.Opacity = tr.OpacityFrames.At(section.Progress)
		}
		tr.OffsetY = tr.OffsetFrames.At(section.Progress)
	}
}
