package systems

import (
	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/ecs"
	"github.com/gonewx/truview/pkg/utils"
)

const (
	// statRevealDuration 单个数据条目的出场时长（秒）
	statRevealDuration = 0.5
	// statRevealRise 出场前向下的位移
	statRevealRise = 20.0
	// statRevealStartScale 数字出场前的缩放
	statRevealStartScale = 0.5
)

// StatsRevealSystem 数据区段出场动画
// 区段第一次进入视口（SeenOnce）后开始计时，之后离开视口也不会重播
type StatsRevealSystem struct {
	entityManager *ecs.EntityManager
}

// NewStatsRevealSystem 创建数据出场系统
func NewStatsRevealSystem(em *ecs.EntityManager) *StatsRevealSystem {
	return &StatsRevealSystem{entityManager: em}
}

// Update 推进出场动画
// 必须在 CarouselSystem 之后运行，SeenOnce 由它写入
func (s *StatsRevealSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.SectionComponent, *components.StatsComponent](s.entityManager)
	for _, entityID := range entities {
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, entityID)
		stats, _ := ecs.GetComponent[*components.StatsComponent](s.entityManager, entityID)

		if section.SeenOnce {
			stats.Elapsed += deltaTime
		}
		for i := range stats.Items {
			item := &stats.Items[i]
			t := 0.0
			if section.SeenOnce {
				t = utils.Clamp((stats.Elapsed-item.Delay)/statRevealDuration, 0, 1)
			}
			e := utils.EaseOutCubic(t)
			item.Opacity = e
			item.OffsetY = utils.Lerp(statRevealRise, 0, e)
			item.Scale = utils.Lerp(statRevealStartScale, 1, e)
		}
	}
}
