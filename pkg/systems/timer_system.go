package systems

import (
	"log"

	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/ecs"
)

// TimerSystem 计时器系统
// 推进所有 TimerComponent，到时后调用一次 OnFire 并销毁计时器实体
type TimerSystem struct {
	entityManager *ecs.EntityManager
}

// NewTimerSystem 创建计时器系统
func NewTimerSystem(em *ecs.EntityManager) *TimerSystem {
	return &TimerSystem{entityManager: em}
}

// After 创建一个 delay 秒后触发的计时器实体
func (s *TimerSystem) After(name string, delay float64, fn func()) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.TimerComponent{
		Name:       name,
		TargetTime: delay,
		OnFire:     fn,
	})
	return id
}

// Update 推进计时器
func (s *TimerSystem) Update(deltaTime float64) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, entityID)
		if timer == nil || timer.IsReady {
			continue
		}

		timer.CurrentTime += deltaTime
		if timer.CurrentTime < timer.TargetTime {
			continue
		}

		timer.IsReady = true
		log.Printf("[TimerSystem] %s fired after %.2fs", timer.Name, timer.CurrentTime)
		if timer.OnFire != nil {
			timer.OnFire()
		}
		s.entityManager.DestroyEntity(entityID)
	}
}
