package systems

import (
	"testing"

	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/ecs"
)

func TestTimerSystem_FiresOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewTimerSystem(em)

	fired := 0
	id := sys.After("center_testimonials", 0.1, func() { fired++ })

	// 0.1 秒 = 6 帧；浮点累加可能需要第 7 帧
	for i := 0; i < 5; i++ {
		sys.Update(testFrame)
		em.RemoveMarkedEntities()
	}
	if fired != 0 {
		t.Fatalf("timer fired early after %d frames", 5)
	}

	for i := 0; i < 10; i++ {
		sys.Update(testFrame)
		em.RemoveMarkedEntities()
	}
	if fired != 1 {
		t.Errorf("timer fired %d times, want 1", fired)
	}
	if em.Exists(id) {
		t.Error("timer entity should be destroyed after firing")
	}
}

func TestTimerSystem_ReadyTimerDoesNotRefire(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewTimerSystem(em)

	fired := 0
	sys.After("once", 0, func() { fired++ })

	// 不清理标记的实体，计时器仍在，但 IsReady 阻止再次触发
	sys.Update(testFrame)
	sys.Update(testFrame)
	if fired != 1 {
		t.Errorf("timer fired %d times, want 1", fired)
	}
}

func TestTimerSystem_DestroyedTimerNeverFires(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewTimerSystem(em)

	fired := false
	sys.After("navbar_reveal", 2.8, func() { fired = true })
	sys.Update(1.0)

	// 场景卸载：销毁所有实体即取消计时器
	em.DestroyAll()
	em.RemoveMarkedEntities()
	sys.Update(5.0)

	if fired {
		t.Error("timer fired after its entity was destroyed")
	}
	if n := len(ecs.GetEntitiesWith1[*components.TimerComponent](em)); n != 0 {
		t.Errorf("%d timers left after teardown", n)
	}
}
