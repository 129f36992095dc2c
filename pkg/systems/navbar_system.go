package systems

import (
	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/config"
	"github.com/gonewx/truview/pkg/ecs"
	"github.com/gonewx/truview/pkg/utils"
)

// navbarSlideRate 导航栏每秒滑动的像素数
const navbarSlideRate = config.NavbarHeight * 4

// NavbarSystem 导航栏状态系统
//
// 职责：
//   - 滚动超过阈值后切换为实心背景
//   - 首页向下滚动时收起，向上滚动时出现
//   - 未到出现时间（Revealed 为 false）时保持收起
type NavbarSystem struct {
	entityManager *ecs.EntityManager
	scroll        ScrollProvider
}

// NewNavbarSystem 创建导航栏系统
func NewNavbarSystem(em *ecs.EntityManager, scroll ScrollProvider) *NavbarSystem {
	return &NavbarSystem{entityManager: em, scroll: scroll}
}

// Update 更新导航栏状态
func (s *NavbarSystem) Update(deltaTime float64) {
	y := s.scroll.ScrollY()

	for _, entityID := range ecs.GetEntitiesWith1[*components.NavbarComponent](s.entityManager) {
		nav, _ := ecs.GetComponent[*components.NavbarComponent](s.entityManager, entityID)

		nav.Scrolled = y > config.NavbarScrolledThreshold

		// 只在滚动位置变化时判断方向，静止时保持上一次的状态
		if nav.HomePage && y != nav.LastScrollY {
			nav.Hidden = y > nav.LastScrollY
		}
		nav.LastScrollY = y

		target := 0.0
		if nav.Hidden || !nav.Revealed {
			target = -config.NavbarHeight
		}
		nav.Offset = utils.Approach(nav.Offset, target, navbarSlideRate, deltaTime)
	}
}
