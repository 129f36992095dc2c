package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/truview/pkg/carousel"
	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/config"
	"github.com/gonewx/truview/pkg/ecs"
	"github.com/gonewx/truview/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// HomeOptions 首页场景参数
type HomeOptions struct {
	Config *config.CarouselFileConfig

	// Variant 非空时只展示使用该变体的区段（预览单个轮播）
	Variant string

	// ReducedMotion 关闭所有自动播放
	ReducedMotion bool

	ViewportWidth  float64
	ViewportHeight float64

	// WheelInput / PointerInput 可选，测试时注入 mock
	WheelInput   systems.WheelInput
	PointerInput systems.CarouselPointerInput
}

// HomeScene 首页场景
//
// 每个区段是一个实体，带轮播的区段同时挂 CarouselComponent；
// 导航栏和计时器也是实体。Close 关闭所有轮播并销毁全部实体，
// 未触发的计时器随之取消。
type HomeScene struct {
	entityManager *ecs.EntityManager

	pageScroll      *systems.PageScrollSystem
	inputSystem     *systems.CarouselInputSystem
	carouselSystem  *systems.CarouselSystem
	timerSystem     *systems.TimerSystem
	navbarSystem    *systems.NavbarSystem
	transformSystem *systems.SectionTransformSystem
	statsSystem     *systems.StatsRevealSystem
	pageRender      *systems.PageRenderSystem
	navbarRender    *systems.NavbarRenderSystem

	viewportW float64
	viewportH float64

	sections  map[string]ecs.EntityID
	carousels []ecs.EntityID
	navbar    ecs.EntityID

	closed bool
}

// NewHomeScene 创建首页场景
func NewHomeScene(opts HomeOptions) (*HomeScene, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("home scene requires a carousel config")
	}
	if opts.ViewportWidth <= 0 || opts.ViewportHeight <= 0 {
		opts.ViewportWidth, opts.ViewportHeight = config.DefaultWindowWidth, config.DefaultWindowHeight
	}
	if opts.Variant != "" {
		if _, err := opts.Config.Variant(opts.Variant); err != nil {
			return nil, err
		}
	}

	em := ecs.NewEntityManager()
	s := &HomeScene{
		entityManager: em,
		viewportW:     opts.ViewportWidth,
		viewportH:     opts.ViewportHeight,
		sections:      make(map[string]ecs.EntityID),
	}

	if opts.WheelInput != nil {
		s.pageScroll = systems.NewPageScrollSystemWithInput(0, s.viewportH, opts.WheelInput)
	} else {
		s.pageScroll = systems.NewPageScrollSystem(0, s.viewportH)
	}
	if opts.PointerInput != nil {
		s.inputSystem = systems.NewCarouselInputSystemWithInput(em, s.pageScroll, opts.PointerInput)
	} else {
		s.inputSystem = systems.NewCarouselInputSystem(em, s.pageScroll)
	}
	s.carouselSystem = systems.NewCarouselSystem(em, s.pageScroll, s.viewport)
	s.timerSystem = systems.NewTimerSystem(em)
	s.navbarSystem = systems.NewNavbarSystem(em, s.pageScroll)
	s.transformSystem = systems.NewSectionTransformSystem(em)
	s.statsSystem = systems.NewStatsRevealSystem(em)
	s.pageRender = systems.NewPageRenderSystem(em, s.pageScroll)
	s.navbarRender = systems.NewNavbarRenderSystem(em)

	top := 0.0
	for _, spec := range sectionsFor(opts.Variant) {
		height, err := s.addSection(spec, top, opts)
		if err != nil {
			s.Close()
			return nil, err
		}
		top += height
	}
	s.pageScroll.SetPageHeight(top)

	s.addNavbar(opts.Variant == "")

	log.Printf("[HomeScene] created %d sections, %d carousels, page height %.0f", len(s.sections), len(s.carousels), top)
	return s, nil
}

// addSection 创建区段实体，返回区段高度
func (s *HomeScene) addSection(spec sectionSpec, top float64, opts HomeOptions) (float64, error) {
	em := s.entityManager
	id := em.CreateEntity()
	section := &components.SectionComponent{
		Name:       spec.Name,
		Title:      spec.Title,
		Subtitle:   spec.Subtitle,
		Top:        top,
		Height:     ctaHeight,
		Background: spec.Background,
	}
	ecs.AddComponent(em, id, section)
	if spec.Title != "" {
		if spec.HeadingTravel > 0 {
			ecs.AddComponent(em, id, components.NewHeadingTransform(spec.HeadingTravel))
		} else {
			ecs.AddComponent(em, id, components.DefaultHeadingTransform())
		}
	}
	s.sections[spec.Name] = id

	if spec.Stats {
		section.Height = statsHeight
		ecs.AddComponent(em, id, &components.StatsComponent{Items: statItems()})
		return section.Height, nil
	}

	if spec.Variant == "" {
		return section.Height, nil
	}
	variant, err := opts.Config.Variant(spec.Variant)
	if err != nil {
		// 首页区段的变体可以从配置中省略，省略时区段只显示标题
		if opts.Variant == "" {
			log.Printf("[HomeScene] section %s skipped carousel: %v", spec.Name, err)
			return section.Height, nil
		}
		return 0, err
	}
	carouselOpts, err := variant.ToOptions()
	if err != nil {
		return 0, fmt.Errorf("section %s: %w", spec.Name, err)
	}
	if opts.ReducedMotion {
		carouselOpts.Autoplay = false
	}

	cards := cardsFor(spec.Variant)
	comp := &components.CarouselComponent{
		Variant:     spec.Variant,
		Cards:       cards,
		Width:       s.viewportW,
		CardHeight:  variant.ItemHeight,
		DotsOverlay: spec.FullBleed,
	}
	if !spec.FullBleed {
		comp.TopInset = config.SectionPadding + config.SectionHeadingHeight
	}
	engine, err := carousel.New(carouselOpts, len(cards), comp)
	if err != nil {
		return 0, fmt.Errorf("section %s: %w", spec.Name, err)
	}
	comp.Engine = engine
	ecs.AddComponent(em, id, comp)
	ecs.AddComponent(em, id, &components.HoverComponent{})
	s.carousels = append(s.carousels, id)

	if spec.FullBleed {
		section.Height = variant.ItemHeight
	} else {
		section.Height = config.SectionHeight(variant.ItemHeight)
	}

	if spec.CenterOnView {
		section.OnFirstView = func() {
			s.timerSystem.After("center_"+spec.Name, config.CenterOnViewDelay, func() {
				s.pageScroll.ScrollToTarget(section.Top - (s.viewportH-section.Height)/2)
			})
		}
	}
	return section.Height, nil
}

func (s *HomeScene) addNavbar(homePage bool) {
	em := s.entityManager
	s.navbar = em.CreateEntity()
	nav := &components.NavbarComponent{
		Items:    navItems,
		HomePage: homePage,
		Offset:   -config.NavbarHeight,
	}
	ecs.AddComponent(em, s.navbar, nav)
	s.timerSystem.After("navbar_reveal", config.NavbarRevealDelay, func() {
		nav.Revealed = true
	})
}

func (s *HomeScene) viewport() (float64, float64) {
	return s.viewportW, s.viewportH
}

// Resize 窗口逻辑尺寸变化
// 轮播在下一帧由 CarouselSystem 读取新宽度
func (s *HomeScene) Resize(width, height int) {
	if s.closed {
		return
	}
	s.viewportW = float64(width)
	s.viewportH = float64(height)
	s.pageScroll.SetViewportHeight(s.viewportH)
}

// Update 按固定顺序运行各系统
func (s *HomeScene) Update(deltaTime float64) {
	if s.closed {
		return
	}
	s.pageScroll.Update(deltaTime)
	s.inputSystem.Update(deltaTime)
	s.carouselSystem.Update(deltaTime)
	s.timerSystem.Update(deltaTime)
	s.navbarSystem.Update(deltaTime)
	s.transformSystem.Update(deltaTime)
	s.statsSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 渲染页面和导航栏
func (s *HomeScene) Draw(screen *ebiten.Image) {
	if s.closed {
		return
	}
	s.pageRender.Draw(screen)
	s.navbarRender.Draw(screen)
}

// Close 卸载场景：关闭所有轮播，销毁全部实体
func (s *HomeScene) Close() {
	if s.closed {
		return
	}
	for _, id := range s.carousels {
		if c, ok := ecs.GetComponent[*components.CarouselComponent](s.entityManager, id); ok && c.Engine != nil {
			c.Engine.Close()
		}
	}
	s.entityManager.DestroyAll()
	s.entityManager.RemoveMarkedEntities()
	s.closed = true
	log.Printf("[HomeScene] closed")
}

// Carousel 返回指定区段的轮播组件（测试和调试使用）
func (s *HomeScene) Carousel(section string) (*components.CarouselComponent, bool) {
	id, ok := s.sections[section]
	if !ok {
		return nil, false
	}
	return ecs.GetComponent[*components.CarouselComponent](s.entityManager, id)
}

// Section 返回指定名称的区段组件
func (s *HomeScene) Section(name string) (*components.SectionComponent, bool) {
	id, ok := s.sections[name]
	if !ok {
		return nil, false
	}
	return ecs.GetComponent[*components.SectionComponent](s.entityManager, id)
}

// Navbar 返回导航栏组件
func (s *HomeScene) Navbar() (*components.NavbarComponent, bool) {
	return ecs.GetComponent[*components.NavbarComponent](s.entityManager, s.navbar)
}

// ScrollY 当前页面滚动位置
func (s *HomeScene) ScrollY() float64 {
	return s.pageScroll.ScrollY()
}

// EntityCount 场景中的实体数量
func (s *HomeScene) EntityCount() int {
	return s.entityManager.EntityCount()
}

// Closed 是否已卸载
func (s *HomeScene) Closed() bool {
	return s.closed
}
