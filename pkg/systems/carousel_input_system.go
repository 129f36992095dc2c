package systems

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/gonewx/truview/pkg/carousel"
	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/config"
	"github.com/gonewx/truview/pkg/ecs"
	"github.com/gonewx/truview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CarouselPointerInput 轮播输入接口
// 用于依赖注入，支持测试时 mock
type CarouselPointerInput interface {
	CursorPosition() (int, int)
	IsPointerPressed() bool
	IsKeyJustPressed(key ebiten.Key) bool
	// IsTouch 指针是否为触摸；触摸不产生悬停
	IsTouch() bool
}

// ebitenCarouselPointerInput Ebitengine 默认实现
type ebitenCarouselPointerInput struct{}

func (e *ebitenCarouselPointerInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenCarouselPointerInput) IsPointerPressed() bool {
	// 使用支持触摸的按下检测
	return utils.IsPointerPressed()
}

func (e *ebitenCarouselPointerInput) IsTouch() bool {
	return utils.IsTouchInput()
}

func (e *ebitenCarouselPointerInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// defaultCarouselPointerInput 默认输入实例
var defaultCarouselPointerInput CarouselPointerInput = &ebitenCarouselPointerInput{}

// hoverFadeRate 悬停高亮每秒变化量
const hoverFadeRate = 4.0

// CarouselInputSystem 轮播交互系统
// 负责把指针和键盘输入翻译为引擎调用
//
// 职责：
//   - 在卡片行按下 ⇒ DragStart，移动 ⇒ DragMove，抬起 ⇒ DragEnd
//   - 移动距离小于 ClickSlop 的按下抬起视为点击：点到非激活卡片时 GoTo
//   - 左右箭头区、导航圆点 ⇒ Previous / Next / GoTo
//   - 鼠标悬停时左右方向键导航，并暂停自动播放；触摸没有悬停
type CarouselInputSystem struct {
	entityManager *ecs.EntityManager
	scroll        ScrollProvider
	input         CarouselPointerInput

	// now 系统内部时钟，作为拖拽采样的时间戳
	now        time.Duration
	wasPressed bool
}

// NewCarouselInputSystem 创建轮播交互系统
func NewCarouselInputSystem(em *ecs.EntityManager, scroll ScrollProvider) *CarouselInputSystem {
	return NewCarouselInputSystemWithInput(em, scroll, defaultCarouselPointerInput)
}

// NewCarouselInputSystemWithInput 创建带自定义输入的轮播交互系统（用于测试）
func NewCarouselInputSystemWithInput(em *ecs.EntityManager, scroll ScrollProvider, input CarouselPointerInput) *CarouselInputSystem {
	return &CarouselInputSystem{
		entityManager: em,
		scroll:        scroll,
		input:         input,
	}
}

// Update 处理本帧输入
func (s *CarouselInputSystem) Update(deltaTime float64) {
	s.now += time.Duration(deltaTime * float64(time.Second))

	pressed := s.input.IsPointerPressed()
	mx, my := s.input.CursorPosition()
	touch := s.input.IsTouch()
	x, y := float64(mx), float64(my)
	justPressed := pressed && !s.wasPressed
	justReleased := !pressed && s.wasPressed
	s.wasPressed = pressed

	scrollY := s.scroll.ScrollY()

	entities := ecs.GetEntitiesWith2[*components.CarouselComponent, *components.SectionComponent](s.entityManager)
	for _, entityID := range entities {
		c, _ := ecs.GetComponent[*components.CarouselComponent](s.entityManager, entityID)
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, entityID)
		if c == nil || section == nil || c.Engine == nil || c.Engine.Closed() {
			continue
		}

		l := layoutCarousel(c, section, scrollY)
		// 触摸只在按住期间算悬停，手指抬起后立即恢复自动播放
		inside := l.contains(x, y)
		hovered := c.Press != nil || (inside && !touch)
		s.updateHover(entityID, c, hovered, deltaTime)

		switch {
		case justPressed && inside:
			s.handlePress(c, l, x, y)
		case c.Press != nil && pressed:
			s.handleMove(c, x)
		case c.Press != nil && justReleased:
			s.handleRelease(c, l, x, y)
		}

		if hovered && c.Press == nil {
			if s.input.IsKeyJustPressed(ebiten.KeyArrowLeft) {
				s.navigate(c, carousel.NavPrevious)
			}
			if s.input.IsKeyJustPressed(ebiten.KeyArrowRight) {
				s.navigate(c, carousel.NavNext)
			}
		}
	}
}

func (s *CarouselInputSystem) updateHover(entityID ecs.EntityID, c *components.CarouselComponent, hovered bool, dt float64) {
	c.Engine.SetHover(hovered)

	hover, ok := ecs.GetComponent[*components.HoverComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	hover.IsHovered = hovered
	target := 0.0
	if hovered {
		target = 1.0
	}
	hover.Intensity = utils.Approach(hover.Intensity, target, hoverFadeRate, dt)
}

func (s *CarouselInputSystem) handlePress(c *components.CarouselComponent, l carouselLayout, x, y float64) {
	count := c.Engine.Track().ItemCount
	if dot := l.dotAt(count, c.Engine.ActiveIndex(), x, y); dot >= 0 {
		s.navigate(c, carousel.NavIndex(dot))
		return
	}
	switch l.arrowAt(x, y) {
	case -1:
		s.navigate(c, carousel.NavPrevious)
		return
	case 1:
		s.navigate(c, carousel.NavNext)
		return
	}
	if !l.inCards(x, y) {
		return
	}

	c.Press = &components.PressState{StartX: x, StartY: y}
	err := c.Engine.DragStart(x, s.now)
	switch {
	case err == nil:
		c.Press.Dragging = true
	case errors.Is(err, carousel.ErrDragDisabled):
		// 滚动驱动的轮播不能拖拽，但仍然记录按下以便识别点击
	default:
		log.Printf("[CarouselInput] %s: drag start rejected: %v", c.Variant, err)
	}
}

func (s *CarouselInputSystem) handleMove(c *components.CarouselComponent, x float64) {
	p := c.Press
	p.MaxTravel = math.Max(p.MaxTravel, math.Abs(x-p.StartX))
	if !p.Dragging {
		return
	}
	if err := c.Engine.DragMove(x, s.now); err != nil {
		log.Printf("[CarouselInput] %s: drag move failed: %v", c.Variant, err)
	}
}

func (s *CarouselInputSystem) handleRelease(c *components.CarouselComponent, l carouselLayout, x, y float64) {
	p := c.Press
	c.Press = nil
	p.MaxTravel = math.Max(p.MaxTravel, math.Abs(x-p.StartX))

	if p.MaxTravel < config.ClickSlop {
		if p.Dragging {
			if err := c.Engine.DragCancel(); err != nil {
				log.Printf("[CarouselInput] %s: drag cancel failed: %v", c.Variant, err)
			}
		}
		card := l.cardAt(c.Engine.Frame(), x, y)
		if card >= 0 && card != c.Engine.ActiveIndex() {
			s.navigate(c, carousel.NavIndex(card))
		}
		return
	}

	if !p.Dragging {
		return
	}
	if err := c.Engine.DragEnd(x, s.now); err != nil {
		log.Printf("[CarouselInput] %s: drag end failed: %v", c.Variant, err)
	}
}

func (s *CarouselInputSystem) navigate(c *components.CarouselComponent, target carousel.NavTarget) {
	if err := c.Engine.Navigate(target); err != nil {
		log.Printf("[CarouselInput] %s: %v", c.Variant, err)
	}
}
