package systems

import (
	"image"
	"image/color"

	"github.com/gonewx/truview/pkg/carousel"
	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/config"
	"github.com/gonewx/truview/pkg/content"
	"github.com/gonewx/truview/pkg/ecs"
	"github.com/gonewx/truview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 页面配色
var (
	colorCard        = color.RGBA{R: 0xf4, G: 0xf4, B: 0xf5, A: 0xff}
	colorCardActive  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorCardImage   = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	colorHighlight   = color.RGBA{R: 0xc8, G: 0xa9, B: 0x6e, A: 0xff}
	colorTextDark    = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	colorTextMuted   = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	colorTextLight   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorDot         = color.RGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff}
	colorDotActive   = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	colorArrow       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorNavbarSolid = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6}
)

// 字号
const (
	headingFontSize  = 40
	subtitleFontSize = 18
	cardTitleSize    = 22
	cardBodySize     = 15
	cardPadding      = 20.0
	cardLineHeight   = 20.0
	statNumberSize   = 48
	statColumnWidth  = 320.0
)

var whitePixel *ebiten.Image

// fillRect 用 1x1 白色图片缩放绘制纯色矩形
func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color, alpha float32) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(whitePixel, op)
}

// drawText 在 (x, y) 处绘制文字，y 为文字顶部
func drawText(dst *ebiten.Image, str string, size float64, x, y float64, clr color.Color, alpha float32) {
	face := utils.DefaultFace(size)
	if face == nil || str == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, str, face, op)
}

// drawCenteredText 以 cx 为中心水平居中绘制文字
func drawCenteredText(dst *ebiten.Image, str string, size float64, cx, y float64, clr color.Color, alpha float32) {
	face := utils.DefaultFace(size)
	if face == nil {
		return
	}
	w, _ := text.Measure(str, face, 0)
	drawText(dst, str, size, cx-w/2, y, clr, alpha)
}

// PageRenderSystem 页面渲染系统
// 负责渲染区段背景、区段标题、轮播卡片、导航圆点和箭头
type PageRenderSystem struct {
	entityManager *ecs.EntityManager
	scroll        ScrollProvider
}

// NewPageRenderSystem 创建页面渲染系统
func NewPageRenderSystem(em *ecs.EntityManager, scroll ScrollProvider) *PageRenderSystem {
	return &PageRenderSystem{entityManager: em, scroll: scroll}
}

// Draw 渲染整个页面
func (s *PageRenderSystem) Draw(screen *ebiten.Image) {
	scrollY := s.scroll.ScrollY()
	bounds := screen.Bounds()
	screenW := float64(bounds.Dx())
	screenH := float64(bounds.Dy())

	for _, entityID := range ecs.GetEntitiesWith1[*components.SectionComponent](s.entityManager) {
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, entityID)
		top := section.Top - scrollY
		if top > screenH || top+section.Height < 0 {
			continue
		}

		fillRect(screen, 0, top, screenW, section.Height, section.Background, 1)
		s.drawHeading(screen, entityID, section, top, screenW)

		if c, ok := ecs.GetComponent[*components.CarouselComponent](s.entityManager, entityID); ok && c.Engine != nil {
			s.drawCarousel(screen, entityID, c, section, scrollY)
		}
		if stats, ok := ecs.GetComponent[*components.StatsComponent](s.entityManager, entityID); ok {
			drawStats(screen, stats, top, screenW)
		}
	}
}

// drawStats 数据条目横向等宽排列，整体居中
func drawStats(screen *ebiten.Image, stats *components.StatsComponent, top, screenW float64) {
	n := len(stats.Items)
	if n == 0 {
		return
	}
	colW := min(statColumnWidth, screenW/float64(n))
	left := (screenW - colW*float64(n)) / 2
	for i, item := range stats.Items {
		cx := left + colW*(float64(i)+0.5)
		y := top + config.SectionPadding + item.OffsetY
		alpha := float32(item.Opacity)
		drawScaledNumber(screen, item.Number, cx, y+statNumberSize/2, item.Scale, alpha)
		drawCenteredText(screen, item.Label, subtitleFontSize, cx, y+statNumberSize+12, colorTextMuted, alpha)
	}
}

// drawScaledNumber 以 (cx, cy) 为中心按 scale 缩放绘制
// 字号固定，缩放走 GeoM
func drawScaledNumber(dst *ebiten.Image, str string, cx, cy, scale float64, alpha float32) {
	face := utils.DefaultFace(statNumberSize)
	if face == nil || alpha <= 0 || scale <= 0 {
		return
	}
	w, h := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(colorTextDark)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, str, face, op)
}

func (s *PageRenderSystem) drawHeading(screen *ebiten.Image, entityID ecs.EntityID, section *components.SectionComponent, top, screenW float64) {
	if section.Title == "" {
		return
	}
	alpha := float32(1)
	offsetY := 0.0
	if tr, ok := ecs.GetComponent[*components.ScrollTransformComponent](s.entityManager, entityID); ok {
		alpha = float32(tr.Opacity)
		offsetY = tr.OffsetY
	}
	y := top + config.SectionPadding + offsetY
	drawCenteredText(screen, section.Title, headingFontSize, screenW/2, y, colorTextDark, alpha)
	drawCenteredText(screen, section.Subtitle, subtitleFontSize, screenW/2, y+headingFontSize+16, colorTextMuted, alpha)
}

func (s *PageRenderSystem) drawCarousel(screen *ebiten.Image, entityID ecs.EntityID, c *components.CarouselComponent, section *components.SectionComponent, scrollY float64) {
	l := layoutCarousel(c, section, scrollY)
	frame := c.Engine.Frame()

	highlight := 0.0
	if hover, ok := ecs.GetComponent[*components.HoverComponent](s.entityManager, entityID); ok {
		highlight = utils.EaseOutCubic(hover.Intensity)
	}

	// 卡片裁剪在轮播视口内
	clip := image.Rect(int(l.X), int(l.Y), int(l.X+l.W), int(l.Y+l.H)).Intersect(screen.Bounds())
	if !clip.Empty() {
		dst := screen.SubImage(clip).(*ebiten.Image)
		for _, item := range frame.Items {
			x := l.X + item.X
			if x+l.ItemWidth < l.X || x > l.X+l.W {
				continue
			}
			var card content.Card
			if item.Index < len(c.Cards) {
				card = c.Cards[item.Index]
			}
			drawCard(dst, card, item, x, l.Y, l.ItemWidth, l.H, highlight)
		}
	}

	if c.Engine.Options().Control == carousel.ControlInteractive && frame.ActiveIndex >= 0 {
		alpha := float32(0.15 + 0.35*highlight)
		fillRect(screen, l.X, l.Y, config.ArrowZoneWidth, l.H, colorArrow, alpha)
		fillRect(screen, l.X+l.W-config.ArrowZoneWidth, l.Y, config.ArrowZoneWidth, l.H, colorArrow, alpha)
		mid := l.Y + l.H/2 - subtitleFontSize/2
		drawCenteredText(screen, "<", subtitleFontSize, l.X+config.ArrowZoneWidth/2, mid, colorTextLight, 1)
		drawCenteredText(screen, ">", subtitleFontSize, l.X+l.W-config.ArrowZoneWidth/2, mid, colorTextLight, 1)
	}

	for _, d := range l.dots(len(frame.Items), frame.ActiveIndex) {
		clr := colorDot
		if d.Active {
			clr = colorDotActive
		}
		fillRect(screen, d.X, d.Y, d.W, d.H, clr, 1)
	}
}

// drawCard 绘制一张卡片：图片占位块（带视差）、标题、副标题和正文
func drawCard(dst *ebiten.Image, card content.Card, item carousel.ItemFrame, x, y, w, h, highlight float64) {
	bg := colorCard
	if item.Active {
		bg = colorCardActive
	}
	fillRect(dst, x, y, w, h, bg, 1)

	imageH := h * 0.45
	fillRect(dst, x, y+item.ParallaxY, w, imageH, colorCardImage, 1)

	if item.Active && highlight > 0 {
		fillRect(dst, x, y+h-4, w, 4, colorHighlight, float32(highlight))
	}

	ty := y + imageH + cardPadding
	inner := w - cardPadding*2
	drawText(dst, card.Title, cardTitleSize, x+cardPadding, ty, colorTextDark, 1)
	ty += cardTitleSize + 8
	drawText(dst, card.Subtitle, cardBodySize, x+cardPadding, ty, colorTextMuted, 1)
	ty += cardLineHeight + 6
	for _, line := range utils.WrapText(card.Body, utils.DefaultFace(cardBodySize), inner) {
		if ty+cardLineHeight > y+h {
			break
		}
		drawText(dst, line, cardBodySize, x+cardPadding, ty, colorTextDark, 1)
		ty += cardLineHeight
	}
}

// NavbarRenderSystem 导航栏渲染系统
type NavbarRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewNavbarRenderSystem 创建导航栏渲染系统
func NewNavbarRenderSystem(em *ecs.EntityManager) *NavbarRenderSystem {
	return &NavbarRenderSystem{entityManager: em}
}

// Draw 渲染导航栏
func (s *NavbarRenderSystem) Draw(screen *ebiten.Image) {
	screenW := float64(screen.Bounds().Dx())
	for _, entityID := range ecs.GetEntitiesWith1[*components.NavbarComponent](s.entityManager) {
		nav, _ := ecs.GetComponent[*components.NavbarComponent](s.entityManager, entityID)
		if nav.Offset <= -config.NavbarHeight {
			continue
		}
		y := nav.Offset
		// 首页未滚动时背景透明，其余情况为半透明白底
		textColor := colorTextLight
		if nav.Scrolled || !nav.HomePage {
			fillRect(screen, 0, y, screenW, config.NavbarHeight, colorNavbarSolid, 1)
			textColor = colorTextDark
		}

		spacing := 120.0
		startX := screenW/2 - spacing*float64(len(nav.Items)-1)/2
		for i, item := range nav.Items {
			drawCenteredText(screen, item, subtitleFontSize, startX+spacing*float64(i), y+config.NavbarHeight/2-subtitleFontSize/2, textColor, 1)
		}
	}
}
