package scenes

import (
	"image/color"

	"github.com/gonewx/truview/pkg/components"
	"github.com/gonewx/truview/pkg/config"
	"github.com/gonewx/truview/pkg/content"
)

// sectionSpec 首页区段的固定文案和样式
type sectionSpec struct {
	Name       string
	Title      string
	Subtitle   string
	Background color.RGBA

	// Variant 区段内轮播使用的变体，空表示没有轮播
	Variant string

	// FullBleed 首屏：卡片占满区段，没有标题，圆点叠在卡片上
	FullBleed bool

	// CenterOnView 第一次进入视口后把区段滚动到视口中央
	CenterOnView bool

	// Stats 数据区段，没有标题和轮播
	Stats bool

	// HeadingTravel 标题随滚动的位移幅度，0 使用默认值
	HeadingTravel float64
}

// homeSections 首页从上到下的区段
var homeSections = []sectionSpec{
	{
		Name:       "hero",
		Background: color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff},
		Variant:    "hero",
		FullBleed:  true,
	},
	{
		Name:       "featured",
		Title:      "Featured Listings",
		Subtitle:   "Hand-picked homes from across the country",
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Variant:    "featured",
	},
	{
		Name:       "stats",
		Background: color.RGBA{R: 0xf9, G: 0xfa, B: 0xfb, A: 0xff},
		Stats:      true,
	},
	{
		Name:         "testimonials",
		Title:        "Client Testimonials",
		Subtitle:     "Hear what our clients have to say about their experience",
		Background:   color.RGBA{R: 0xf9, G: 0xfa, B: 0xfb, A: 0xff},
		Variant:      "testimonials",
		CenterOnView: true,
	},
	{
		Name:       "team",
		Title:      "Meet Our Team",
		Subtitle:   "Dedicated professionals committed to your real estate success",
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Variant:    "team",
	},
	{
		Name:          "cta",
		Title:         "Ready to Move?",
		Subtitle:      "Let's start your real estate journey today",
		Background:    color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff},
		HeadingTravel: 100,
	},
}

// ctaHeight 无轮播区段的高度
const ctaHeight = config.SectionPadding*2 + config.SectionHeadingHeight

// statsHeight 数据区段高度
const statsHeight = config.SectionPadding*2 + 100

// statDelayStep 数据条目依次出场的间隔（秒）
const statDelayStep = 0.2

// navItems 导航栏条目
var navItems = []string{"Home", "Listings", "About", "Contact"}

// sectionsFor 返回要展示的区段；variant 非空时只保留使用该变体的区段
func sectionsFor(variant string) []sectionSpec {
	if variant == "" {
		return homeSections
	}
	for _, s := range homeSections {
		if s.Variant == variant {
			return []sectionSpec{s}
		}
	}
	// 配置中新增、首页没有固定文案的变体
	return []sectionSpec{{
		Name:       variant,
		Title:      variant,
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Variant:    variant,
	}}
}

// statItems 数据区段的条目
func statItems() []components.StatItem {
	stats := content.Stats()
	items := make([]components.StatItem, len(stats))
	for i, st := range stats {
		items[i] = components.StatItem{
			Number:  st.Number,
			Label:   st.Label,
			Delay:   float64(i) * statDelayStep,
			OffsetY: 20,
			Scale:   0.5,
		}
	}
	return items
}

// cardsFor 变体对应的卡片文字；没有固定内容时生成占位卡片
func cardsFor(variant string) []content.Card {
	if cards := content.CardsFor(variant); cards != nil {
		return cards
	}
	return []content.Card{{Title: variant + " 1"}, {Title: variant + " 2"}, {Title: variant + " 3"}}
}
