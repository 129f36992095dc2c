// Package content 页面展示用的静态数据
//
// 数据获取不在本项目范围内，这里只保留首页和关于页面上的固定条目。
package content

// Card 渲染层绘制一张卡片需要的文字
type Card struct {
	Title    string
	Subtitle string
	Body     string
}

// Listing 房源
type Listing struct {
	ID       int
	Title    string
	Price    string
	Location string
}

// Testimonial 客户评价
type Testimonial struct {
	Quote    string
	Name     string
	Location string
}

// TeamMember 团队成员
type TeamMember struct {
	Name        string
	Title       string
	Description string
}

// HeroSlide 首屏轮播页
type HeroSlide struct {
	Headline string
	Tagline  string
}

var heroSlides = []HeroSlide{
	{Headline: "Your Home, Showcased to Perfection", Tagline: "Discover luxury living at its finest"},
	{Headline: "Curated Northern Virginia Estates", Tagline: "Private tours, on your schedule"},
	{Headline: "Sell With Confidence", Tagline: "Marketing that moves properties"},
}

// Stat 首页数据条目
type Stat struct {
	Number string
	Label  string
}

var stats = []Stat{
	{Number: "500+", Label: "Homes Sold"},
	{Number: "15", Label: "Years in Business"},
	{Number: "21", Label: "Avg. Days on Market"},
}

var listings = []Listing{
	{ID: 1, Title: "Luxury Villa", Price: "$2,500,000", Location: "Beverly Hills, CA"},
	{ID: 2, Title: "Modern Penthouse", Price: "$1,800,000", Location: "Manhattan, NY"},
	{ID: 3, Title: "Beachfront Estate", Price: "$3,200,000", Location: "Miami, FL"},
	{ID: 4, Title: "Mountain View Home", Price: "$1,500,000", Location: "Denver, CO"},
}

var testimonials = []Testimonial{
	{
		Quote:    "Working with TruView Real Estate was an absolute pleasure. Their attention to detail and dedication to finding the perfect home for us was exceptional.",
		Name:     "Sarah Johnson",
		Location: "McLean, VA",
	},
	{
		Quote:    "The team's professionalism and market knowledge helped us sell our home above asking price. I couldn't be happier with the results!",
		Name:     "Michael Chen",
		Location: "Vienna, VA",
	},
	{
		Quote:    "From start to finish, the entire process was smooth and transparent. TruView made buying our dream home a reality.",
		Name:     "Emily Rodriguez",
		Location: "Falls Church, VA",
	},
}

var team = []TeamMember{
	{Name: "Sarah Johnson", Title: "Founder & CEO", Description: "With over 15 years of experience in luxury real estate."},
	{Name: "Michael Chen", Title: "Lead Agent", Description: "Specializing in high-end residential properties."},
	{Name: "Emma Rodriguez", Title: "Marketing Director", Description: "Creating innovative marketing strategies for our listings."},
}

// 返回副本，调用方可以随意修改

func HeroSlides() []HeroSlide     { return append([]HeroSlide(nil), heroSlides...) }
func Listings() []Listing         { return append([]Listing(nil), listings...) }
func Testimonials() []Testimonial { return append([]Testimonial(nil), testimonials...) }
func Team() []TeamMember          { return append([]TeamMember(nil), team...) }
func Stats() []Stat               { return append([]Stat(nil), stats...) }

// HeroCards 转换为卡片文字
func HeroCards() []Card {
	cards := make([]Card, 0, len(heroSlides))
	for _, s := range heroSlides {
		cards = append(cards, Card{Title: s.Headline, Subtitle: s.Tagline})
	}
	return cards
}

// ListingCards 转换为卡片文字
func ListingCards() []Card {
	cards := make([]Card, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, Card{Title: l.Title, Subtitle: l.Price, Body: l.Location})
	}
	return cards
}

// TestimonialCards 转换为卡片文字
func TestimonialCards() []Card {
	cards := make([]Card, 0, len(testimonials))
	for _, tm := range testimonials {
		cards = append(cards, Card{Title: tm.Name, Subtitle: tm.Location, Body: "\"" + tm.Quote + "\""})
	}
	return cards
}

// TeamCards 转换为卡片文字
func TeamCards() []Card {
	cards := make([]Card, 0, len(team))
	for _, m := range team {
		cards = append(cards, Card{Title: m.Name, Subtitle: m.Title, Body: m.Description})
	}
	return cards
}

// CardsFor 按轮播变体名称返回卡片，未知名称返回 nil
func CardsFor(variant string) []Card {
	switch variant {
	case "hero":
		return HeroCards()
	case "featured":
		return ListingCards()
	case "testimonials":
		return TestimonialCards()
	case "team":
		return TeamCards()
	default:
		return nil
	}
}
