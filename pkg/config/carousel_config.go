package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gonewx/truview/pkg/carousel"
	"gopkg.in/yaml.v3"
)

// CarouselFileConfig carousels.yaml 的顶层结构
// 每个页面区段按名称引用一个轮播变体
type CarouselFileConfig struct {
	Carousels map[string]CarouselVariantConfig `yaml:"carousels"`
}

// CarouselVariantConfig 单个轮播变体
// 变体之间只在这些参数上不同，逻辑由 carousel 包统一实现
type CarouselVariantConfig struct {
	ItemWidth      float64       `yaml:"itemWidth"`      // 卡片宽度（像素）
	ItemHeight     float64       `yaml:"itemHeight"`     // 卡片高度（像素，仅渲染使用）
	Gap            float64       `yaml:"gap"`            // 卡片间距（像素）
	Edge           string        `yaml:"edge"`           // "wrap" 或 "clamp"，默认 "wrap"
	EdgeResistance float64       `yaml:"edgeResistance"` // clamp 下越界拖拽系数，默认 0.3
	Control        string        `yaml:"control"`        // "interactive" 或 "scroll"，默认 "interactive"
	Autoplay       bool          `yaml:"autoplay"`       // 是否自动播放
	Interval       time.Duration `yaml:"interval"`       // 自动播放间隔，如 "5s"
	Bounce         bool          `yaml:"bounce"`         // 允许轻微回弹（阻尼比 0.6）
	Spring         SpringConfig  `yaml:"spring"`         // 可选：显式弹簧参数，优先于 bounce

	SwipeVelocity      float64 `yaml:"swipeVelocity"`      // 像素/秒，默认 500
	SwipeDistanceRatio float64 `yaml:"swipeDistanceRatio"` // 默认 1/3

	Parallax KeyframeConfig `yaml:"parallax"` // 可选：图片层视差
}

// SpringConfig 弹簧参数
type SpringConfig struct {
	Frequency float64 `yaml:"frequency"` // 角频率 rad/s
	Damping   float64 `yaml:"damping"`   // 阻尼比
}

// KeyframeConfig 分段线性映射
type KeyframeConfig struct {
	In  []float64 `yaml:"in"`
	Out []float64 `yaml:"out"`
}

// LoadCarouselConfig 从YAML文件加载轮播配置
// 参数：
//
//	path - 配置文件路径
//
// 返回：
//
//	*CarouselFileConfig - 已填充默认值并通过校验的配置
//	error - 读取、解析或校验失败
func LoadCarouselConfig(path string) (*CarouselFileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read carousel config file %s: %w", path, err)
	}
	cfg, err := ParseCarouselConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid carousel config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseCarouselConfig 解析YAML数据
func ParseCarouselConfig(data []byte) (*CarouselFileConfig, error) {
	var cfg CarouselFileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse carousel config YAML: %w", err)
	}
	if len(cfg.Carousels) == 0 {
		return nil, fmt.Errorf("at least one carousel is required")
	}
	for name, variant := range cfg.Carousels {
		applyCarouselDefaults(&variant)
		if _, err := variant.ToOptions(); err != nil {
			return nil, fmt.Errorf("carousel %q: %w", name, err)
		}
		cfg.Carousels[name] = variant
	}
	return &cfg, nil
}

// applyCarouselDefaults 为缺失的可选字段设置默认值
func applyCarouselDefaults(v *CarouselVariantConfig) {
	if v.Edge == "" {
		v.Edge = "wrap"
	}
	if v.Control == "" {
		v.Control = "interactive"
	}
	if v.Autoplay && v.Interval == 0 {
		v.Interval = carousel.DefaultAutoplayInterval
	}
	if v.ItemHeight == 0 {
		v.ItemHeight = v.ItemWidth * 0.75
	}
	// EdgeResistance、Spring、Swipe* 为 0 时由 carousel.Options 补默认值
}

// Names 返回排序后的变体名称
func (c *CarouselFileConfig) Names() []string {
	names := make([]string, 0, len(c.Carousels))
	for name := range c.Carousels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variant 按名称查找变体
func (c *CarouselFileConfig) Variant(name string) (CarouselVariantConfig, error) {
	v, ok := c.Carousels[name]
	if !ok {
		return CarouselVariantConfig{}, fmt.Errorf("carousel variant %q not found", name)
	}
	return v, nil
}

// ToOptions 转换为引擎配置并校验
func (v CarouselVariantConfig) ToOptions() (carousel.Options, error) {
	opts := carousel.DefaultOptions()
	opts.ItemWidth = v.ItemWidth
	opts.Gap = v.Gap
	opts.Autoplay = v.Autoplay
	if v.Interval != 0 {
		opts.AutoplayInterval = v.Interval
	}
	if v.EdgeResistance != 0 {
		opts.EdgeResistance = v.EdgeResistance
	}
	if v.SwipeVelocity != 0 {
		opts.SwipeVelocity = v.SwipeVelocity
	}
	if v.SwipeDistanceRatio != 0 {
		opts.SwipeDistanceRatio = v.SwipeDistanceRatio
	}

	switch v.Edge {
	case "", "wrap":
		opts.Edge = carousel.EdgeWrap
	case "clamp":
		opts.Edge = carousel.EdgeClamp
	default:
		return carousel.Options{}, fmt.Errorf("unknown edge policy %q", v.Edge)
	}

	switch v.Control {
	case "", "interactive":
		opts.Control = carousel.ControlInteractive
	case "scroll":
		opts.Control = carousel.ControlScroll
	default:
		return carousel.Options{}, fmt.Errorf("unknown control mode %q", v.Control)
	}

	if v.Bounce {
		opts.Spring.DampingRatio = carousel.BounceDampingRatio
	}
	if v.Spring.Frequency != 0 {
		opts.Spring.AngularFrequency = v.Spring.Frequency
	}
	if v.Spring.Damping != 0 {
		opts.Spring.DampingRatio = v.Spring.Damping
	}

	opts.Parallax = carousel.Keyframes{In: v.Parallax.In, Out: v.Parallax.Out}

	if err := opts.Validate(); err != nil {
		return carousel.Options{}, err
	}
	return opts, nil
}
