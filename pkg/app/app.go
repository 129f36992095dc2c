// Package app 提供页面应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/gonewx/truview/pkg/config"
	"github.com/gonewx/truview/pkg/embedded"
	"github.com/gonewx/truview/pkg/game"
	"github.com/gonewx/truview/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 轮播配置文件路径，磁盘上不存在时回退到嵌入的同名文件
	ConfigPath string
	// Variant 只预览指定轮播变体，为空则展示完整首页
	Variant string
	// ReducedMotion 关闭所有自动播放
	ReducedMotion bool
	// WindowWidth / WindowHeight 窗口初始尺寸，退出全屏时恢复
	WindowWidth  int
	WindowHeight int
}

// KeyInput 键盘输入接口（测试时注入 mock）
type KeyInput interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

type ebitenKeyInput struct{}

func (ebitenKeyInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// App 是页面应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	keys         KeyInput
	verbose      bool

	// variants 数字键 1-9 依次对应的变体，0 对应完整首页
	variants []string

	windowWidth              int
	windowHeight             int
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化页面应用
//
// 桌面端调用前应先调用 embedded.Init()，以便在配置文件缺失时使用嵌入版本。
func NewApp(cfg Config) (*App, error) {
	return NewAppWithInput(cfg, ebitenKeyInput{})
}

// NewAppWithInput 使用指定的键盘输入创建应用
func NewAppWithInput(cfg Config, keys KeyInput) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = "data/carousels.yaml"
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		cfg.WindowWidth, cfg.WindowHeight = config.DefaultWindowWidth, config.DefaultWindowHeight
	}

	carousels, err := loadCarouselConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("轮播配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载轮播配置: %s (%d 个变体)", cfg.ConfigPath, len(carousels.Carousels))

	a := &App{
		keys:         keys,
		verbose:      cfg.Verbose,
		variants:     carousels.Names(),
		windowWidth:  cfg.WindowWidth,
		windowHeight: cfg.WindowHeight,
	}

	// 创建场景管理器
	a.sceneManager = game.NewSceneManager()
	a.sceneManager.SetSceneFactory(func(variant string) (game.Scene, error) {
		return scenes.NewHomeScene(scenes.HomeOptions{
			Config:         carousels,
			Variant:        variant,
			ReducedMotion:  cfg.ReducedMotion,
			ViewportWidth:  float64(cfg.WindowWidth),
			ViewportHeight: float64(cfg.WindowHeight),
		})
	})

	if err := a.sceneManager.Load(cfg.Variant); err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	log.Printf("[App] Starting scene: %q", cfg.Variant)
	return a, nil
}

// loadCarouselConfig 优先读取磁盘文件，文件不存在时读取嵌入版本
func loadCarouselConfig(path string) (*config.CarouselFileConfig, error) {
	cfg, err := config.LoadCarouselConfig(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) || !embedded.Exists(path) {
		return nil, err
	}
	log.Printf("[Config] %s 不在磁盘上，使用嵌入版本", path)
	data, readErr := embedded.ReadFile(path)
	if readErr != nil {
		return nil, readErr
	}
	return config.ParseCarouselConfig(data)
}

// Update 更新页面逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowWidth, a.windowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.windowWidth, a.windowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if a.keys.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.handleVariantKeys()

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

var digitKeys = []ebiten.Key{
	ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// handleVariantKeys 数字键切换预览：0 为完整首页，1-9 为单个变体
func (a *App) handleVariantKeys() {
	for i, key := range digitKeys {
		if i > len(a.variants) {
			return
		}
		if !a.keys.IsKeyJustPressed(key) {
			continue
		}
		name := ""
		if i > 0 {
			name = a.variants[i-1]
		}
		if name == a.sceneManager.CurrentName() {
			return
		}
		if err := a.sceneManager.Load(name); err != nil {
			log.Printf("[App] 切换到 %q 失败: %v", name, err)
		}
		return
	}
}

// Draw 绘制页面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 页面随窗口宽度重新排版，所以逻辑尺寸等于窗口尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.windowWidth, a.windowHeight
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
// 用于在窗口关闭时卸载场景
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Variants 返回数字键对应的变体列表
func (a *App) Variants() []string {
	return a.variants
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
