package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按名称创建场景（空名称表示完整首页），避免循环依赖
type SceneFactory func(name string) (Scene, error)

// SceneManager manages the app's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
	width        int
	height       int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is closed if it implements Closable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if closer, ok := sm.currentScene.(Closable); ok {
		closer.Close()
	}
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回当前场景的名称（通过 Load 加载时设置）
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Load 通过工厂函数加载指定名称的场景
// name: 轮播变体名称，如 "testimonials"；空字符串加载完整首页
func (sm *SceneManager) Load(name string) error {
	log.Printf("[SceneManager] 加载场景: %q", name)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return ErrNoSceneFactory
	}

	// 使用工厂函数创建新场景
	newScene, err := sm.sceneFactory(name)
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建场景 %q: %v", name, err)
		return err
	}
	sm.SwitchTo(newScene)
	sm.currentName = name
	log.Printf("[SceneManager] 成功切换到场景: %q", name)
	return nil
}

// Resize 记录逻辑屏幕尺寸并转发给当前场景
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Close 关闭当前场景
func (sm *SceneManager) Close() {
	if closer, ok := sm.currentScene.(Closable); ok {
		closer.Close()
	}
	sm.currentScene = nil
	sm.currentName = ""
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
