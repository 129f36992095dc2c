package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page scene (e.g., the home page, a single-carousel preview).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Closable 是一个可选接口，场景被替换或应用退出时调用 Close 释放资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - SceneManager 切换到另一个场景
//   - 窗口关闭
type Closable interface {
	Close()
}

// Resizable 是一个可选接口，窗口逻辑尺寸变化时通知场景
type Resizable interface {
	Resize(width, height int)
}
