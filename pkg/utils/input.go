package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
		return lastTouchX, lastTouchY
	}
	// 触摸刚抬起的那一帧已经拿不到位置，沿用最后一次的触摸位置
	if touchReleased {
		return lastTouchX, lastTouchY
	}

	// 返回鼠标位置
	x, y := ebiten.CursorPosition()
	if x != lastMouseX || y != lastMouseY {
		lastMouseX, lastMouseY = x, y
		lastInputTouch = false
	}
	return x, y
}

// IsTouchInput 最近一次指针输入是否来自触摸
// 触摸没有悬停的概念，抬起手指后鼠标坐标在移动端固定为 (0,0)
func IsTouchInput() bool {
	return lastInputTouch
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或触摸）
func IsPointerPressed() bool {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		touchActive = true
		touchReleased = false
		lastInputTouch = true
		return true
	}
	if touchActive {
		touchActive = false
		touchReleased = true
		return false
	}
	touchReleased = false

	// 检查鼠标
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		lastInputTouch = false
		return true
	}
	return false
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var (
	lastTouchX, lastTouchY int
	touchActive            bool
	touchReleased          bool

	lastMouseX, lastMouseY int
	lastInputTouch         bool
)

// PointInRect 检查点是否在矩形内（含左上边界，不含右下边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
