package carousel

import "errors"

// 引擎的错误都是可恢复的 UI 层拒绝，调用方记录日志即可，不应终止程序
var (
	// ErrDragInProgress 拖拽进行中时拒绝新的拖拽或索引变更
	ErrDragInProgress = errors.New("carousel: drag already in progress")
	// ErrNoDrag 没有进行中的拖拽
	ErrNoDrag = errors.New("carousel: no drag in progress")
	// ErrDragDisabled 当前控制模式不允许拖拽（滚动驱动模式）
	ErrDragDisabled = errors.New("carousel: drag disabled in scroll-control mode")
	// ErrNavigationDisabled 滚动驱动模式下不接受导航命令
	ErrNavigationDisabled = errors.New("carousel: navigation disabled in scroll-control mode")
	// ErrClosed 轮播已卸载
	ErrClosed = errors.New("carousel: closed")
	// ErrModeConflict 配置同时启用了互斥的控制方式
	ErrModeConflict = errors.New("carousel: conflicting control modes")
	// ErrInvalidOptions 配置参数非法
	ErrInvalidOptions = errors.New("carousel: invalid options")
)
