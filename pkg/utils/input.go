// Package utils 提供宿主共用的工具函数：指针采样、坐标换算
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针状态（屏幕坐标，Y 向下）
// 统一处理鼠标和触摸输入
type PointerState struct {
	X, Y int
	// Pressed 鼠标左键或触摸是否按下
	Pressed bool
	// IsTouching 是否来自触摸
	IsTouching bool
}

// GetPointerState 获取指针的完整状态
// 同时支持鼠标和触摸输入，优先检测触摸
func GetPointerState() PointerState {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return PointerState{X: x, Y: y, Pressed: true, IsTouching: true}
	}

	// 触摸刚释放时 TouchPosition 已不可用，使用保存的最后位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return PointerState{X: lastTouchX, Y: lastTouchY, IsTouching: true}
	}

	// 检查鼠标
	x, y := ebiten.CursorPosition()
	return PointerState{
		X:       x,
		Y:       y,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// InBounds 检查屏幕坐标是否在 width x height 的窗口内
func InBounds(x, y, width, height int) bool {
	return x >= 0 && y >= 0 && x < width && y < height
}
