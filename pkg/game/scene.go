package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 窗口宿主中的一个场景，拥有独立的更新与绘制逻辑
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在窗口关闭时保存状态（目前只有用户设置）
type Saveable interface {
	// SaveOnExit 返回 true 表示保存成功或无需保存
	SaveOnExit() bool
}
