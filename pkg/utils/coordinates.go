// coordinates.go 提供世界坐标与宿主坐标之间的换算
//
// # 坐标系统概述
//
//   - **世界坐标**：原点在窗口中心，X 向右，Y 向上（PositionComponent 使用）
//   - **屏幕坐标**：原点在窗口左上角，X 向右，Y 向下（ebiten 光标、绘制使用）
//   - **网格坐标**：终端字符格，列向右、行向下，每格覆盖世界的一块矩形区域
//
// # 核心转换公式
//
//	screenX = worldX + screenWidth/2
//	screenY = screenHeight/2 - worldY
//
// 网格坐标按世界尺寸等比缩放到 cols x rows 个格子，格子坐标取格子中心。
package utils

import "math"

// ScreenToWorld 屏幕坐标 → 世界坐标
func ScreenToWorld(screenX, screenY, screenWidth, screenHeight float64) (worldX, worldY float64) {
	return screenX - screenWidth/2, screenHeight/2 - screenY
}

// WorldToScreen 世界坐标 → 屏幕坐标
func WorldToScreen(worldX, worldY, screenWidth, screenHeight float64) (screenX, screenY float64) {
	return worldX + screenWidth/2, screenHeight/2 - worldY
}

// RectScreenOrigin 计算以世界坐标 (centerX, centerY) 为中心、宽高为 width x height 的矩形
// 在屏幕上的左上角（ebiten 绘制以左上角为锚点）
func RectScreenOrigin(centerX, centerY, width, height, screenWidth, screenHeight float64) (x, y float64) {
	sx, sy := WorldToScreen(centerX, centerY, screenWidth, screenHeight)
	return sx - width/2, sy - height/2
}

// GridToWorld 网格坐标 → 世界坐标（格子中心）
//
// 参数:
//   - col, row: 格子坐标
//   - cols, rows: 网格尺寸（必须 > 0）
//   - worldWidth, worldHeight: 网格覆盖的世界尺寸
func GridToWorld(col, row, cols, rows int, worldWidth, worldHeight float64) (worldX, worldY float64) {
	cellW := worldWidth / float64(cols)
	cellH := worldHeight / float64(rows)
	screenX := (float64(col) + 0.5) * cellW
	screenY := (float64(row) + 0.5) * cellH
	return ScreenToWorld(screenX, screenY, worldWidth, worldHeight)
}

// WorldToGrid 世界坐标 → 网格坐标（向下取整，可能落在网格外）
func WorldToGrid(worldX, worldY float64, cols, rows int, worldWidth, worldHeight float64) (col, row int) {
	screenX, screenY := WorldToScreen(worldX, worldY, worldWidth, worldHeight)
	col = int(math.Floor(screenX / (worldWidth / float64(cols))))
	row = int(math.Floor(screenY / (worldHeight / float64(rows))))
	return col, row
}
