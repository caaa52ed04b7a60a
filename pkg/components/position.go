package components

// PositionComponent 存储实体在世界坐标系中的位置
// 世界坐标原点在窗口中心，Y 轴向上
type PositionComponent struct {
	X float64
	Y float64
}
