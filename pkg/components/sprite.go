package components

// SpriteComponent 存储精灵表中当前显示的帧索引
// 由动画系统写入，渲染端只读
type SpriteComponent struct {
	Frame int
}
