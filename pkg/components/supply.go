package components

import "github.com/decker502/catpet/pkg/types"

// SupplyComponent 标记实体为补给品
// Kind 在创建时确定，之后不再改变
type SupplyComponent struct {
	Kind types.SupplyKind
}

// OriginComponent 补给品在物品栏中的槽位位置
// 创建后不可修改，松开拖拽后补给品会回到这里
type OriginComponent struct {
	X float64
	Y float64
}

// DragComponent 补给品的拖拽状态
// Dragging 为 true 时归位系统不会移动该补给品
type DragComponent struct {
	Dragging bool
}

// ReturnVelocityComponent 补给品归位速度（像素/秒）
type ReturnVelocityComponent struct {
	Speed float64
}
