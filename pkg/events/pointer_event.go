// Package events 定义宿主输入层投递给核心的指针事件
//
// 宿主（ebiten 窗口或终端）把原始指针采样转换成针对具体实体的离散事件，
// 放入 Queue；管线在每帧开头按先进先出顺序交给 Dispatcher 分发，
// 因此同一实体的事件顺序与产生顺序一致。
package events

import (
	"fmt"

	"github.com/decker502/catpet/pkg/ecs"
)

// PointerEventType 指针事件类型
type PointerEventType int

const (
	// PointerEnter 指针进入实体
	PointerEnter PointerEventType = iota
	// PointerMove 指针在实体上移动
	PointerMove
	// PointerLeave 指针离开实体
	PointerLeave
	// DragStart 在实体上开始拖拽
	DragStart
	// Drag 拖拽中，携带本次位移
	Drag
	// DragEnd 拖拽结束
	DragEnd
)

// String 返回事件类型的字符串表示
func (t PointerEventType) String() string {
	switch t {
	case PointerEnter:
		return "Enter"
	case PointerMove:
		return "Move"
	case PointerLeave:
		return "Leave"
	case DragStart:
		return "DragStart"
	case Drag:
		return "Drag"
	case DragEnd:
		return "DragEnd"
	default:
		return "Unknown"
	}
}

// PointerEvent 发往单个实体的指针事件
type PointerEvent struct {
	Type   PointerEventType
	Entity ecs.EntityID

	// DeltaTime 仅 PointerMove 使用：本次移动对应的帧时间（秒）
	DeltaTime float64

	// DeltaX, DeltaY 仅 Drag 使用：指针空间位移（屏幕像素，Y 向下）
	DeltaX float64
	DeltaY float64
}

// String 用于日志输出
func (e PointerEvent) String() string {
	switch e.Type {
	case PointerMove:
		return fmt.Sprintf("%s(entity=%d, dt=%.3f)", e.Type, e.Entity, e.DeltaTime)
	case Drag:
		return fmt.Sprintf("%s(entity=%d, delta=(%.1f, %.1f))", e.Type, e.Entity, e.DeltaX, e.DeltaY)
	default:
		return fmt.Sprintf("%s(entity=%d)", e.Type, e.Entity)
	}
}

// NewEnterEvent 创建指针进入事件
func NewEnterEvent(id ecs.EntityID) PointerEvent {
	return PointerEvent{Type: PointerEnter, Entity: id}
}

// NewMoveEvent 创建指针移动事件
func NewMoveEvent(id ecs.EntityID, dt float64) PointerEvent {
	return PointerEvent{Type: PointerMove, Entity: id, DeltaTime: dt}
}

// NewLeaveEvent 创建指针离开事件
func NewLeaveEvent(id ecs.EntityID) PointerEvent {
	return PointerEvent{Type: PointerLeave, Entity: id}
}

// NewDragStartEvent 创建拖拽开始事件
func NewDragStartEvent(id ecs.EntityID) PointerEvent {
	return PointerEvent{Type: DragStart, Entity: id}
}

// NewDragEvent 创建拖拽位移事件
func NewDragEvent(id ecs.EntityID, dx, dy float64) PointerEvent {
	return PointerEvent{Type: Drag, Entity: id, DeltaX: dx, DeltaY: dy}
}

// NewDragEndEvent 创建拖拽结束事件
func NewDragEndEvent(id ecs.EntityID) PointerEvent {
	return PointerEvent{Type: DragEnd, Entity: id}
}
