package systems

import (
	"log"

	"github.com/decker502/catpet/pkg/components"
	"github.com/decker502/catpet/pkg/ecs"
	"github.com/decker502/catpet/pkg/events"
)

// SupplyDragSystem 处理补给品的拖拽事件
//
// 拖拽位移来自指针空间（Y 向下），写入世界坐标时 Y 取反。
// 不做任何边界限制，补给品可以被拖出窗口。
type SupplyDragSystem struct {
	entityManager *ecs.EntityManager
}

// NewSupplyDragSystem 创建补给品拖拽系统
func NewSupplyDragSystem(em *ecs.EntityManager) *SupplyDragSystem {
	return &SupplyDragSystem{entityManager: em}
}

// RegisterHandlers 向分发器注册补给品的拖拽事件处理函数
func (s *SupplyDragSystem) RegisterHandlers(d *events.Dispatcher) {
	events.Handle[*components.SupplyComponent](d, events.DragStart, s.OnDragStart)
	events.Handle[*components.SupplyComponent](d, events.Drag, s.OnDrag)
	events.Handle[*components.SupplyComponent](d, events.DragEnd, s.OnDragEnd)
}

// OnDragStart 开始拖拽
func (s *SupplyDragSystem) OnDragStart(evt events.PointerEvent) {
	drag, ok := ecs.GetComponent[*components.DragComponent](s.entityManager, evt.Entity)
	if !ok {
		return
	}
	drag.Dragging = true
	log.Printf("[SupplyDragSystem] 开始拖拽补给品 (实体ID: %d)", evt.Entity)
}

// OnDrag 应用拖拽位移
func (s *SupplyDragSystem) OnDrag(evt events.PointerEvent) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, evt.Entity)
	if !ok {
		return
	}
	pos.X += evt.DeltaX
	pos.Y -= evt.DeltaY
}

// OnDragEnd 结束拖拽，之后由归位系统接管
func (s *SupplyDragSystem) OnDragEnd(evt events.PointerEvent) {
	drag, ok := ecs.GetComponent[*components.DragComponent](s.entityManager, evt.Entity)
	if !ok {
		return
	}
	drag.Dragging = false
	log.Printf("[SupplyDragSystem] 松开补给品 (实体ID: %d)", evt.Entity)
}
