package events

import (
	"log"
	"reflect"

	"github.com/decker502/catpet/pkg/ecs"
)

// HandlerFunc 处理单个指针事件
type HandlerFunc func(evt PointerEvent)

// route 处理表中的一项：目标实体必须拥有 archetype 组件才会调用 handler
type route struct {
	archetype reflect.Type
	handler   HandlerFunc
}

// Dispatcher 按"实体类别 × 事件类型"分发指针事件
//
// 实体类别由标记组件区分（宠物为 *PetComponent，补给品为 *SupplyComponent），
// 同一事件类型可以为不同类别注册各自的处理函数。
type Dispatcher struct {
	entityManager *ecs.EntityManager
	routes        map[PointerEventType][]route
}

// NewDispatcher 创建分发器
func NewDispatcher(em *ecs.EntityManager) *Dispatcher {
	return &Dispatcher{
		entityManager: em,
		routes:        make(map[PointerEventType][]route),
	}
}

// Register 为拥有 archetype 组件的实体注册事件处理函数
func (d *Dispatcher) Register(archetype reflect.Type, eventType PointerEventType, handler HandlerFunc) {
	d.routes[eventType] = append(d.routes[eventType], route{archetype: archetype, handler: handler})
}

// Handle 为拥有组件 T 的实体注册事件处理函数（泛型版本）
//
// 示例:
//
//	events.Handle[*components.PetComponent](d, events.PointerEnter, s.onEnter)
func Handle[T any](d *Dispatcher, eventType PointerEventType, handler HandlerFunc) {
	d.Register(reflect.TypeOf((*T)(nil)).Elem(), eventType, handler)
}

// Dispatch 分发单个事件，返回是否有处理函数被调用
//
// 目标实体已被销毁或没有匹配的处理函数时丢弃事件，不视为错误。
func (d *Dispatcher) Dispatch(evt PointerEvent) bool {
	if !d.entityManager.EntityExists(evt.Entity) {
		log.Printf("[Dispatcher] 丢弃事件 %s: 实体不存在", evt)
		return false
	}

	handled := false
	for _, r := range d.routes[evt.Type] {
		if !d.entityManager.HasComponent(evt.Entity, r.archetype) {
			continue
		}
		r.handler(evt)
		handled = true
	}
	return handled
}

// DispatchAll 按入队顺序分发队列中的全部事件，返回被处理的事件数
func (d *Dispatcher) DispatchAll(q *Queue) int {
	handled := 0
	for _, evt := range q.Drain() {
		if d.Dispatch(evt) {
			handled++
		}
	}
	return handled
}
