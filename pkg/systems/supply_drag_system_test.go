package systems

import (
	"testing"

	"github.com/decker502/catpet/pkg/components"
	"github.com/decker502/catpet/pkg/ecs"
	"github.com/decker502/catpet/pkg/events"
)

func TestSupplyDragLifecycle(t *testing.T) {
	w := newTestWorld(t, nil)
	s := NewSupplyDragSystem(w.em)
	d := events.NewDispatcher(w.em)
	s.RegisterHandlers(d)

	id := w.supplies[1]
	start := *w.position(id)
	drag, _ := ecs.GetComponent[*components.DragComponent](w.em, id)

	d.Dispatch(events.NewDragStartEvent(id))
	if !drag.Dragging {
		t.Fatal("DragStart should set dragging")
	}

	// 指针空间 Y 向下，世界 Y 向上
	d.Dispatch(events.NewDragEvent(id, 10, 20))
	d.Dispatch(events.NewDragEvent(id, -3, -5))
	pos := w.position(id)
	if pos.X != start.X+7 || pos.Y != start.Y-15 {
		t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, start.X+7, start.Y-15)
	}

	d.Dispatch(events.NewDragEndEvent(id))
	if drag.Dragging {
		t.Error("DragEnd should clear dragging")
	}
}

// TestSupplyDragUnbounded 位移不做边界限制
func TestSupplyDragUnbounded(t *testing.T) {
	w := newTestWorld(t, nil)
	s := NewSupplyDragSystem(w.em)
	id := w.supplies[0]

	s.OnDrag(events.NewDragEvent(id, 5000, -5000))
	pos := w.position(id)
	if pos.X != -104+5000 || pos.Y != -235.5+5000 {
		t.Errorf("position = (%v, %v)", pos.X, pos.Y)
	}
}

// TestSupplyDragIgnoresPet 拖拽事件发到宠物上不会移动宠物
func TestSupplyDragIgnoresPet(t *testing.T) {
	w := newTestWorld(t, nil)
	d := events.NewDispatcher(w.em)
	NewSupplyDragSystem(w.em).RegisterHandlers(d)

	if d.Dispatch(events.NewDragEvent(w.pet, 10, 10)) {
		t.Error("drag handler must not run for the pet")
	}
	if pos := w.position(w.pet); pos.X != 0 || pos.Y != 0 {
		t.Errorf("pet moved to (%v, %v)", pos.X, pos.Y)
	}
}
