package systems

import (
	"math"

	"github.com/decker502/catpet/pkg/components"
	"github.com/decker502/catpet/pkg/ecs"
	"github.com/decker502/catpet/pkg/events"
)

// PointerSample 宿主每帧采集的一次指针状态
type PointerSample struct {
	// WorldX, WorldY 指针的世界坐标（用于命中检测）
	WorldX, WorldY float64
	// ScreenX, ScreenY 指针的屏幕坐标（用于计算拖拽位移，Y 向下）
	ScreenX, ScreenY float64
	// Pressed 主按键（鼠标左键/触摸）是否按下
	Pressed bool
	// InWindow 指针是否在窗口内
	InWindow bool
}

// PointerInputSystem 把宿主的指针采样转换成针对实体的离散事件
//
// 职责：
//   - 命中检测：层级高者优先，同层级后创建者优先
//   - 悬停：命中实体变化时产生 Leave/Enter，指针在同一实体上移动时产生 Move
//   - 拖拽：在可拖拽实体上按下时产生 DragStart，按住移动产生 Drag，松开产生 DragEnd
//
// 事件只写入队列，由管线的 pointer-dispatch 阶段统一分发。
type PointerInputSystem struct {
	entityManager *ecs.EntityManager
	queue         *events.Queue

	hovered     ecs.EntityID
	dragging    ecs.EntityID
	wasPressed  bool
	hasLast     bool
	lastScreenX float64
	lastScreenY float64
}

// NewPointerInputSystem 创建指针输入系统
func NewPointerInputSystem(em *ecs.EntityManager, queue *events.Queue) *PointerInputSystem {
	return &PointerInputSystem{
		entityManager: em,
		queue:         queue,
	}
}

// Update 处理本帧的指针采样
//
// 参数:
//   - sample: 本帧指针状态
//   - deltaTime: 帧时间（秒），写入 Move 事件
func (s *PointerInputSystem) Update(sample PointerSample, deltaTime float64) {
	moved := s.hasLast && (sample.ScreenX != s.lastScreenX || sample.ScreenY != s.lastScreenY)

	// 已被销毁的实体不再追踪
	if s.hovered != ecs.InvalidEntity && !s.entityManager.EntityExists(s.hovered) {
		s.hovered = ecs.InvalidEntity
	}
	if s.dragging != ecs.InvalidEntity && !s.entityManager.EntityExists(s.dragging) {
		s.dragging = ecs.InvalidEntity
	}

	// 1. 进行中的拖拽
	if s.dragging != ecs.InvalidEntity {
		if sample.Pressed {
			if moved {
				s.queue.Push(events.NewDragEvent(s.dragging, sample.ScreenX-s.lastScreenX, sample.ScreenY-s.lastScreenY))
			}
		} else {
			s.queue.Push(events.NewDragEndEvent(s.dragging))
			s.dragging = ecs.InvalidEntity
		}
	}

	// 2. 悬停
	hit := ecs.InvalidEntity
	if sample.InWindow {
		hit = s.HitTest(sample.WorldX, sample.WorldY)
	}
	if hit != s.hovered {
		if s.hovered != ecs.InvalidEntity {
			s.queue.Push(events.NewLeaveEvent(s.hovered))
		}
		if hit != ecs.InvalidEntity {
			s.queue.Push(events.NewEnterEvent(hit))
		}
		s.hovered = hit
	} else if hit != ecs.InvalidEntity && moved {
		s.queue.Push(events.NewMoveEvent(hit, deltaTime))
	}

	// 3. 新的拖拽
	justPressed := sample.Pressed && !s.wasPressed
	if justPressed && s.dragging == ecs.InvalidEntity && hit != ecs.InvalidEntity &&
		ecs.HasComponent[*components.DragComponent](s.entityManager, hit) {
		s.queue.Push(events.NewDragStartEvent(hit))
		s.dragging = hit
	}

	s.wasPressed = sample.Pressed
	s.lastScreenX, s.lastScreenY = sample.ScreenX, sample.ScreenY
	s.hasLast = true
}

// HitTest 返回世界坐标 (x, y) 处最上层的可命中实体，没有则返回 InvalidEntity
func (s *PointerInputSystem) HitTest(x, y float64) ecs.EntityID {
	candidates := ecs.GetEntitiesWith2[
		*components.ClickableComponent,
		*components.PositionComponent,
	](s.entityManager)

	best := ecs.InvalidEntity
	bestLayer := math.MinInt
	for _, id := range candidates {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if math.Abs(x-pos.X) > clickable.Width/2 || math.Abs(y-pos.Y) > clickable.Height/2 {
			continue
		}
		// 候选按创建顺序排列，>= 让同层级后创建的实体胜出
		if clickable.Layer >= bestLayer {
			best = id
			bestLayer = clickable.Layer
		}
	}
	return best
}

// Hovered 返回当前悬停的实体
func (s *PointerInputSystem) Hovered() ecs.EntityID {
	return s.hovered
}

// Dragging 返回当前拖拽中的实体
func (s *PointerInputSystem) Dragging() ecs.EntityID {
	return s.dragging
}
