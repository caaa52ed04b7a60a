package game

import (
	"fmt"
	"log"

	"github.com/decker502/catpet/pkg/components"
	"github.com/decker502/catpet/pkg/config"
	"github.com/decker502/catpet/pkg/ecs"
	"github.com/decker502/catpet/pkg/entities"
	"github.com/decker502/catpet/pkg/events"
	"github.com/decker502/catpet/pkg/systems"
	"github.com/decker502/catpet/pkg/types"
)

// PetWorld 桌宠世界：一只宠物、一排补给品，以及驱动它们的事件队列和管线
//
// 窗口宿主和终端宿主共用同一个 PetWorld，区别只在于如何采样指针和如何绘制。
type PetWorld struct {
	Config        *config.PetConfig
	EntityManager *ecs.EntityManager
	Queue         *events.Queue
	Dispatcher    *events.Dispatcher
	Pipeline      *systems.Pipeline
	Input         *systems.PointerInputSystem

	PetID    ecs.EntityID
	Supplies []ecs.EntityID
}

// NewPetWorld 按配置创建世界
//
// 参数:
//   - cfg: 宠物配置，nil 时使用内嵌默认配置
//
// 返回:
//   - *PetWorld: 已创建宠物与物品栏的世界
//   - error: 配置非法或实体创建失败
func NewPetWorld(cfg *config.PetConfig) (*PetWorld, error) {
	if cfg == nil {
		cfg = config.DefaultPetConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pet config: %w", err)
	}

	em := ecs.NewEntityManager()
	queue := events.NewQueue()
	dispatcher := events.NewDispatcher(em)

	systems.NewPettingSystem(em).RegisterHandlers(dispatcher)
	systems.NewSupplyDragSystem(em).RegisterHandlers(dispatcher)

	pipeline := systems.NewPipeline(systems.PipelineSystems{
		Queue:      queue,
		Dispatcher: dispatcher,
		Proximity:  systems.NewProximitySystem(em, cfg.Pet.HalfExtent.X, cfg.Pet.HalfExtent.Y),
		Animation:  systems.NewPetAnimationSystem(em, cfg.Animation.IdleRewind),
		Return:     systems.NewSupplyReturnSystem(em, cfg.Supplies.SnapEpsilon, cfg.Supplies.ClampOvershoot),
	})

	petID, err := entities.NewPetEntity(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}
	supplies, err := entities.NewInventory(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}

	log.Printf("[PetWorld] 世界创建完成: 宠物 %d, 补给品 %d 个, 管线 %v", petID, len(supplies), pipeline.StageNames())

	return &PetWorld{
		Config:        cfg,
		EntityManager: em,
		Queue:         queue,
		Dispatcher:    dispatcher,
		Pipeline:      pipeline,
		Input:         systems.NewPointerInputSystem(em, queue),
		PetID:         petID,
		Supplies:      supplies,
	}, nil
}

// Update 推进一帧：先把指针采样转成事件，再运行管线
func (w *PetWorld) Update(sample systems.PointerSample, deltaTime float64) {
	w.Input.Update(sample, deltaTime)
	w.Pipeline.Update(deltaTime)
}

// SupplyView 补给品的绘制信息
type SupplyView struct {
	ID       ecs.EntityID
	Kind     types.SupplyKind
	X, Y     float64
	Width    float64
	Height   float64
	Dragging bool
}

// Snapshot 绘制用的世界快照（世界坐标）
type Snapshot struct {
	Emote     types.Emote
	Frame     int
	PetX      float64
	PetY      float64
	PetWidth  float64
	PetHeight float64
	Supplies  []SupplyView
	Hovered   ecs.EntityID
}

// Snapshot 读取当前世界状态
func (w *PetWorld) Snapshot() Snapshot {
	em := w.EntityManager
	snap := Snapshot{Hovered: w.Input.Hovered()}

	if pet, ok := ecs.GetComponent[*components.PetComponent](em, w.PetID); ok {
		snap.Emote = pet.Emote
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, w.PetID); ok {
		snap.Frame = sprite.Frame
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, w.PetID); ok {
		snap.PetX, snap.PetY = pos.X, pos.Y
	}
	if hit, ok := ecs.GetComponent[*components.ClickableComponent](em, w.PetID); ok {
		snap.PetWidth, snap.PetHeight = hit.Width, hit.Height
	}

	for _, id := range w.Supplies {
		supply, ok := ecs.GetComponent[*components.SupplyComponent](em, id)
		if !ok {
			continue
		}
		view := SupplyView{ID: id, Kind: supply.Kind}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			view.X, view.Y = pos.X, pos.Y
		}
		if hit, ok := ecs.GetComponent[*components.ClickableComponent](em, id); ok {
			view.Width, view.Height = hit.Width, hit.Height
		}
		if drag, ok := ecs.GetComponent[*components.DragComponent](em, id); ok {
			view.Dragging = drag.Dragging
		}
		snap.Supplies = append(snap.Supplies, view)
	}
	return snap
}
