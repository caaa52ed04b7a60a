package entities

import (
	"fmt"
	"log"

	"github.com/decker502/catpet/pkg/components"
	"github.com/decker502/catpet/pkg/config"
	"github.com/decker502/catpet/pkg/ecs"
	"github.com/decker502/catpet/pkg/types"
)

// NewSupplyEntity 在物品栏第 slot 个槽位创建补给品
//
// 槽位位置同时作为当前位置和归位目标（OriginComponent）。
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 桌宠配置
//   - kind: 补给品种类
//   - slot: 槽位索引（0 开始）
//   - slotCount: 槽位总数
//
// 返回:
//   - ecs.EntityID: 补给品实体ID
//   - error: 种类无效时返回错误
func NewSupplyEntity(em *ecs.EntityManager, cfg *config.PetConfig, kind types.SupplyKind, slot, slotCount int) (ecs.EntityID, error) {
	if !kind.IsValid() {
		return ecs.InvalidEntity, fmt.Errorf("create supply: invalid kind %d", kind)
	}

	s := cfg.Supplies
	x := config.SupplySlotX(slot, slotCount, s.SlotWidth)
	y := config.SupplySlotY(cfg.World.Height, s.SlotHeight)

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.SupplyComponent{Kind: kind})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.OriginComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.DragComponent{Dragging: false})
	ecs.AddComponent(em, id, &components.ReturnVelocityComponent{Speed: s.ReturnSpeed})
	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: s.Scale.X, ScaleY: s.Scale.Y})
	ecs.AddComponent(em, id, &components.ClickableComponent{
		Width:     s.SlotWidth,
		Height:    s.SlotHeight,
		IsEnabled: true,
		Layer:     config.SupplyLayer,
	})

	log.Printf("[SupplyFactory] 创建补给品 %s (实体ID: %d, 槽位: %d, 位置: (%.1f, %.1f))", kind, id, slot, x, y)
	return id, nil
}

// NewInventory 按物品栏顺序创建全部五种补给品
//
// 返回的实体ID与 types.AllSupplyKinds() 顺序一致。
func NewInventory(em *ecs.EntityManager, cfg *config.PetConfig) ([]ecs.EntityID, error) {
	kinds := types.AllSupplyKinds()
	ids := make([]ecs.EntityID, 0, len(kinds))
	for slot, kind := range kinds {
		id, err := NewSupplyEntity(em, cfg, kind, slot, len(kinds))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
