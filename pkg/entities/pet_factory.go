package entities

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/catpet/pkg/components"
	"github.com/decker502/catpet/pkg/config"
	"github.com/decker502/catpet/pkg/ecs"
	"github.com/decker502/catpet/pkg/types"
)

// ErrPetExists 世界中已经有一只宠物
var ErrPetExists = errors.New("pet already exists")

// NewPetEntity 创建宠物实体
//
// 一个世界中只允许一只宠物，重复创建返回 ErrPetExists。
// 宠物初始情绪为 Idle，显示静止帧；呼噜起始计时器初始为暂停，
// 第一次指针进入时才开始计时。
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 桌宠配置
//
// 返回:
//   - ecs.EntityID: 宠物实体ID
//   - error: 已存在宠物时返回 ErrPetExists
func NewPetEntity(em *ecs.EntityManager, cfg *config.PetConfig) (ecs.EntityID, error) {
	if existing := ecs.GetEntitiesWith1[*components.PetComponent](em); len(existing) > 0 {
		return ecs.InvalidEntity, fmt.Errorf("create pet: %w (entity %d)", ErrPetExists, existing[0])
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PetComponent{Emote: types.EmoteIdle})

	purrTimer := components.NewRepeatingTimer(cfg.Petting.PurrOnsetSeconds)
	purrTimer.Pause()
	ecs.AddComponent(em, id, &components.PetAnimationComponent{
		FirstFrame: cfg.Animation.FirstFrame,
		PurrFrames: cfg.Animation.PurrFrames,
		FPS:        cfg.Animation.FPS,
		FrameTimer: components.NewTimerFromFPS(cfg.Animation.FPS),
		PurrTimer:  purrTimer,
	})

	ecs.AddComponent(em, id, &components.SpriteComponent{Frame: cfg.Animation.FirstFrame})

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.Pet.Position.X,
		Y: cfg.Pet.Position.Y,
	})

	ecs.AddComponent(em, id, &components.ScaleComponent{
		ScaleX: cfg.Pet.Scale,
		ScaleY: cfg.Pet.Scale,
	})

	ecs.AddComponent(em, id, &components.ClickableComponent{
		Width:     cfg.Pet.HitWidth,
		Height:    cfg.Pet.HitHeight,
		IsEnabled: true,
		Layer:     config.PetLayer,
	})

	log.Printf("[PetFactory] 创建宠物 (实体ID: %d, 位置: (%.1f, %.1f))", id, cfg.Pet.Position.X, cfg.Pet.Position.Y)
	return id, nil
}
