package systems

import (
	"log"

	"github.com/decker502/catpet/pkg/components"
	"github.com/decker502/catpet/pkg/ecs"
	"github.com/decker502/catpet/pkg/events"
	"github.com/decker502/catpet/pkg/types"
)

// PettingSystem 抚摸状态机
//
// 只响应宠物实体上的指针进入/移动/离开事件：
//   - 进入：呼噜起始计时器若处于暂停，则恢复并清零，同时按 fps 重置帧计时器
//   - 移动：若上一次移动时计时器已满一个周期且当前不是呼噜，则进入呼噜；然后推进计时器
//   - 离开：暂停计时器，情绪强制回到 Idle
//
// 因此呼噜总是在计时满周期之后的"下一次"移动时才开始，
// 在周期内快速进出永远不会进入呼噜。
type PettingSystem struct {
	entityManager *ecs.EntityManager
}

// NewPettingSystem 创建抚摸系统
func NewPettingSystem(em *ecs.EntityManager) *PettingSystem {
	return &PettingSystem{entityManager: em}
}

// RegisterHandlers 向分发器注册宠物的指针事件处理函数
func (s *PettingSystem) RegisterHandlers(d *events.Dispatcher) {
	events.Handle[*components.PetComponent](d, events.PointerEnter, s.OnPointerEnter)
	events.Handle[*components.PetComponent](d, events.PointerMove, s.OnPointerMove)
	events.Handle[*components.PetComponent](d, events.PointerLeave, s.OnPointerLeave)
}

// petParts 读取宠物的情绪与动画组件
func (s *PettingSystem) petParts(id ecs.EntityID) (*components.PetComponent, *components.PetAnimationComponent, bool) {
	pet, ok := ecs.GetComponent[*components.PetComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	anim, ok := ecs.GetComponent[*components.PetAnimationComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	return pet, anim, true
}

// OnPointerEnter 指针进入宠物
func (s *PettingSystem) OnPointerEnter(evt events.PointerEvent) {
	_, anim, ok := s.petParts(evt.Entity)
	if !ok {
		return
	}

	if anim.PurrTimer.Paused {
		anim.PurrTimer.Unpause()
		anim.PurrTimer.Reset()
		anim.FrameTimer = components.NewTimerFromFPS(anim.FPS)
	}
}

// OnPointerMove 指针在宠物上移动
func (s *PettingSystem) OnPointerMove(evt events.PointerEvent) {
	pet, anim, ok := s.petParts(evt.Entity)
	if !ok {
		return
	}

	// 检查的是上一次 Tick 的结果
	if anim.PurrTimer.JustFinished && pet.Emote != types.EmotePurring {
		pet.Emote = types.EmotePurring
		log.Printf("[PettingSystem] 宠物开始呼噜 (实体ID: %d)", evt.Entity)
	}

	anim.PurrTimer.Tick(evt.DeltaTime)
}

// OnPointerLeave 指针离开宠物
func (s *PettingSystem) OnPointerLeave(evt events.PointerEvent) {
	pet, anim, ok := s.petParts(evt.Entity)
	if !ok {
		return
	}

	anim.PurrTimer.Pause()
	if pet.Emote != types.EmoteIdle {
		log.Printf("[PettingSystem] 指针离开，宠物回到空闲 (实体ID: %d, 之前: %s)", evt.Entity, pet.Emote)
	}
	pet.Emote = types.EmoteIdle
}
