package systems

import (
	"github.com/decker502/catpet/pkg/components"
	"github.com/decker502/catpet/pkg/config"
	"github.com/decker502/catpet/pkg/ecs"
	"github.com/decker502/catpet/pkg/types"
)

// PetAnimationSystem 根据宠物情绪推进精灵帧
//
// 读取管线前面阶段写好的情绪，把结果写入 SpriteComponent.Frame。
type PetAnimationSystem struct {
	entityManager *ecs.EntityManager
	idleRewind    config.IdleRewindMode
}

// NewPetAnimationSystem 创建宠物动画系统
func NewPetAnimationSystem(em *ecs.EntityManager, idleRewind config.IdleRewindMode) *PetAnimationSystem {
	return &PetAnimationSystem{
		entityManager: em,
		idleRewind:    idleRewind,
	}
}

// Update 更新所有宠物的当前帧
func (s *PetAnimationSystem) Update(deltaTime float64) {
	pets := ecs.GetEntitiesWith3[
		*components.PetComponent,
		*components.PetAnimationComponent,
		*components.SpriteComponent,
	](s.entityManager)

	for _, id := range pets {
		pet, _ := ecs.GetComponent[*components.PetComponent](s.entityManager, id)
		anim, _ := ecs.GetComponent[*components.PetAnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		sprite.Frame = AdvanceFrame(anim, pet.Emote, deltaTime, sprite.Frame, s.idleRewind)
	}
}

// AdvanceFrame 计算下一帧
//
//   - 呼噜：帧计时器到期时换帧。当前帧是两帧呼噜帧之一时在两者之间切换，
//     否则前进一帧（从静止帧走向呼噜帧的过渡帧）。每次换帧都重置计时器，不保留余数。
//   - 空闲：当前帧不是静止帧时向静止帧退一帧并重置计时器。
//     IdleRewindTick 模式下每次调用都退，IdleRewindTimed 模式下按帧计时器节奏退。
//   - 其他情绪：不改变帧。
func AdvanceFrame(anim *components.PetAnimationComponent, emote types.Emote, deltaTime float64, current int, idleRewind config.IdleRewindMode) int {
	switch emote {
	case types.EmotePurring:
		anim.FrameTimer.Tick(deltaTime)
		if !anim.FrameTimer.JustFinished {
			return current
		}

		next := current + 1
		switch current {
		case anim.PurrFrames[0]:
			next = anim.PurrFrames[1]
		case anim.PurrFrames[1]:
			next = anim.PurrFrames[0]
		}
		anim.FrameTimer.Reset()
		return next

	case types.EmoteIdle:
		if current == anim.FirstFrame {
			return current
		}

		if idleRewind == config.IdleRewindTimed {
			anim.FrameTimer.Tick(deltaTime)
			if !anim.FrameTimer.JustFinished {
				return current
			}
		}

		next := current - 1
		if current < anim.FirstFrame {
			next = current + 1
		}
		anim.FrameTimer.Reset()
		return next

	default:
		return current
	}
}
