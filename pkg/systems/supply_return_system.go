package systems

import (
	"log"
	"math"

	"github.com/decker502/catpet/pkg/components"
	"github.com/decker502/catpet/pkg/ecs"
)

// SupplyReturnSystem 让松开的补给品以恒定速度回到物品栏槽位
//
// 每帧对每个未被拖拽、且不在槽位上的补给品：
//  1. 计算到槽位的距离 d
//  2. d 小于吸附距离时直接放回槽位
//  3. 否则沿直线移动 speed*dt 像素（按比例插值）
//
// 默认不限制插值比例，步长大于 d 时会越过槽位，下一帧再反向修正；
// clampOvershoot 为 true 时比例限制在 [0, 1]。
type SupplyReturnSystem struct {
	entityManager  *ecs.EntityManager
	snapEpsilon    float64
	clampOvershoot bool
}

// NewSupplyReturnSystem 创建补给品归位系统
//
// 参数:
//   - em: EntityManager 实例
//   - snapEpsilon: 吸附距离（像素）
//   - clampOvershoot: 是否禁止越过槽位
func NewSupplyReturnSystem(em *ecs.EntityManager, snapEpsilon float64, clampOvershoot bool) *SupplyReturnSystem {
	return &SupplyReturnSystem{
		entityManager:  em,
		snapEpsilon:    snapEpsilon,
		clampOvershoot: clampOvershoot,
	}
}

// Update 推进所有补给品的归位运动
func (s *SupplyReturnSystem) Update(deltaTime float64) {
	supplies := ecs.GetEntitiesWith4[
		*components.PositionComponent,
		*components.OriginComponent,
		*components.DragComponent,
		*components.ReturnVelocityComponent,
	](s.entityManager)

	for _, id := range supplies {
		drag, _ := ecs.GetComponent[*components.DragComponent](s.entityManager, id)
		if drag.Dragging {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		origin, _ := ecs.GetComponent[*components.OriginComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.ReturnVelocityComponent](s.entityManager, id)

		// 已在槽位上：不做任何计算
		if pos.X == origin.X && pos.Y == origin.Y {
			continue
		}

		x, y, snapped := StepTowardOrigin(pos.X, pos.Y, origin.X, origin.Y, vel.Speed, deltaTime, s.snapEpsilon, s.clampOvershoot)
		pos.X, pos.Y = x, y
		if snapped {
			log.Printf("[SupplyReturnSystem] 补给品回到槽位 (实体ID: %d, 位置: (%.1f, %.1f))", id, x, y)
		}
	}
}

// StepTowardOrigin 计算一帧归位后的新位置
//
// 参数:
//   - x, y: 当前位置
//   - originX, originY: 槽位位置
//   - speed: 归位速度（像素/秒）
//   - deltaTime: 帧时间（秒）
//   - snapEpsilon: 吸附距离
//   - clampOvershoot: 是否将插值比例限制在 [0, 1]
//
// 返回:
//   - 新位置，以及本帧是否落到了槽位上
//
// 示例（不限制比例）:
//
//	StepTowardOrigin(100, 0, 0, 0, 500, 1.0, 3, false) = (-400, 0, false)
//	StepTowardOrigin(2, 0, 0, 0, 500, 0.016, 3, false) = (0, 0, true)
func StepTowardOrigin(x, y, originX, originY, speed, deltaTime, snapEpsilon float64, clampOvershoot bool) (float64, float64, bool) {
	dx := x - originX
	dy := y - originY
	distance := math.Sqrt(dx*dx + dy*dy)

	if distance < snapEpsilon {
		return originX, originY, true
	}

	step := speed * deltaTime
	ratio := step / distance
	if clampOvershoot {
		ratio = math.Max(0, math.Min(1, ratio))
	}

	newX := (1-ratio)*x + ratio*originX
	newY := (1-ratio)*y + ratio*originY
	return newX, newY, newX == originX && newY == originY
}
