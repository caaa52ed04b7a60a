package systems

import (
	"log"
	"math"

	"github.com/decker502/catpet/pkg/components"
	"github.com/decker502/catpet/pkg/ecs"
	"github.com/decker502/catpet/pkg/types"
)

// ProximitySystem 检测宠物与补给品的包围盒重叠，并覆盖宠物情绪
//
// 宠物包围盒以宠物位置为中心、半宽高固定（默认 64x64）；
// 补给品包围盒以补给品位置为中心、半宽高为 ScaleComponent 的一半。
// 补给品按创建顺序检测，同时重叠多个时最后一个生效。
//
// 管线中本系统在抚摸事件之后运行，因此会覆盖抚摸写入的情绪。
type ProximitySystem struct {
	entityManager *ecs.EntityManager
	petHalfWidth  float64
	petHalfHeight float64
}

// NewProximitySystem 创建靠近检测系统
//
// 参数:
//   - em: EntityManager 实例
//   - petHalfWidth, petHalfHeight: 宠物包围盒半宽、半高
func NewProximitySystem(em *ecs.EntityManager, petHalfWidth, petHalfHeight float64) *ProximitySystem {
	return &ProximitySystem{
		entityManager: em,
		petHalfWidth:  petHalfWidth,
		petHalfHeight: petHalfHeight,
	}
}

// boxesIntersect 检查两个中心对齐的轴对齐包围盒是否相交
// 使用闭区间：边界刚好接触也算相交
func boxesIntersect(ax, ay, aHalfW, aHalfH, bx, by, bHalfW, bHalfH float64) bool {
	return math.Abs(ax-bx) <= aHalfW+bHalfW &&
		math.Abs(ay-by) <= aHalfH+bHalfH
}

// Update 为每只宠物重新计算靠近补给品后的情绪
//
// 参数:
//   - deltaTime: 本系统不使用
func (s *ProximitySystem) Update(deltaTime float64) {
	pets := ecs.GetEntitiesWith2[
		*components.PetComponent,
		*components.PositionComponent,
	](s.entityManager)
	if len(pets) == 0 {
		return
	}

	supplies := ecs.GetEntitiesWith3[
		*components.SupplyComponent,
		*components.PositionComponent,
		*components.ScaleComponent,
	](s.entityManager)

	for _, petID := range pets {
		pet, _ := ecs.GetComponent[*components.PetComponent](s.entityManager, petID)
		petPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, petID)

		before := pet.Emote
		for _, supplyID := range supplies {
			supply, _ := ecs.GetComponent[*components.SupplyComponent](s.entityManager, supplyID)
			supplyPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, supplyID)
			scale, _ := ecs.GetComponent[*components.ScaleComponent](s.entityManager, supplyID)

			if boxesIntersect(
				petPos.X, petPos.Y, s.petHalfWidth, s.petHalfHeight,
				supplyPos.X, supplyPos.Y, scale.ScaleX/2, scale.ScaleY/2,
			) {
				pet.Emote = types.EmoteFor(supply.Kind)
			}
		}

		if pet.Emote != before {
			log.Printf("[ProximitySystem] 宠物情绪 %s -> %s (实体ID: %d)", before, pet.Emote, petID)
		}
	}
}
