package systems

import (
	"testing"

	"github.com/decker502/catpet/pkg/components"
	"github.com/decker502/catpet/pkg/config"
	"github.com/decker502/catpet/pkg/ecs"
	"github.com/decker502/catpet/pkg/entities"
)

// testWorld 测试用的最小世界：一只宠物 + 物品栏
type testWorld struct {
	em       *ecs.EntityManager
	cfg      *config.PetConfig
	pet      ecs.EntityID
	supplies []ecs.EntityID
}

// newTestWorld 使用默认配置（或 mutate 修改后的配置）创建测试世界
func newTestWorld(t *testing.T, mutate func(*config.PetConfig)) *testWorld {
	t.Helper()

	cfg := config.DefaultPetConfig()
	if mutate != nil {
		mutate(cfg)
	}

	em := ecs.NewEntityManager()
	pet, err := entities.NewPetEntity(em, cfg)
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}
	supplies, err := entities.NewInventory(em, cfg)
	if err != nil {
		t.Fatalf("create inventory: %v", err)
	}

	return &testWorld{em: em, cfg: cfg, pet: pet, supplies: supplies}
}

func (w *testWorld) petComp() *components.PetComponent {
	pet, _ := ecs.GetComponent[*components.PetComponent](w.em, w.pet)
	return pet
}

func (w *testWorld) petAnim() *components.PetAnimationComponent {
	anim, _ := ecs.GetComponent[*components.PetAnimationComponent](w.em, w.pet)
	return anim
}

func (w *testWorld) frame() int {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](w.em, w.pet)
	return sprite.Frame
}

func (w *testWorld) position(id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return pos
}

func (w *testWorld) setPosition(id ecs.EntityID, x, y float64) {
	pos := w.position(id)
	pos.X, pos.Y = x, y
}

func (w *testWorld) setOrigin(id ecs.EntityID, x, y float64) {
	origin, _ := ecs.GetComponent[*components.OriginComponent](w.em, id)
	origin.X, origin.Y = x, y
}
