package game

import (
	"errors"
	"testing"

	"github.com/decker502/catpet/pkg/config"
	"github.com/decker502/catpet/pkg/entities"
	"github.com/decker502/catpet/pkg/systems"
	"github.com/decker502/catpet/pkg/types"
)

// worldSample 构造世界坐标 (x, y) 处的指针采样（屏幕坐标以窗口中心为原点，Y 向下）
func worldSample(x, y float64, pressed bool) systems.PointerSample {
	return systems.PointerSample{
		WorldX:   x,
		WorldY:   y,
		ScreenX:  x,
		ScreenY:  -y,
		Pressed:  pressed,
		InWindow: true,
	}
}

func TestNewPetWorldDefaults(t *testing.T) {
	w, err := NewPetWorld(nil)
	if err != nil {
		t.Fatalf("NewPetWorld: %v", err)
	}

	snap := w.Snapshot()
	if snap.Emote != types.EmoteIdle {
		t.Errorf("initial emote = %v, want Idle", snap.Emote)
	}
	if snap.Frame != w.Config.Animation.FirstFrame {
		t.Errorf("initial frame = %d, want %d", snap.Frame, w.Config.Animation.FirstFrame)
	}
	if len(snap.Supplies) != len(types.AllSupplyKinds()) {
		t.Fatalf("supplies = %d, want %d", len(snap.Supplies), len(types.AllSupplyKinds()))
	}
	for i, kind := range types.AllSupplyKinds() {
		if snap.Supplies[i].Kind != kind {
			t.Errorf("supply %d kind = %v, want %v", i, snap.Supplies[i].Kind, kind)
		}
	}
}

func TestNewPetWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultPetConfig()
	cfg.Animation.FPS = 0

	if _, err := NewPetWorld(cfg); err == nil {
		t.Fatal("expected error for fps = 0")
	}
}

func TestPetWorldSinglePet(t *testing.T) {
	w, err := NewPetWorld(nil)
	if err != nil {
		t.Fatalf("NewPetWorld: %v", err)
	}
	if _, err := entities.NewPetEntity(w.EntityManager, w.Config); !errors.Is(err, entities.ErrPetExists) {
		t.Errorf("second pet err = %v, want ErrPetExists", err)
	}
}

// TestPetWorldPettingWithPointer 指针在宠物上持续移动满一个周期后开始呼噜
func TestPetWorldPettingWithPointer(t *testing.T) {
	w, err := NewPetWorld(nil)
	if err != nil {
		t.Fatalf("NewPetWorld: %v", err)
	}

	dt := 1.0 / 60
	x := 0.0
	purred := false
	for i := 0; i < 90; i++ {
		// 每帧挪动一像素，保证产生 Move 事件
		x = float64(i%20) - 10
		w.Update(worldSample(x, 0, false), dt)
		if w.Snapshot().Emote == types.EmotePurring {
			purred = true
			break
		}
	}
	if !purred {
		t.Fatal("pet should purr after being stroked for more than the onset period")
	}

	// 指针移出宠物
	w.Update(worldSample(200, 200, false), dt)
	if got := w.Snapshot().Emote; got != types.EmoteIdle {
		t.Errorf("emote after leave = %v, want Idle", got)
	}
}

// TestPetWorldDragSupplyOntoPet 拖动食物到宠物身上触发进食，松开后食物回到槽位
func TestPetWorldDragSupplyOntoPet(t *testing.T) {
	w, err := NewPetWorld(nil)
	if err != nil {
		t.Fatalf("NewPetWorld: %v", err)
	}
	dt := 1.0 / 60

	food := w.Snapshot().Supplies[0]
	slotX, slotY := food.X, food.Y

	w.Update(worldSample(slotX, slotY, false), dt)
	w.Update(worldSample(slotX, slotY, true), dt)
	if w.Input.Dragging() != food.ID {
		t.Fatalf("dragging = %d, want food %d", w.Input.Dragging(), food.ID)
	}

	w.Update(worldSample(0, 0, true), dt)
	snap := w.Snapshot()
	if snap.Supplies[0].X != 0 || snap.Supplies[0].Y != 0 {
		t.Fatalf("food at (%v, %v), want (0, 0)", snap.Supplies[0].X, snap.Supplies[0].Y)
	}
	if snap.Emote != types.EmoteEating {
		t.Errorf("emote = %v, want Eating", snap.Emote)
	}

	w.Update(worldSample(0, 0, false), dt)
	for i := 0; i < 120; i++ {
		w.Update(worldSample(200, 200, false), dt)
	}
	snap = w.Snapshot()
	if snap.Supplies[0].X != slotX || snap.Supplies[0].Y != slotY {
		t.Errorf("food at (%v, %v), want slot (%v, %v)", snap.Supplies[0].X, snap.Supplies[0].Y, slotX, slotY)
	}
	if snap.Supplies[0].Dragging {
		t.Error("food should not be dragging after release")
	}
}
