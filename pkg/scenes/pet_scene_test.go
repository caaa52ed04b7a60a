package scenes

import (
	"strings"
	"testing"

	"github.com/decker502/catpet/pkg/game"
	"github.com/decker502/catpet/pkg/utils"
)

func newTestPetScene(t *testing.T) *PetScene {
	t.Helper()
	world, err := game.NewPetWorld(nil)
	if err != nil {
		t.Fatalf("NewPetWorld: %v", err)
	}
	settings, _ := game.NewSettingsManager(nil)
	return NewPetScene(world, settings)
}

// TestPetScenePointerSample 测试光标坐标到世界坐标的转换
func TestPetScenePointerSample(t *testing.T) {
	s := newTestPetScene(t)

	tests := []struct {
		name         string
		ptr          utils.PointerState
		wantX, wantY float64
		wantInWindow bool
	}{
		{"窗口中心", utils.PointerState{X: 250, Y: 250}, 0, 0, true},
		{"左上角按下", utils.PointerState{X: 0, Y: 0, Pressed: true}, -250, 250, true},
		{"窗口外", utils.PointerState{X: -20, Y: 600}, -270, -350, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := s.pointerSample(tt.ptr)
			if sample.WorldX != tt.wantX || sample.WorldY != tt.wantY {
				t.Errorf("world = (%v, %v), want (%v, %v)", sample.WorldX, sample.WorldY, tt.wantX, tt.wantY)
			}
			if sample.ScreenX != float64(tt.ptr.X) || sample.ScreenY != float64(tt.ptr.Y) {
				t.Errorf("screen = (%v, %v), want cursor position", sample.ScreenX, sample.ScreenY)
			}
			if sample.Pressed != tt.ptr.Pressed {
				t.Errorf("pressed = %v, want %v", sample.Pressed, tt.ptr.Pressed)
			}
			if sample.InWindow != tt.wantInWindow {
				t.Errorf("inWindow = %v, want %v", sample.InWindow, tt.wantInWindow)
			}
		})
	}
}

// TestPetSceneToggleDebug 切换调试信息会同步到用户设置
func TestPetSceneToggleDebug(t *testing.T) {
	s := newTestPetScene(t)
	if s.showDebug {
		t.Fatal("debug overlay should start hidden")
	}

	s.toggleDebug()
	if !s.showDebug || !s.settings.GetSettings().DebugOverlay {
		t.Error("debug overlay should be enabled in scene and settings")
	}

	s.toggleDebug()
	if s.showDebug || s.settings.GetSettings().DebugOverlay {
		t.Error("debug overlay should be disabled in scene and settings")
	}
}

func TestPetSceneDebugLines(t *testing.T) {
	s := newTestPetScene(t)
	lines := s.debugLines(s.world.Snapshot())

	// FPS + 情绪行 + 每个补给品一行
	if want := 2 + len(s.world.Supplies); len(lines) != want {
		t.Fatalf("lines = %d, want %d", len(lines), want)
	}
	if !strings.Contains(lines[1], "Idle") {
		t.Errorf("emote line = %q, want Idle", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Food") {
		t.Errorf("first supply line = %q, want Food", lines[2])
	}
}

func TestPetSceneSaveOnExitDegraded(t *testing.T) {
	s := newTestPetScene(t)
	if !s.SaveOnExit() {
		t.Error("SaveOnExit without persistent storage should succeed")
	}
}
