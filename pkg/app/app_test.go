package app

import (
	"testing"

	"github.com/decker502/catpet/pkg/config"
	"github.com/decker502/catpet/pkg/scenes"
)

func TestNewAppDefaults(t *testing.T) {
	a, err := NewApp(Config{Verbose: true})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	w, h := a.LogicalSize()
	if w != config.GameWindowWidth || h != config.GameWindowHeight {
		t.Errorf("LogicalSize = %dx%d, want %dx%d", w, h, config.GameWindowWidth, config.GameWindowHeight)
	}
	if _, ok := a.GetSceneManager().GetCurrentScene().(*scenes.PetScene); !ok {
		t.Errorf("current scene = %T, want *scenes.PetScene", a.GetSceneManager().GetCurrentScene())
	}
	if !a.IsVerbose() {
		t.Error("IsVerbose should be true")
	}
}

func TestNewAppInvalidConfig(t *testing.T) {
	cfg := config.DefaultPetConfig()
	cfg.Supplies.SnapEpsilon = 0

	if _, err := NewApp(Config{Verbose: true, Pet: cfg}); err == nil {
		t.Fatal("expected error for snapEpsilon = 0")
	}
}
