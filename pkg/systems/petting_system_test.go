package systems

import (
	"testing"

	"github.com/decker502/catpet/pkg/events"
	"github.com/decker502/catpet/pkg/types"
)

// TestPettingPurrsOnMoveAfterOnsetCompletes Enter → Move(周期) → Move(周期)：第二次移动才开始呼噜
func TestPettingPurrsOnMoveAfterOnsetCompletes(t *testing.T) {
	w := newTestWorld(t, nil)
	s := NewPettingSystem(w.em)
	period := w.cfg.Petting.PurrOnsetSeconds

	s.OnPointerEnter(events.NewEnterEvent(w.pet))
	if w.petAnim().PurrTimer.Paused {
		t.Fatal("enter should unpause the purr onset timer")
	}

	s.OnPointerMove(events.NewMoveEvent(w.pet, period))
	if w.petComp().Emote != types.EmoteIdle {
		t.Fatalf("first move completes the period but must not purr yet, got %v", w.petComp().Emote)
	}

	s.OnPointerMove(events.NewMoveEvent(w.pet, period))
	if w.petComp().Emote != types.EmotePurring {
		t.Fatalf("second move should start purring, got %v", w.petComp().Emote)
	}
}

// TestPettingShortMovesNeverPurr 周期内的移动不会呼噜
func TestPettingShortMovesNeverPurr(t *testing.T) {
	w := newTestWorld(t, nil)
	s := NewPettingSystem(w.em)
	period := w.cfg.Petting.PurrOnsetSeconds

	s.OnPointerEnter(events.NewEnterEvent(w.pet))
	for i := 0; i < 5; i++ {
		s.OnPointerMove(events.NewMoveEvent(w.pet, period/10))
	}
	if w.petComp().Emote != types.EmoteIdle {
		t.Errorf("emote = %v, want Idle", w.petComp().Emote)
	}
}

// TestPettingLeaveResets 离开总是回到 Idle 并暂停计时器
func TestPettingLeaveResets(t *testing.T) {
	w := newTestWorld(t, nil)
	s := NewPettingSystem(w.em)
	period := w.cfg.Petting.PurrOnsetSeconds

	s.OnPointerEnter(events.NewEnterEvent(w.pet))
	s.OnPointerMove(events.NewMoveEvent(w.pet, period))
	s.OnPointerMove(events.NewMoveEvent(w.pet, period))
	if w.petComp().Emote != types.EmotePurring {
		t.Fatalf("setup: expected purring, got %v", w.petComp().Emote)
	}

	s.OnPointerLeave(events.NewLeaveEvent(w.pet))
	if w.petComp().Emote != types.EmoteIdle {
		t.Errorf("leave should force Idle, got %v", w.petComp().Emote)
	}
	if !w.petAnim().PurrTimer.Paused {
		t.Error("leave should pause the purr onset timer")
	}

	// 离开时处于其他情绪也一样
	w.petComp().Emote = types.EmoteEating
	s.OnPointerLeave(events.NewLeaveEvent(w.pet))
	if w.petComp().Emote != types.EmoteIdle {
		t.Errorf("leave should force Idle from any emote, got %v", w.petComp().Emote)
	}
}

// TestPettingRapidEnterLeave 周期完成前快速进出永远不会呼噜，每次进入都从零开始
func TestPettingRapidEnterLeave(t *testing.T) {
	w := newTestWorld(t, nil)
	s := NewPettingSystem(w.em)
	period := w.cfg.Petting.PurrOnsetSeconds

	for i := 0; i < 10; i++ {
		s.OnPointerEnter(events.NewEnterEvent(w.pet))
		s.OnPointerMove(events.NewMoveEvent(w.pet, period*0.6))
		s.OnPointerMove(events.NewMoveEvent(w.pet, 0))
		s.OnPointerLeave(events.NewLeaveEvent(w.pet))
	}

	if w.petComp().Emote != types.EmoteIdle {
		t.Errorf("emote = %v, want Idle", w.petComp().Emote)
	}
	if w.petAnim().PurrTimer.Elapsed != period*0.6 {
		t.Errorf("stale timer should be reset on enter, elapsed = %v", w.petAnim().PurrTimer.Elapsed)
	}
}

// TestPettingEnterRearmsFrameTimer 进入时重置帧计时器
func TestPettingEnterRearmsFrameTimer(t *testing.T) {
	w := newTestWorld(t, nil)
	s := NewPettingSystem(w.em)

	w.petAnim().FrameTimer.Elapsed = 0.05
	s.OnPointerEnter(events.NewEnterEvent(w.pet))

	if w.petAnim().FrameTimer.Elapsed != 0 {
		t.Errorf("frame timer should be re-armed, elapsed = %v", w.petAnim().FrameTimer.Elapsed)
	}
	if w.petAnim().FrameTimer.Duration != 1.0/w.cfg.Animation.FPS {
		t.Errorf("frame timer period = %v", w.petAnim().FrameTimer.Duration)
	}

	// 计时器未暂停时再次进入不会重置
	w.petAnim().PurrTimer.Elapsed = 0.3
	s.OnPointerEnter(events.NewEnterEvent(w.pet))
	if w.petAnim().PurrTimer.Elapsed != 0.3 {
		t.Error("enter while already running must not reset the onset timer")
	}
}

// TestPettingIgnoresNonPetEntity 补给品上的指针事件不影响宠物
func TestPettingIgnoresNonPetEntity(t *testing.T) {
	w := newTestWorld(t, nil)
	s := NewPettingSystem(w.em)
	d := events.NewDispatcher(w.em)
	s.RegisterHandlers(d)

	if d.Dispatch(events.NewEnterEvent(w.supplies[0])) {
		t.Error("petting handlers must not run for supplies")
	}
	if !w.petAnim().PurrTimer.Paused {
		t.Error("pet timer should stay paused")
	}
}
