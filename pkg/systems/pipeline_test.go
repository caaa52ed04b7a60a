package systems

import (
	"testing"

	"github.com/decker502/catpet/pkg/events"
	"github.com/decker502/catpet/pkg/types"
)

func newTestPipeline(w *testWorld) (*Pipeline, *events.Queue) {
	q := events.NewQueue()
	d := events.NewDispatcher(w.em)
	NewPettingSystem(w.em).RegisterHandlers(d)
	NewSupplyDragSystem(w.em).RegisterHandlers(d)

	p := NewPipeline(PipelineSystems{
		Queue:      q,
		Dispatcher: d,
		Proximity:  NewProximitySystem(w.em, w.cfg.Pet.HalfExtent.X, w.cfg.Pet.HalfExtent.Y),
		Animation:  NewPetAnimationSystem(w.em, w.cfg.Animation.IdleRewind),
		Return:     NewSupplyReturnSystem(w.em, w.cfg.Supplies.SnapEpsilon, w.cfg.Supplies.ClampOvershoot),
	})
	return p, q
}

func TestPipelineStageOrder(t *testing.T) {
	w := newTestWorld(t, nil)
	p, _ := newTestPipeline(w)

	want := []string{StagePointerDispatch, StageProximity, StagePetAnimation, StageSupplyReturn}
	got := p.StageNames()
	if len(got) != len(want) {
		t.Fatalf("stages = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stages = %v, want %v", got, want)
		}
	}
}

// TestPipelineProximityOverridesPetting 同一帧内靠近检测覆盖抚摸写入的呼噜
func TestPipelineProximityOverridesPetting(t *testing.T) {
	w := newTestWorld(t, nil)
	p, q := newTestPipeline(w)
	period := w.cfg.Petting.PurrOnsetSeconds

	q.Push(events.NewEnterEvent(w.pet))
	q.Push(events.NewMoveEvent(w.pet, period))
	p.Update(0.016)

	// 拖着牛奶到宠物身上，同一帧内抚摸会进入呼噜
	milk := w.supplies[1]
	q.Push(events.NewDragStartEvent(milk))
	q.Push(events.NewMoveEvent(w.pet, period))
	pos := w.position(milk)
	q.Push(events.NewDragEvent(milk, -pos.X, pos.Y))
	p.Update(0.016)

	if w.petComp().Emote != types.EmoteDrinking {
		t.Fatalf("emote = %v, proximity should win over petting", w.petComp().Emote)
	}

	// 动画读到的是 Drinking，帧不变
	if w.frame() != w.cfg.Animation.FirstFrame {
		t.Errorf("frame = %d, animation should not advance for Drinking", w.frame())
	}
}

// TestPipelinePurrThenRelease 抚摸呼噜推进帧，离开后逐帧退回
func TestPipelinePurrThenRelease(t *testing.T) {
	w := newTestWorld(t, nil)
	p, q := newTestPipeline(w)
	period := w.cfg.Petting.PurrOnsetSeconds
	frameTime := 1.0 / w.cfg.Animation.FPS

	q.Push(events.NewEnterEvent(w.pet))
	q.Push(events.NewMoveEvent(w.pet, period))
	p.Update(frameTime)
	q.Push(events.NewMoveEvent(w.pet, frameTime))
	p.Update(frameTime)
	if w.petComp().Emote != types.EmotePurring {
		t.Fatalf("emote = %v, want Purring", w.petComp().Emote)
	}

	for i := 0; i < 3; i++ {
		p.Update(frameTime)
	}
	advanced := w.frame()
	if advanced <= w.cfg.Animation.FirstFrame {
		t.Fatalf("purring should advance frames, frame = %d", advanced)
	}

	q.Push(events.NewLeaveEvent(w.pet))
	p.Update(frameTime)
	if w.frame() != advanced-1 {
		t.Fatalf("frame = %d, want %d after one idle tick", w.frame(), advanced-1)
	}
	for i := 0; i < advanced; i++ {
		p.Update(frameTime)
	}
	if w.frame() != w.cfg.Animation.FirstFrame {
		t.Errorf("frame = %d, want rest frame", w.frame())
	}
}

// TestPipelineReleasedSupplyReturns 松开后补给品回到槽位，宠物情绪保留最后一次覆盖
func TestPipelineReleasedSupplyReturns(t *testing.T) {
	w := newTestWorld(t, nil)
	p, q := newTestPipeline(w)
	toy := w.supplies[4]
	slot := *w.position(toy)

	q.Push(events.NewDragStartEvent(toy))
	q.Push(events.NewDragEvent(toy, -slot.X, slot.Y))
	p.Update(0.016)
	if w.petComp().Emote != types.EmotePlaying {
		t.Fatalf("emote = %v, want Playing", w.petComp().Emote)
	}

	q.Push(events.NewDragEndEvent(toy))
	for i := 0; i < 120; i++ {
		p.Update(1.0 / 60)
	}
	if pos := w.position(toy); *pos != slot {
		t.Errorf("toy at (%v, %v), want slot (%v, %v)", pos.X, pos.Y, slot.X, slot.Y)
	}
}

// TestPipelineDropsEventsForDestroyedEntity 已销毁实体的事件被丢弃，其余事件照常处理
func TestPipelineDropsEventsForDestroyedEntity(t *testing.T) {
	w := newTestWorld(t, nil)
	p, q := newTestPipeline(w)

	litter := w.supplies[3]
	w.em.DestroyEntity(litter)
	w.em.RemoveMarkedEntities()

	q.Push(events.NewDragStartEvent(litter))
	q.Push(events.NewDragEvent(litter, 10, 10))
	q.Push(events.NewEnterEvent(w.pet))
	p.Update(0.016)

	if q.Len() != 0 {
		t.Fatalf("queue should be drained, len = %d", q.Len())
	}
	if w.petAnim().PurrTimer.Paused {
		t.Error("enter event after dropped events should still be handled")
	}
}
