// Package term 提供终端模式的宿主：用 tcell 采集鼠标、按字符格绘制桌宠世界
package term

import (
	"context"
	"log"
	"time"

	"github.com/decker502/catpet/pkg/game"
	"github.com/decker502/catpet/pkg/systems"
	"github.com/decker502/catpet/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// Host 终端宿主
//
// 终端的字符网格等比覆盖整个世界，鼠标所在格子的中心作为指针的世界坐标。
// 拖拽位移按世界单位计算（Y 向下），与窗口宿主的屏幕坐标一致。
type Host struct {
	screen tcell.Screen
	world  *game.PetWorld
	fps    int

	cols, rows int

	// 最近一次鼠标状态
	mouseCol, mouseRow int
	pressed            bool
	hasMouse           bool

	showDebug bool
	quit      bool
}

// NewHost 创建终端宿主
//
// 参数:
//   - screen: 已 Init 的 tcell 屏幕（测试中使用 SimulationScreen）
//   - world: 桌宠世界
//   - fps: 刷新率（每秒帧数，必须 > 0）
func NewHost(screen tcell.Screen, world *game.PetWorld, fps int) *Host {
	if fps <= 0 {
		fps = 30
	}
	h := &Host{
		screen: screen,
		world:  world,
		fps:    fps,
	}
	h.cols, h.rows = screen.Size()
	return h
}

// Run 进入主循环，直到按下退出键或 ctx 被取消
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	h.screen.HideCursor()
	defer h.screen.DisableMouse()

	ticker := time.NewTicker(time.Second / time.Duration(h.fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// 屏幕已 Fini
				return
			}
			eventChan <- ev
		}
	}()

	log.Printf("[TermHost] 开始运行 (%dx%d, %d fps)", h.cols, h.rows, h.fps)

	deltaTime := 1.0 / float64(h.fps)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[TermHost] 退出: %v", ctx.Err())
			return nil
		case ev := <-eventChan:
			h.HandleEvent(ev)
			if h.quit {
				log.Printf("[TermHost] 用户退出")
				return nil
			}
		case <-ticker.C:
			h.Step(deltaTime)
		}
	}
}

// HandleEvent 处理一个 tcell 事件
func (h *Host) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		h.mouseCol, h.mouseRow = ev.Position()
		h.pressed = ev.Buttons()&tcell.Button1 != 0
		h.hasMouse = true

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			h.quit = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			h.quit = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
			h.showDebug = !h.showDebug
		}

	case *tcell.EventResize:
		h.screen.Sync()
		h.cols, h.rows = h.screen.Size()
		log.Printf("[TermHost] 终端大小变化: %dx%d", h.cols, h.rows)
	}
}

// Step 推进一帧并重绘
func (h *Host) Step(deltaTime float64) {
	h.world.Update(h.PointerSample(), deltaTime)
	h.Render()
}

// Quit 返回用户是否请求退出
func (h *Host) Quit() bool {
	return h.quit
}

// PointerSample 把最近的鼠标状态转换为世界的指针采样
func (h *Host) PointerSample() systems.PointerSample {
	if !h.hasMouse || h.cols <= 0 || h.rows <= 0 {
		return systems.PointerSample{}
	}

	worldW := h.world.Config.World.Width
	worldH := h.world.Config.World.Height
	wx, wy := utils.GridToWorld(h.mouseCol, h.mouseRow, h.cols, h.rows, worldW, worldH)
	sx, sy := utils.WorldToScreen(wx, wy, worldW, worldH)

	return systems.PointerSample{
		WorldX:   wx,
		WorldY:   wy,
		ScreenX:  sx,
		ScreenY:  sy,
		Pressed:  h.pressed,
		InWindow: utils.InBounds(h.mouseCol, h.mouseRow, h.cols, h.rows),
	}
}
