package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/catpet/pkg/config"
	"github.com/decker502/catpet/pkg/game"
	"github.com/decker502/catpet/pkg/systems"
	"github.com/decker502/catpet/pkg/types"
	"github.com/decker502/catpet/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 绘制颜色
var (
	backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 0}
	petBodyColor    = color.RGBA{R: 240, G: 170, B: 90, A: 255}
	petEarColor     = color.RGBA{R: 200, G: 130, B: 60, A: 255}
	petEyeColor     = color.RGBA{R: 40, G: 30, B: 30, A: 255}
	hoverColor      = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	debugBoxColor   = color.RGBA{R: 255, G: 0, B: 0, A: 160}
	debugPanelColor = color.RGBA{R: 0, G: 0, B: 0, A: 150}

	supplyColors = map[types.SupplyKind]color.RGBA{
		types.SupplyFood:        {R: 200, G: 90, B: 60, A: 255},
		types.SupplyMilk:        {R: 235, G: 235, B: 245, A: 255},
		types.SupplyLitterScoop: {R: 120, G: 160, B: 200, A: 255},
		types.SupplyLitter:      {R: 170, G: 150, B: 110, A: 255},
		types.SupplyToy:         {R: 220, G: 90, B: 180, A: 255},
	}
)

// PetScene 窗口模式下的桌宠场景
//
// 每帧：采样指针 → 世界更新（指针事件 + 管线）→ 绘制。
// F3 切换调试信息（情绪、帧号、包围盒、补给品位置）。
type PetScene struct {
	world    *game.PetWorld
	settings *game.SettingsManager

	showDebug    bool
	screenWidth  float64
	screenHeight float64
}

// NewPetScene 创建桌宠场景
//
// 参数:
//   - world: 桌宠世界
//   - settings: 用户设置，可为 nil（不保存调试开关）
func NewPetScene(world *game.PetWorld, settings *game.SettingsManager) *PetScene {
	s := &PetScene{
		world:        world,
		settings:     settings,
		screenWidth:  world.Config.World.Width,
		screenHeight: world.Config.World.Height,
	}
	if settings != nil {
		s.showDebug = settings.GetSettings().DebugOverlay
	}
	return s
}

// Update 推进一帧
func (s *PetScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.toggleDebug()
	}

	s.world.Update(s.pointerSample(utils.GetPointerState()), deltaTime)
}

// toggleDebug 切换调试信息显示
func (s *PetScene) toggleDebug() {
	s.showDebug = !s.showDebug
	if s.settings != nil {
		s.settings.SetDebugOverlay(s.showDebug)
	}
	log.Printf("[PetScene] 调试信息: %v", s.showDebug)
}

// pointerSample 把 ebiten 指针状态转换为世界的指针采样
func (s *PetScene) pointerSample(ptr utils.PointerState) systems.PointerSample {
	sx, sy := float64(ptr.X), float64(ptr.Y)
	wx, wy := utils.ScreenToWorld(sx, sy, s.screenWidth, s.screenHeight)
	return systems.PointerSample{
		WorldX:   wx,
		WorldY:   wy,
		ScreenX:  sx,
		ScreenY:  sy,
		Pressed:  ptr.Pressed,
		InWindow: utils.InBounds(ptr.X, ptr.Y, int(s.screenWidth), int(s.screenHeight)),
	}
}

// Draw 绘制宠物、物品栏和调试信息
func (s *PetScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := s.world.Snapshot()
	s.drawPet(screen, snap)
	s.drawSupplies(screen, snap)

	if s.showDebug {
		s.drawDebug(screen, snap)
	}
}

// drawPet 绘制宠物
//
// 没有精灵图时用简单图形表示，帧号决定身体的起伏：
// 静止帧最低，越接近呼噜帧身体越高，两帧呼噜帧之间左右抖动。
func (s *PetScene) drawPet(screen *ebiten.Image, snap game.Snapshot) {
	anim := s.world.Config.Animation
	cx, cy := utils.WorldToScreen(snap.PetX, snap.PetY, s.screenWidth, s.screenHeight)

	span := float64(anim.PurrFrames[0] - anim.FirstFrame)
	progress := 0.0
	if span > 0 {
		progress = math.Min(1, float64(snap.Frame-anim.FirstFrame)/span)
	}
	lift := progress * 12
	wobble := 0.0
	if snap.Frame == anim.PurrFrames[1] {
		wobble = 2
	}

	radius := float32(snap.PetWidth / 3)
	bodyX := float32(cx + wobble)
	bodyY := float32(cy + 10 - lift)

	if snap.Hovered == s.world.PetID {
		x, y := utils.RectScreenOrigin(snap.PetX, snap.PetY, snap.PetWidth, snap.PetHeight, s.screenWidth, s.screenHeight)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(snap.PetWidth), float32(snap.PetHeight), hoverColor, false)
	}

	// 耳朵
	earSize := radius / 2
	vector.DrawFilledRect(screen, bodyX-radius*0.8, bodyY-radius*1.2, earSize, earSize, petEarColor, false)
	vector.DrawFilledRect(screen, bodyX+radius*0.8-earSize, bodyY-radius*1.2, earSize, earSize, petEarColor, false)

	// 身体
	vector.DrawFilledCircle(screen, bodyX, bodyY, radius, petBodyColor, true)

	// 眼睛：呼噜时眯眼
	eyeY := bodyY - radius/3
	if snap.Emote == types.EmotePurring {
		vector.StrokeLine(screen, bodyX-radius/2-4, eyeY, bodyX-radius/2+4, eyeY, 2, petEyeColor, true)
		vector.StrokeLine(screen, bodyX+radius/2-4, eyeY, bodyX+radius/2+4, eyeY, 2, petEyeColor, true)
	} else {
		vector.DrawFilledCircle(screen, bodyX-radius/2, eyeY, 4, petEyeColor, true)
		vector.DrawFilledCircle(screen, bodyX+radius/2, eyeY, 4, petEyeColor, true)
	}

	ebitenutil.DebugPrintAt(screen, snap.Emote.String(), int(cx)-len(snap.Emote.String())*3, int(bodyY+radius)+4)
}

// drawSupplies 绘制物品栏中的补给品
func (s *PetScene) drawSupplies(screen *ebiten.Image, snap game.Snapshot) {
	for _, supply := range snap.Supplies {
		x, y := utils.RectScreenOrigin(supply.X, supply.Y, supply.Width, supply.Height, s.screenWidth, s.screenHeight)
		clr, ok := supplyColors[supply.Kind]
		if !ok {
			clr = color.RGBA{R: 128, G: 128, B: 128, A: 255}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(supply.Width), float32(supply.Height), clr, false)
		if supply.Dragging || snap.Hovered == supply.ID {
			vector.StrokeRect(screen, float32(x), float32(y), float32(supply.Width), float32(supply.Height), 2, petEyeColor, false)
		}
		label := supply.Kind.String()
		if len(label) > 6 {
			label = label[:6]
		}
		ebitenutil.DebugPrintAt(screen, label, int(x)+2, int(y)+4)
	}
}

// drawDebug 绘制调试信息：靠近检测用的包围盒和状态文本
func (s *PetScene) drawDebug(screen *ebiten.Image, snap game.Snapshot) {
	half := s.world.Config.Pet.HalfExtent
	x, y := utils.RectScreenOrigin(snap.PetX, snap.PetY, half.X*2, half.Y*2, s.screenWidth, s.screenHeight)
	vector.StrokeRect(screen, float32(x), float32(y), float32(half.X*2), float32(half.Y*2), 1, debugBoxColor, false)

	lines := s.debugLines(snap)
	vector.DrawFilledRect(screen, 4, 4, 220, float32(len(lines)*16+8), debugPanelColor, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 8+i*16)
	}
}

// debugLines 调试信息文本
func (s *PetScene) debugLines(snap game.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()),
		fmt.Sprintf("Emote: %s  Frame: %d/%d", snap.Emote, snap.Frame, config.PetSheetFrames-1),
	}
	for _, supply := range snap.Supplies {
		state := ""
		if supply.Dragging {
			state = " (drag)"
		}
		lines = append(lines, fmt.Sprintf("%-11s %7.1f,%7.1f%s", supply.Kind, supply.X, supply.Y, state))
	}
	return lines
}

// SaveOnExit 窗口关闭时保存用户设置
func (s *PetScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[PetScene] 保存设置失败: %v", err)
		return false
	}
	return true
}

var (
	_ Scene         = (*PetScene)(nil)
	_ game.Saveable = (*PetScene)(nil)
)
