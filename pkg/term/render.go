package term

import (
	"fmt"
	"math"

	"github.com/decker502/catpet/pkg/game"
	"github.com/decker502/catpet/pkg/types"
	"github.com/decker502/catpet/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

var (
	petStyle     = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	hoverStyle   = petStyle.Bold(true)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	debugStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	supplyStyles = map[types.SupplyKind]tcell.Style{
		types.SupplyFood:        tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorIndianRed),
		types.SupplyMilk:        tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		types.SupplyLitterScoop: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSteelBlue),
		types.SupplyLitter:      tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTan),
		types.SupplyToy:         tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorOrchid),
	}
)

// petFace 宠物脸，按情绪区分
func petFace(emote types.Emote, frame int, purrFrames [2]int) string {
	switch emote {
	case types.EmotePurring:
		if frame == purrFrames[1] {
			return "(=-.-=)~"
		}
		return "(=-.-=)"
	case types.EmoteEating:
		return "(=^o^=)"
	case types.EmoteDrinking:
		return "(=^u^=)"
	case types.EmotePeeing:
		return "(=>.<=)"
	case types.EmoteSmelling:
		return "(=^x^=)"
	case types.EmotePlaying:
		return "(=^w^=)"
	default:
		return "(=^.^=)"
	}
}

// Render 绘制当前世界
func (h *Host) Render() {
	h.screen.Clear()
	if h.cols <= 0 || h.rows <= 0 {
		h.screen.Show()
		return
	}

	snap := h.world.Snapshot()
	h.drawPet(snap)
	h.drawSupplies(snap)
	h.drawStatus(snap)

	h.screen.Show()
}

// cellRect 世界矩形覆盖的格子范围 [c0, c1] x [r0, r1]
func (h *Host) cellRect(centerX, centerY, width, height float64) (c0, r0, c1, r1 int) {
	worldW := h.world.Config.World.Width
	worldH := h.world.Config.World.Height
	cellW := worldW / float64(h.cols)
	cellH := worldH / float64(h.rows)

	x0, y0 := utils.RectScreenOrigin(centerX, centerY, width, height, worldW, worldH)
	c0 = int(math.Floor(x0 / cellW))
	r0 = int(math.Floor(y0 / cellH))
	c1 = int(math.Ceil((x0+width)/cellW)) - 1
	r1 = int(math.Ceil((y0+height)/cellH)) - 1
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	return c0, r0, c1, r1
}

func (h *Host) drawPet(snap game.Snapshot) {
	c0, r0, c1, r1 := h.cellRect(snap.PetX, snap.PetY, snap.PetWidth, snap.PetHeight)
	style := petStyle
	if snap.Hovered == h.world.PetID {
		style = hoverStyle
	}

	for col := c0; col <= c1; col++ {
		h.setCell(col, r0, '-', style)
		h.setCell(col, r1, '-', style)
	}
	for row := r0; row <= r1; row++ {
		h.setCell(c0, row, '|', style)
		h.setCell(c1, row, '|', style)
	}

	face := petFace(snap.Emote, snap.Frame, h.world.Config.Animation.PurrFrames)
	midRow := (r0 + r1) / 2
	h.drawText((c0+c1)/2-len(face)/2, midRow, face, style)
	label := snap.Emote.String()
	h.drawText((c0+c1)/2-len(label)/2, midRow+1, label, style)

	if h.showDebug {
		half := h.world.Config.Pet.HalfExtent
		b0, s0, b1, s1 := h.cellRect(snap.PetX, snap.PetY, half.X*2, half.Y*2)
		h.setCell(b0, s0, '+', debugStyle)
		h.setCell(b1, s0, '+', debugStyle)
		h.setCell(b0, s1, '+', debugStyle)
		h.setCell(b1, s1, '+', debugStyle)
	}
}

func (h *Host) drawSupplies(snap game.Snapshot) {
	for _, supply := range snap.Supplies {
		c0, r0, c1, r1 := h.cellRect(supply.X, supply.Y, supply.Width, supply.Height)
		style, ok := supplyStyles[supply.Kind]
		if !ok {
			style = tcell.StyleDefault.Reverse(true)
		}
		if supply.Dragging || snap.Hovered == supply.ID {
			style = style.Bold(true).Underline(true)
		}

		label := []rune(supply.Kind.String())
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				ch := ' '
				if i := col - c0; row == r0 && i < len(label) {
					ch = label[i]
				}
				h.setCell(col, row, ch, style)
			}
		}
	}
}

func (h *Host) drawStatus(snap game.Snapshot) {
	status := fmt.Sprintf(" %s  frame %d  [d] debug  [q] quit ", snap.Emote, snap.Frame)
	if h.showDebug {
		sample := h.PointerSample()
		status += fmt.Sprintf(" ptr %.0f,%.0f pressed=%v ", sample.WorldX, sample.WorldY, sample.Pressed)
	}
	h.drawText(0, h.rows-1, status, statusStyle)
}

func (h *Host) drawText(col, row int, text string, style tcell.Style) {
	for _, ch := range text {
		h.setCell(col, row, ch, style)
		col++
	}
}

// setCell 写入一个格子，网格外的坐标忽略
func (h *Host) setCell(col, row int, ch rune, style tcell.Style) {
	if !utils.InBounds(col, row, h.cols, h.rows) {
		return
	}
	h.screen.SetContent(col, row, ch, nil, style)
}
