package components

import "github.com/decker502/catpet/pkg/types"

// PetComponent 标记实体为宠物，并存储当前情绪
//
// 抚摸系统与靠近检测系统都会写入 Emote，同一帧内后写者生效
// （管线中靠近检测在抚摸之后运行）。
type PetComponent struct {
	Emote types.Emote
}
