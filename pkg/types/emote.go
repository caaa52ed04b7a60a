// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Emote 定义宠物当前的情绪/行为状态，决定播放哪种动画
//
// 声明顺序即稳定的全序，零值为 EmoteIdle。
type Emote int

const (
	// EmoteIdle 空闲（默认）
	EmoteIdle Emote = iota
	// EmotePurring 被抚摸时打呼噜
	EmotePurring
	// EmoteEating 吃猫粮
	EmoteEating
	// EmoteDrinking 喝牛奶
	EmoteDrinking
	// EmotePeeing 使用猫砂
	EmotePeeing
	// EmoteSmelling 闻猫砂铲
	EmoteSmelling
	// EmotePlaying 玩玩具
	EmotePlaying
)

// String 返回情绪的字符串表示
func (e Emote) String() string {
	switch e {
	case EmoteIdle:
		return "Idle"
	case EmotePurring:
		return "Purring"
	case EmoteEating:
		return "Eating"
	case EmoteDrinking:
		return "Drinking"
	case EmotePeeing:
		return "Peeing"
	case EmoteSmelling:
		return "Smelling"
	case EmotePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}
