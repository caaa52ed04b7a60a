package components

// PetAnimationComponent 宠物精灵表的帧动画状态
//
// 呼噜动画从 FirstFrame 逐帧走到 PurrFrames，然后在两帧之间来回切换；
// 回到空闲时逐帧退回 FirstFrame。
type PetAnimationComponent struct {
	FirstFrame int    // 静止帧索引
	PurrFrames [2]int // 呼噜循环的两帧
	FPS        float64

	// FrameTimer 帧切换计时器，周期 1/FPS 秒
	// 每次换帧后重置，不保留余数
	FrameTimer Timer

	// PurrTimer 呼噜起始计时器
	// 指针持续在宠物上移动满一个周期后，下一次移动才会进入呼噜
	// 由抚摸系统拥有，初始为暂停状态
	PurrTimer Timer
}
