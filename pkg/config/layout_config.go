package config

// 布局配置常量
// 本文件定义了窗口、宠物和物品栏的布局参数
//
// 世界坐标系原点位于窗口中心，Y 轴向上；
// 屏幕坐标系原点位于窗口左上角，Y 轴向下。
const (
	// GameWindowWidth 窗口逻辑宽度（像素）
	GameWindowWidth = 500

	// GameWindowHeight 窗口逻辑高度（像素）
	GameWindowHeight = 500

	// WorldHalfHeight 世界坐标Y方向的半高，物品栏贴着底边
	WorldHalfHeight = GameWindowHeight / 2.0

	// PetSpriteSize 精灵表中单帧边长（像素）
	PetSpriteSize = 24

	// PetSheetFrames 呼噜精灵表的帧数（单行）
	PetSheetFrames = 10

	// PetLayer 宠物的命中层级
	PetLayer = 1

	// SupplyLayer 补给品的命中层级，高于宠物
	SupplyLayer = 3

	// SupplySlotGap 物品栏槽位之间的间隙（像素）
	SupplySlotGap = 2.0
)

// SupplySlotX 返回第 index 个物品栏槽位中心的世界X坐标
//
// 五个槽位以窗口中心为对称轴排列，index 为 0~count-1。
//
// 示例（slotWidth=50, count=5）:
//
//	SupplySlotX(0, 5, 50) = -104
//	SupplySlotX(2, 5, 50) = 0
func SupplySlotX(index, count int, slotWidth float64) float64 {
	center := float64(count-1) / 2.0
	return (float64(index) - center) * (slotWidth + SupplySlotGap)
}

// SupplySlotY 返回物品栏槽位中心的世界Y坐标（距底边 2 像素）
func SupplySlotY(worldHeight, slotHeight float64) float64 {
	return -worldHeight/2.0 + (slotHeight/2.0 + SupplySlotGap)
}
