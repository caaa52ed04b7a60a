package components

// ClickableComponent 标记实体可以被指针命中
// 定义了以实体位置为中心的命中区域尺寸
type ClickableComponent struct {
	Width     float64 // 命中区域的宽度(像素)
	Height    float64 // 命中区域的高度(像素)
	IsEnabled bool    // 是否响应指针
	Layer     int     // 层级，数值大的优先命中（补给品位于宠物之上）
}
