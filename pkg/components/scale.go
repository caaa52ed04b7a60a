package components

// ScaleComponent 存储实体级别的缩放因子
//
// 补给品的靠近检测盒半宽 = ScaleX/2，半高 = ScaleY/2，
// 与绘制尺寸（ClickableComponent）相互独立。
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小）
	ScaleY float64
}
