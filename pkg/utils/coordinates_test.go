package utils

import "testing"

// TestScreenWorldRoundTrip 测试屏幕坐标与世界坐标互相转换
func TestScreenWorldRoundTrip(t *testing.T) {
	tests := []struct {
		name         string
		screenX      float64
		screenY      float64
		wantX, wantY float64
	}{
		{"窗口中心是世界原点", 250, 250, 0, 0},
		{"左上角", 0, 0, -250, 250},
		{"右下角", 500, 500, 250, -250},
		{"中心正上方", 250, 100, 0, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wx, wy := ScreenToWorld(tt.screenX, tt.screenY, 500, 500)
			if wx != tt.wantX || wy != tt.wantY {
				t.Fatalf("ScreenToWorld = (%v, %v), want (%v, %v)", wx, wy, tt.wantX, tt.wantY)
			}
			sx, sy := WorldToScreen(wx, wy, 500, 500)
			if sx != tt.screenX || sy != tt.screenY {
				t.Errorf("WorldToScreen = (%v, %v), want (%v, %v)", sx, sy, tt.screenX, tt.screenY)
			}
		})
	}
}

func TestRectScreenOrigin(t *testing.T) {
	// 宠物在世界原点，144x144
	x, y := RectScreenOrigin(0, 0, 144, 144, 500, 500)
	if x != 178 || y != 178 {
		t.Errorf("RectScreenOrigin = (%v, %v), want (178, 178)", x, y)
	}

	// 物品栏第一格
	x, y = RectScreenOrigin(-104, -235.5, 50, 25, 500, 500)
	if x != 121 || y != 473 {
		t.Errorf("RectScreenOrigin = (%v, %v), want (121, 473)", x, y)
	}
}

// TestGridWorldMapping 测试终端网格与世界坐标的映射
func TestGridWorldMapping(t *testing.T) {
	const cols, rows = 50, 25

	// 每格 10x20 世界单位
	wx, wy := GridToWorld(0, 0, cols, rows, 500, 500)
	if wx != -245 || wy != 240 {
		t.Errorf("GridToWorld(0,0) = (%v, %v), want (-245, 240)", wx, wy)
	}

	col, row := WorldToGrid(wx, wy, cols, rows, 500, 500)
	if col != 0 || row != 0 {
		t.Errorf("WorldToGrid = (%d, %d), want (0, 0)", col, row)
	}

	col, row = WorldToGrid(0, 0, cols, rows, 500, 500)
	if col != 25 || row != 12 {
		t.Errorf("WorldToGrid(origin) = (%d, %d), want (25, 12)", col, row)
	}

	// 网格外的世界坐标
	col, _ = WorldToGrid(-300, 0, cols, rows, 500, 500)
	if col >= 0 {
		t.Errorf("WorldToGrid(-300, 0) col = %d, want negative", col)
	}
}
