package scenes

import (
	"github.com/decker502/catpet/pkg/game"
)

// Scene 是 game.Scene 的别名
// 场景实现都应满足 game.Scene 接口
type Scene = game.Scene

