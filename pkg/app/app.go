// Package app 提供窗口模式的应用包装器
//
// 该包把桌宠世界、场景和用户设置组装成 ebiten.Game，main 包只负责解析命令行。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/catpet/pkg/config"
	"github.com/decker502/catpet/pkg/game"
	"github.com/decker502/catpet/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowTitle 窗口标题
const WindowTitle = "catpet"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Pet 宠物配置，nil 时使用内嵌默认配置
	Pet *config.PetConfig
	// Settings 用户设置，nil 时使用仅内存的默认设置
	Settings *game.SettingsManager
}

// App 窗口模式的应用包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	world        *game.PetWorld
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	world, err := game.NewPetWorld(cfg.Pet)
	if err != nil {
		return nil, fmt.Errorf("桌宠世界创建失败: %w", err)
	}

	settings := cfg.Settings
	if settings == nil {
		settings, _ = game.NewSettingsManager(nil)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewPetScene(world, settings))

	log.Printf("[App] 初始化完成")

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		world:        world,
		verbose:      cfg.Verbose,
	}, nil
}

// Run 设置窗口属性并进入 ebiten 主循环，直到窗口关闭
func (a *App) Run() error {
	s := a.settings.GetSettings()
	ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowFloating(s.Floating)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(a)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（默认每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭：保存设置后退出
	if ebiten.IsWindowBeingClosed() {
		a.saveWindowSize()
		if !a.sceneManager.SaveOnExit() {
			log.Printf("[App] Warning: 退出时保存失败")
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			s := a.settings.GetSettings()
			ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", s.WindowWidth, s.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// saveWindowSize 记录退出时的窗口大小（全屏时不记录）
func (a *App) saveWindowSize() {
	if ebiten.IsFullscreen() {
		return
	}
	w, h := ebiten.WindowSize()
	a.settings.SetWindowSize(w, h)
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放时的 letterbox 颜色和滤波
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸（即世界尺寸）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.LogicalSize()
}

// LogicalSize 返回逻辑屏幕尺寸
func (a *App) LogicalSize() (int, int) {
	return int(a.world.Config.World.Width), int(a.world.Config.World.Height)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
