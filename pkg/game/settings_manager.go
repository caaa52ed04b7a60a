package game

import (
	"fmt"
	"log"

	"github.com/decker502/catpet/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PetSettings 用户设置
// 只保存宿主相关的偏好，宠物状态本身从不持久化
type PetSettings struct {
	// 窗口设置
	WindowWidth  int  `yaml:"windowWidth"`  // 窗口宽度（像素）
	WindowHeight int  `yaml:"windowHeight"` // 窗口高度（像素）
	Floating     bool `yaml:"floating"`     // 窗口是否置顶

	// 调试设置
	DebugOverlay bool `yaml:"debugOverlay"` // 启动时是否显示调试信息（F3 切换）

	// 终端设置
	TerminalFPS int `yaml:"terminalFps"` // 终端模式刷新率
}

// 取值范围
const (
	minWindowSize  = 100
	maxWindowSize  = 4096
	minTerminalFPS = 1
	maxTerminalFPS = 120
)

// DefaultSettings 返回默认设置
func DefaultSettings() *PetSettings {
	return &PetSettings{
		WindowWidth:  config.GameWindowWidth,
		WindowHeight: config.GameWindowHeight,
		Floating:     true,
		DebugOverlay: false,
		TerminalFPS:  30,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *PetSettings   // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// OpenSettingsManager 打开应用的 gdata 存储并创建设置管理器
//
// gdata 打开失败时降级为仅内存设置，只记录日志
func OpenSettingsManager(appName string) *SettingsManager {
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	sm, _ := NewSettingsManager(gdataManager)
	return sm
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方检查，加载失败不影响创建
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置。
// 文件中缺失的字段保留默认值，越界的值被修正到合法范围。
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	loaded.WindowWidth = clampInt(loaded.WindowWidth, minWindowSize, maxWindowSize)
	loaded.WindowHeight = clampInt(loaded.WindowHeight, minWindowSize, maxWindowSize)
	loaded.TerminalFPS = clampInt(loaded.TerminalFPS, minTerminalFPS, maxTerminalFPS)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *PetSettings {
	return sm.settings
}

// SetWindowSize 设置窗口大小
//
// 宽高会被限制在 [100, 4096] 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetWindowSize(width, height int) {
	sm.settings.WindowWidth = clampInt(width, minWindowSize, maxWindowSize)
	sm.settings.WindowHeight = clampInt(height, minWindowSize, maxWindowSize)
}

// SetFloating 设置窗口置顶
func (sm *SettingsManager) SetFloating(enabled bool) {
	sm.settings.Floating = enabled
}

// SetDebugOverlay 设置调试信息显示
func (sm *SettingsManager) SetDebugOverlay(enabled bool) {
	sm.settings.DebugOverlay = enabled
}

// SetTerminalFPS 设置终端刷新率，限制在 [1, 120]
func (sm *SettingsManager) SetTerminalFPS(fps int) {
	sm.settings.TerminalFPS = clampInt(fps, minTerminalFPS, maxTerminalFPS)
}

// clampInt 将整数限制在 [lo, hi] 范围内
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
