package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default_pet.yaml
var defaultPetConfigYAML []byte

// IdleRewindMode 空闲时帧动画退回静止帧的节奏
type IdleRewindMode string

const (
	// IdleRewindTick 每次系统调用退回一帧，不看计时器（退回速度随帧率变化）
	IdleRewindTick IdleRewindMode = "tick"
	// IdleRewindTimed 与呼噜相同，按 fps 节奏退回
	IdleRewindTimed IdleRewindMode = "timed"
)

// Vec2Config 二维向量配置
type Vec2Config struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// PetConfig 桌宠调参配置
//
// 配置文件位置: 内嵌 default_pet.yaml，可用 --config 指定外部文件覆盖
type PetConfig struct {
	Pet       PetSection       `yaml:"pet" toml:"pet"`
	Animation AnimationSection `yaml:"animation" toml:"animation"`
	Petting   PettingSection   `yaml:"petting" toml:"petting"`
	Supplies  SuppliesSection  `yaml:"supplies" toml:"supplies"`
	World     WorldSection     `yaml:"world" toml:"world"`
}

// PetSection 宠物实体配置
type PetSection struct {
	// Position 出生位置（世界坐标）
	Position Vec2Config `yaml:"position" toml:"position"`

	// HalfExtent 靠近检测盒的半宽/半高
	HalfExtent Vec2Config `yaml:"halfExtent" toml:"halfExtent"`

	// Scale 精灵绘制缩放
	Scale float64 `yaml:"scale" toml:"scale"`

	// HitWidth, HitHeight 指针命中区域（像素）
	HitWidth  float64 `yaml:"hitWidth" toml:"hitWidth"`
	HitHeight float64 `yaml:"hitHeight" toml:"hitHeight"`
}

// AnimationSection 帧动画配置
type AnimationSection struct {
	FirstFrame int            `yaml:"firstFrame" toml:"firstFrame"`
	PurrFrames [2]int         `yaml:"purrFrames" toml:"purrFrames"`
	FPS        float64        `yaml:"fps" toml:"fps"`
	IdleRewind IdleRewindMode `yaml:"idleRewind" toml:"idleRewind"`
}

// PettingSection 抚摸配置
type PettingSection struct {
	// PurrOnsetSeconds 指针持续移动多久后开始呼噜
	PurrOnsetSeconds float64 `yaml:"purrOnsetSeconds" toml:"purrOnsetSeconds"`
}

// SuppliesSection 补给品配置
type SuppliesSection struct {
	// ReturnSpeed 归位速度（像素/秒）
	ReturnSpeed float64 `yaml:"returnSpeed" toml:"returnSpeed"`

	// SnapEpsilon 距槽位小于该值时直接吸附
	SnapEpsilon float64 `yaml:"snapEpsilon" toml:"snapEpsilon"`

	// ClampOvershoot 为 true 时单帧步长超过剩余距离直接落到槽位，
	// 为 false 时保持原有行为，可能越过槽位
	ClampOvershoot bool `yaml:"clampOvershoot" toml:"clampOvershoot"`

	// SlotWidth, SlotHeight 槽位（以及补给品绘制）尺寸
	SlotWidth  float64 `yaml:"slotWidth" toml:"slotWidth"`
	SlotHeight float64 `yaml:"slotHeight" toml:"slotHeight"`

	// Scale 靠近检测用缩放，检测盒半宽 = Scale/2
	Scale Vec2Config `yaml:"scale" toml:"scale"`
}

// WorldSection 世界尺寸配置
type WorldSection struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// DefaultPetConfig 返回内嵌的默认配置
func DefaultPetConfig() *PetConfig {
	var cfg PetConfig
	if err := yaml.Unmarshal(defaultPetConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("failed to parse embedded pet config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid embedded pet config: %v", err))
	}
	return &cfg
}

// LoadPetConfig 加载桌宠配置
//
// 从指定路径加载配置；扩展名为 .toml 时按 TOML 解析，其余按 YAML 解析。
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *PetConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadPetConfig(path string) (*PetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pet config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParsePetConfigTOML(data)
	}
	return ParsePetConfig(data)
}

// ParsePetConfig 在默认配置之上解析 YAML 数据并验证
func ParsePetConfig(data []byte) (*PetConfig, error) {
	cfg := DefaultPetConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pet config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pet config: %w", err)
	}

	return cfg, nil
}

// ParsePetConfigTOML 在默认配置之上解析 TOML 数据并验证
func ParsePetConfigTOML(data []byte) (*PetConfig, error) {
	cfg := DefaultPetConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pet config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pet config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *PetConfig) Validate() error {
	a := c.Animation
	if a.FPS <= 0 {
		return fmt.Errorf("animation fps must be > 0, got %.2f", a.FPS)
	}
	if a.FirstFrame < 0 {
		return fmt.Errorf("animation firstFrame must be >= 0, got %d", a.FirstFrame)
	}
	for _, f := range a.PurrFrames {
		if f < a.FirstFrame {
			return fmt.Errorf("purr frame %d is before firstFrame %d", f, a.FirstFrame)
		}
	}
	if a.PurrFrames[0] == a.PurrFrames[1] {
		return fmt.Errorf("purr frames must differ, got %v", a.PurrFrames)
	}
	switch a.IdleRewind {
	case IdleRewindTick, IdleRewindTimed:
	default:
		return fmt.Errorf("unknown idleRewind mode %q", a.IdleRewind)
	}

	if c.Petting.PurrOnsetSeconds <= 0 {
		return fmt.Errorf("petting purrOnsetSeconds must be > 0, got %.2f", c.Petting.PurrOnsetSeconds)
	}

	s := c.Supplies
	if s.ReturnSpeed < 0 {
		return fmt.Errorf("supplies returnSpeed must be >= 0, got %.2f", s.ReturnSpeed)
	}
	if s.SnapEpsilon <= 0 {
		return fmt.Errorf("supplies snapEpsilon must be > 0, got %.2f", s.SnapEpsilon)
	}
	if s.SlotWidth <= 0 || s.SlotHeight <= 0 {
		return fmt.Errorf("supplies slot size must be positive, got %.1fx%.1f", s.SlotWidth, s.SlotHeight)
	}

	if c.Pet.HalfExtent.X < 0 || c.Pet.HalfExtent.Y < 0 {
		return fmt.Errorf("pet halfExtent must be >= 0, got (%.1f, %.1f)", c.Pet.HalfExtent.X, c.Pet.HalfExtent.Y)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %.1fx%.1f", c.World.Width, c.World.Height)
	}

	return nil
}

// FrameCount 返回动画用到的最大帧索引 + 1
func (c *PetConfig) FrameCount() int {
	maxFrame := c.Animation.FirstFrame
	for _, f := range c.Animation.PurrFrames {
		if f > maxFrame {
			maxFrame = f
		}
	}
	return maxFrame + 1
}
