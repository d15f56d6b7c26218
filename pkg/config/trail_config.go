package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/decker502/neontrail/internal/particle"
	"gopkg.in/yaml.v3"
)

// 默认拖尾参数
const (
	DefaultDensity           = 10
	DefaultStaticDensity     = 5
	DefaultFastSpeed         = 2.0
	DefaultSlowSpeed         = 0.5
	DefaultTimeout           = 1000 * time.Millisecond
	DefaultMaxSize           = 7.0
	DefaultWaneSpeed         = 0.25
	DefaultBurstDensity      = 100
	DefaultBurstSpeed        = 5.0
	DefaultBurstParticleSize = 7.0
	DefaultEnableClickBurst  = true
	DefaultGlow              = 10.0
	DefaultShape             = particle.ShapeRect
	DefaultPaletteName       = "neon"
)

// TrailOptions 是完全解析后的拖尾配置
//
// 由 ResolveTrailOptions 在构造时生成：调用方提供的值覆盖默认值。
// 速度单位为像素/帧，尺寸单位为像素。
type TrailOptions struct {
	// Density 每次指针移动生成的粒子数
	Density int
	// StaticDensity 指针静止时每帧生成的粒子数
	StaticDensity int
	// FastSpeed 指针活跃时粒子随机速度范围 [-FastSpeed, FastSpeed]
	FastSpeed float64
	// SlowSpeed 指针空闲时粒子随机速度范围 [-SlowSpeed, SlowSpeed]
	SlowSpeed float64
	// Timeout 最后一次移动后多久视为空闲
	Timeout time.Duration
	// MaxSize 普通粒子的最大尺寸（实际尺寸 = 偏小随机数 * MaxSize + 1）
	MaxSize float64
	// WaneSpeed 每帧尺寸衰减量
	WaneSpeed float64
	// BurstDensity 点击爆发的粒子数
	BurstDensity int
	// BurstSpeed 爆发粒子随机速度范围
	BurstSpeed float64
	// BurstParticleSize 爆发粒子最大尺寸
	BurstParticleSize float64
	// EnableClickBurst 是否启用点击爆发
	EnableClickBurst bool
	// Glow 最大光晕半径
	Glow float64
	// Shape 粒子形状
	Shape particle.Shape
	// Palette 调色板名称或 YAML 路径
	Palette string
}

// TrailOverrides 是调用方提供的部分配置，nil 字段表示使用默认值
//
// YAML 键名与原始选项名一致（camelCase），timeout 以毫秒为单位。
type TrailOverrides struct {
	Density           *int     `yaml:"density,omitempty"`
	StaticDensity     *int     `yaml:"staticDensity,omitempty"`
	FastSpeed         *float64 `yaml:"fastSpeed,omitempty"`
	SlowSpeed         *float64 `yaml:"slowSpeed,omitempty"`
	TimeoutMs         *int     `yaml:"timeout,omitempty"`
	MaxSize           *float64 `yaml:"maxSize,omitempty"`
	WaneSpeed         *float64 `yaml:"waneSpeed,omitempty"`
	BurstDensity      *int     `yaml:"burstDensity,omitempty"`
	BurstSpeed        *float64 `yaml:"burstSpeed,omitempty"`
	BurstParticleSize *float64 `yaml:"burstParticleSize,omitempty"`
	EnableClickBurst  *bool    `yaml:"enableClickBurst,omitempty"`
	Glow              *float64 `yaml:"glow,omitempty"`
	Shape             *string  `yaml:"shape,omitempty"`
	Palette           *string  `yaml:"palette,omitempty"`
}

// DefaultTrailOptions 返回文档中的默认配置
func DefaultTrailOptions() TrailOptions {
	return TrailOptions{
		Density:           DefaultDensity,
		StaticDensity:     DefaultStaticDensity,
		FastSpeed:         DefaultFastSpeed,
		SlowSpeed:         DefaultSlowSpeed,
		Timeout:           DefaultTimeout,
		MaxSize:           DefaultMaxSize,
		WaneSpeed:         DefaultWaneSpeed,
		BurstDensity:      DefaultBurstDensity,
		BurstSpeed:        DefaultBurstSpeed,
		BurstParticleSize: DefaultBurstParticleSize,
		EnableClickBurst:  DefaultEnableClickBurst,
		Glow:              DefaultGlow,
		Shape:             DefaultShape,
		Palette:           DefaultPaletteName,
	}
}

// ResolveTrailOptions 把 overrides 合并到默认配置上
//
// 形状字符串无法识别时返回错误，其余字段不做校验（见 Validate）。
func ResolveTrailOptions(o TrailOverrides) (TrailOptions, error) {
	opts := DefaultTrailOptions()

	if o.Density != nil {
		opts.Density = *o.Density
	}
	if o.StaticDensity != nil {
		opts.StaticDensity = *o.StaticDensity
	}
	if o.FastSpeed != nil {
		opts.FastSpeed = *o.FastSpeed
	}
	if o.SlowSpeed != nil {
		opts.SlowSpeed = *o.SlowSpeed
	}
	if o.TimeoutMs != nil {
		opts.Timeout = time.Duration(*o.TimeoutMs) * time.Millisecond
	}
	if o.MaxSize != nil {
		opts.MaxSize = *o.MaxSize
	}
	if o.WaneSpeed != nil {
		opts.WaneSpeed = *o.WaneSpeed
	}
	if o.BurstDensity != nil {
		opts.BurstDensity = *o.BurstDensity
	}
	if o.BurstSpeed != nil {
		opts.BurstSpeed = *o.BurstSpeed
	}
	if o.BurstParticleSize != nil {
		opts.BurstParticleSize = *o.BurstParticleSize
	}
	if o.EnableClickBurst != nil {
		opts.EnableClickBurst = *o.EnableClickBurst
	}
	if o.Glow != nil {
		opts.Glow = *o.Glow
	}
	if o.Shape != nil {
		shape, err := particle.ParseShape(*o.Shape)
		if err != nil {
			return TrailOptions{}, err
		}
		opts.Shape = shape
	}
	if o.Palette != nil && *o.Palette != "" {
		opts.Palette = *o.Palette
	}

	return opts, nil
}

// Merge 返回一个新的 overrides：other 中非 nil 的字段覆盖 o
// 用于命令行参数覆盖配置文件
func (o TrailOverrides) Merge(other TrailOverrides) TrailOverrides {
	merged := o
	if other.Density != nil {
		merged.Density = other.Density
	}
	if other.StaticDensity != nil {
		merged.StaticDensity = other.StaticDensity
	}
	if other.FastSpeed != nil {
		merged.FastSpeed = other.FastSpeed
	}
	if other.SlowSpeed != nil {
		merged.SlowSpeed = other.SlowSpeed
	}
	if other.TimeoutMs != nil {
		merged.TimeoutMs = other.TimeoutMs
	}
	if other.MaxSize != nil {
		merged.MaxSize = other.MaxSize
	}
	if other.WaneSpeed != nil {
		merged.WaneSpeed = other.WaneSpeed
	}
	if other.BurstDensity != nil {
		merged.BurstDensity = other.BurstDensity
	}
	if other.BurstSpeed != nil {
		merged.BurstSpeed = other.BurstSpeed
	}
	if other.BurstParticleSize != nil {
		merged.BurstParticleSize = other.BurstParticleSize
	}
	if other.EnableClickBurst != nil {
		merged.EnableClickBurst = other.EnableClickBurst
	}
	if other.Glow != nil {
		merged.Glow = other.Glow
	}
	if other.Shape != nil {
		merged.Shape = other.Shape
	}
	if other.Palette != nil {
		merged.Palette = other.Palette
	}
	return merged
}

// Validate 验证配置有效性
//
// 检查：
//   - 粒子数量不能为负
//   - 速度、尺寸、光晕不能为负
//   - 衰减速度和空闲超时必须为正（否则粒子永不消失 / 立即空闲）
func (o TrailOptions) Validate() error {
	var errs []error

	if o.Density < 0 {
		errs = append(errs, fmt.Errorf("density must be >= 0, got %d", o.Density))
	}
	if o.StaticDensity < 0 {
		errs = append(errs, fmt.Errorf("staticDensity must be >= 0, got %d", o.StaticDensity))
	}
	if o.BurstDensity < 0 {
		errs = append(errs, fmt.Errorf("burstDensity must be >= 0, got %d", o.BurstDensity))
	}
	if o.FastSpeed < 0 || o.SlowSpeed < 0 || o.BurstSpeed < 0 {
		errs = append(errs, fmt.Errorf("speeds must be >= 0 (fast=%.2f slow=%.2f burst=%.2f)",
			o.FastSpeed, o.SlowSpeed, o.BurstSpeed))
	}
	if o.MaxSize < 0 || o.BurstParticleSize < 0 {
		errs = append(errs, fmt.Errorf("sizes must be >= 0 (maxSize=%.2f burstParticleSize=%.2f)",
			o.MaxSize, o.BurstParticleSize))
	}
	if o.Glow < 0 {
		errs = append(errs, fmt.Errorf("glow must be >= 0, got %.2f", o.Glow))
	}
	if o.WaneSpeed <= 0 {
		errs = append(errs, fmt.Errorf("waneSpeed must be > 0, got %.2f", o.WaneSpeed))
	}
	if o.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be > 0, got %v", o.Timeout))
	}
	if _, err := particle.ParseShape(string(o.Shape)); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ParseTrailConfig 解析 YAML 格式的拖尾配置
func ParseTrailConfig(data []byte) (*TrailOverrides, error) {
	var overrides TrailOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse trail config: %w", err)
	}
	return &overrides, nil
}

// LoadTrailConfig 加载拖尾配置文件
//
// 参数:
//   - path: 配置文件路径（如 "trail.yaml"）
//
// 返回:
//   - *TrailOverrides: 文件中出现的字段，未出现的字段为 nil
//   - error: 读取或解析失败时返回错误
func LoadTrailConfig(path string) (*TrailOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trail config: %w", err)
	}
	return ParseTrailConfig(data)
}

// Marshal 把完全解析后的配置写回 YAML（用于 --dump-config）
func (o TrailOptions) Marshal() ([]byte, error) {
	timeoutMs := int(o.Timeout / time.Millisecond)
	shape := string(o.Shape)
	overrides := TrailOverrides{
		Density:           &o.Density,
		StaticDensity:     &o.StaticDensity,
		FastSpeed:         &o.FastSpeed,
		SlowSpeed:         &o.SlowSpeed,
		TimeoutMs:         &timeoutMs,
		MaxSize:           &o.MaxSize,
		WaneSpeed:         &o.WaneSpeed,
		BurstDensity:      &o.BurstDensity,
		BurstSpeed:        &o.BurstSpeed,
		BurstParticleSize: &o.BurstParticleSize,
		EnableClickBurst:  &o.EnableClickBurst,
		Glow:              &o.Glow,
		Shape:             &shape,
		Palette:           &o.Palette,
	}
	return yaml.Marshal(overrides)
}

// BuildTrailOptions 合并配置文件和命令行参数，返回校验过的完整配置
//
// 优先级：命令行 > 配置文件 > 默认值。configPath 为空时跳过配置文件。
func BuildTrailOptions(configPath string, cli TrailOverrides) (TrailOptions, error) {
	overrides := TrailOverrides{}
	if configPath != "" {
		fromFile, err := LoadTrailConfig(configPath)
		if err != nil {
			return TrailOptions{}, err
		}
		log.Printf("[Config] Loaded trail config: %s", configPath)
		overrides = *fromFile
	}

	opts, err := ResolveTrailOptions(overrides.Merge(cli))
	if err != nil {
		return TrailOptions{}, err
	}
	if err := opts.Validate(); err != nil {
		return TrailOptions{}, fmt.Errorf("invalid trail config: %w", err)
	}
	return opts, nil
}
