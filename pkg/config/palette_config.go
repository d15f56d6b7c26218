package config

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/decker502/neontrail/internal/particle"
	"github.com/decker502/neontrail/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// palettesDir 内置调色板在嵌入文件系统中的目录
const palettesDir = "data/palettes"

// HueWeight 调色板中的一种颜色及其被选中的概率
type HueWeight struct {
	Name   string  `yaml:"name"`
	Hue    float64 `yaml:"hue"`    // 色相（度），[0, 360)
	Weight float64 `yaml:"weight"` // 选中概率，所有 Weight 之和不能超过 1
}

// Palette 加权色相调色板
//
// 配置文件位置: data/palettes/<name>.yaml（内置）或任意路径
type Palette struct {
	Name string      `yaml:"name"`
	Hues []HueWeight `yaml:"hues"`
}

// DefaultPalette 返回内置的霓虹调色板
func DefaultPalette() Palette {
	return Palette{
		Name: DefaultPaletteName,
		Hues: []HueWeight{
			{Name: "blue", Hue: 210, Weight: 0.15},
			{Name: "pink", Hue: 300, Weight: 0.25},
			{Name: "green", Hue: 120, Weight: 0.10},
			{Name: "yellow", Hue: 60, Weight: 0.05},
			{Name: "purple", Hue: 270, Weight: 0.15},
			{Name: "turquoise", Hue: 180, Weight: 0.10},
			{Name: "fuchsia", Hue: 300, Weight: 0.10},
			{Name: "orange", Hue: 30, Weight: 0.10},
		},
	}
}

// Entries 转换为加权采样器的输入
func (p Palette) Entries() []particle.Weighted[float64] {
	entries := make([]particle.Weighted[float64], len(p.Hues))
	for i, h := range p.Hues {
		entries[i] = particle.Weighted[float64]{Value: h.Hue, Prob: h.Weight}
	}
	return entries
}

// TotalWeight 返回所有权重之和
func (p Palette) TotalWeight() float64 {
	sum := 0.0
	for _, h := range p.Hues {
		sum += h.Weight
	}
	return sum
}

// Validate 验证调色板
//
// 检查：
//   - 至少一种颜色
//   - 色相在 [0, 360) 内，权重非负
//   - 权重之和不超过 1
func (p Palette) Validate() error {
	if len(p.Hues) == 0 {
		return fmt.Errorf("palette %q: %w", p.Name, particle.ErrEmptyDistribution)
	}
	for _, h := range p.Hues {
		if h.Hue < 0 || h.Hue >= 360 {
			return fmt.Errorf("palette %q: hue %q out of range [0, 360): %.1f", p.Name, h.Name, h.Hue)
		}
		if h.Weight < 0 {
			return fmt.Errorf("palette %q: weight of %q must be >= 0, got %.3f", p.Name, h.Name, h.Weight)
		}
	}
	// 与采样器保持一致：允许浮点误差
	if sum := p.TotalWeight(); sum > 1+1e-9 {
		return fmt.Errorf("palette %q: %w (got %.4f)", p.Name, particle.ErrProbabilityOverflow, sum)
	}
	return nil
}

// ParsePalette 解析 YAML 格式的调色板并验证
func ParsePalette(data []byte) (*Palette, error) {
	var palette Palette
	if err := yaml.Unmarshal(data, &palette); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	if err := palette.Validate(); err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}
	return &palette, nil
}

// LoadPalette 从文件加载调色板
func LoadPalette(filename string) (*Palette, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}
	return ParsePalette(data)
}

// ResolvePalette 按名称或路径查找调色板
//
// 查找顺序：
//  1. 空名称或 "neon"：内置默认调色板
//  2. 嵌入资源 data/palettes/<name>.yaml
//  3. 文件路径
func ResolvePalette(nameOrPath string) (*Palette, error) {
	if nameOrPath == "" || nameOrPath == DefaultPaletteName {
		p := DefaultPalette()
		return &p, nil
	}

	embeddedPath := path.Join(palettesDir, nameOrPath+".yaml")
	if embedded.IsInitialized() && embedded.Exists(embeddedPath) {
		data, err := embedded.ReadFile(embeddedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded palette %q: %w", nameOrPath, err)
		}
		return ParsePalette(data)
	}

	if _, err := os.Stat(nameOrPath); err == nil {
		return LoadPalette(nameOrPath)
	}

	return nil, fmt.Errorf("unknown palette %q (available: %s)", nameOrPath, strings.Join(AvailablePalettes(), ", "))
}

// AvailablePalettes 返回可用的内置调色板名称（已排序）
func AvailablePalettes() []string {
	names := []string{DefaultPaletteName}
	if embedded.IsInitialized() {
		files, err := embedded.Glob(palettesDir + "/*.yaml")
		if err == nil {
			for _, f := range files {
				name := strings.TrimSuffix(path.Base(f), ".yaml")
				if name != DefaultPaletteName {
					names = append(names, name)
				}
			}
		}
	}
	sort.Strings(names)
	return names
}
