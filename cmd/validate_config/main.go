// validate_config 校验拖尾配置和调色板 YAML 文件
//
// 用法：
//
//	go run ./cmd/validate_config [--embedded] file.yaml...
//
// 含有 hues 键的文件按调色板校验，其余按拖尾配置校验。
// --embedded 额外校验所有内置调色板和示例配置。
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/neontrail/data"
	"github.com/decker502/neontrail/pkg/config"
	"github.com/decker502/neontrail/pkg/embedded"
)

var embeddedFlag = flag.Bool("embedded", false, "Also validate the bundled palettes and example config")

func main() {
	flag.Parse()

	if !*embeddedFlag && flag.NArg() == 0 {
		fmt.Println("usage: validate_config [--embedded] file.yaml...")
		os.Exit(2)
	}

	failed := 0

	if *embeddedFlag {
		embedded.Init(data.FS)
		for _, name := range config.AvailablePalettes() {
			p, err := config.ResolvePalette(name)
			if err != nil {
				fmt.Printf("❌ 内置调色板 %s: %v\n", name, err)
				failed++
				continue
			}
			fmt.Printf("✅ 内置调色板 %s: %d 种颜色，总权重 %.2f\n", name, len(p.Hues), p.TotalWeight())
		}
		content, err := embedded.ReadFile("data/trail.example.yaml")
		if err == nil {
			_, err = validateTrailConfig(content)
		}
		if err != nil {
			fmt.Printf("❌ 示例配置: %v\n", err)
			failed++
		} else {
			fmt.Printf("✅ 示例配置\n")
		}
	}

	for _, path := range flag.Args() {
		summary, err := validateFile(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s: %s\n", path, summary)
	}

	if failed > 0 {
		fmt.Printf("❌ 有 %d 个文件校验失败\n", failed)
		os.Exit(1)
	}
}

// validateFile 读取并校验一个文件，返回一行摘要
func validateFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("读取文件失败: %w", err)
	}

	var probe map[string]interface{}
	if err := yaml.Unmarshal(content, &probe); err != nil {
		return "", fmt.Errorf("YAML 解析失败: %w", err)
	}

	if _, ok := probe["hues"]; ok {
		p, err := config.ParsePalette(content)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("调色板 %q，%d 种颜色，总权重 %.2f", p.Name, len(p.Hues), p.TotalWeight()), nil
	}

	opts, err := validateTrailConfig(content)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("拖尾配置，density=%d shape=%s palette=%s", opts.Density, opts.Shape, opts.Palette), nil
}

func validateTrailConfig(content []byte) (config.TrailOptions, error) {
	overrides, err := config.ParseTrailConfig(content)
	if err != nil {
		return config.TrailOptions{}, err
	}
	opts, err := config.ResolveTrailOptions(*overrides)
	if err != nil {
		return config.TrailOptions{}, err
	}
	if err := opts.Validate(); err != nil {
		return config.TrailOptions{}, err
	}
	return opts, nil
}
