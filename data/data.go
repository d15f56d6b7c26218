// Package data 嵌入内置调色板和示例配置
//
// //go:embed 只能嵌入当前包目录及其子目录的文件，所以嵌入声明放在 data/ 目录里，
// 桌面端、终端和移动端入口都通过 embedded.Init(data.FS) 使用它。
package data

import "embed"

// FS 以 data/ 目录为根，例如 "palettes/ember.yaml"
//
//go:embed palettes trail.example.yaml
var FS embed.FS
