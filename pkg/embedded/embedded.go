// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量声明在 data 包（data/data.go）。
// 本包提供包装函数，让其他包用 "data/..." 路径访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入的文件系统
// data 以 data/ 目录为根；必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// dataPrefix 对外路径的前缀，对应嵌入文件系统的根
const dataPrefix = "data/"

// normalize 标准化路径并去掉 "data/" 前缀
// 路径必须以 "data/" 开头
func normalize(path string) (string, error) {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, dataPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return strings.TrimPrefix(path, dataPrefix), nil
}

// ReadFile 读取嵌入文件内容
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	if !initialized {
		return false
	}
	path, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}

// Glob 在嵌入文件系统中匹配文件
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	pattern, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	matches, err := fs.Glob(dataFS, pattern)
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = dataPrefix + m
	}
	return matches, nil
}
