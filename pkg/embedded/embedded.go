// Package embedded 提供游戏数据文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以按路径前缀访问资源：
//   - "data/"   关卡与调参 YAML（随二进制嵌入）
//   - "assets/" 图片与音频（可选，通常来自磁盘目录）
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 初始化文件系统
// 必须在 main() 开始时、任何资源加载之前调用
// assets 可为 nil，此时所有 assets/ 路径都视为不存在
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// resolve 根据路径前缀选择文件系统，并返回标准化后的路径
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// 标准化路径分隔符为正斜杠（fs.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	switch {
	case strings.HasPrefix(path, "assets/"):
		if assetsFS == nil {
			return nil, "", fmt.Errorf("asset %s: %w", path, fs.ErrNotExist)
		}
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		if dataFS == nil {
			return nil, "", fmt.Errorf("data %s: %w", path, fs.ErrNotExist)
		}
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 根据路径前缀选择正确的文件系统并打开文件
func Open(path string) (fs.File, error) {
	fsys, p, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(p)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, p, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, p)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配文件
// 路径模式必须以 "assets/" 或 "data/" 开头
func Glob(pattern string) ([]string, error) {
	fsys, p, err := resolve(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, p)
}
