// Package filepathext 补充 path/filepath 中缺少的路径工具。
package filepathext

import (
	"path/filepath"
	"runtime"
	"strings"
)

// SmartJoin 把相对路径 rel 解析到 base 下，rel 已是绝对路径时原样返回。
// 用于解析相对于工作目录的命令行参数和配置值。
func SmartJoin(base, rel string) string {
	if SmartIsAbs(rel) {
		return rel
	}
	return filepath.Join(base, rel)
}

// SmartIsAbs 与 filepath.IsAbs 相同，但在 Windows 上也把以 / 开头的路径视为绝对路径。
func SmartIsAbs(path string) bool {
	if runtime.GOOS == "windows" {
		return filepath.IsAbs(path) || strings.HasPrefix(filepath.ToSlash(path), "/")
	}
	return filepath.IsAbs(path)
}
