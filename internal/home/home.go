// Package home 处理用户主目录相关的路径。
package home

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var dir = func() string {
	d, err := os.UserHomeDir()
	if err != nil {
		slog.Error("获取用户主目录失败", "error", err)
	}
	return d
}()

// Dir 返回用户主目录，无法确定时返回空字符串。
func Dir() string {
	return dir
}

// Short 把位于主目录下的 p 显示为 ~ 开头的形式。
func Short(p string) string {
	if dir == "" {
		return p
	}
	rel, err := filepath.Rel(dir, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	if rel == "." {
		return "~"
	}
	return filepath.Join("~", rel)
}

// Long 展开 p 开头的 ~。
func Long(p string) string {
	if dir == "" {
		return p
	}
	if p == "~" {
		return dir
	}
	if rest, ok := strings.CutPrefix(p, "~"+string(filepath.Separator)); ok {
		return filepath.Join(dir, rest)
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		return filepath.Join(dir, rest)
	}
	return p
}
