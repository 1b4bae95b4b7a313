//go:build windows

package fsext

import "os"

// Owner 在 Windows 上只检查 path 是否存在，返回 -1 表示不限制所有者。
func Owner(path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, err
	}
	return -1, nil
}
