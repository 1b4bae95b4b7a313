//go:build !windows

package fsext

import (
	"os"
	"syscall"
)

// Owner 返回 path 所属用户的 uid，向上查找配置时不会越过该用户的目录。
// 文件系统不提供 uid 时退回到当前进程的用户。
func Owner(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return os.Getuid(), nil
	}
	return int(stat.Uid), nil
}
