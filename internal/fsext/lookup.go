package fsext

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/purpose168/powermessage/internal/home"
)

// Lookup 从 dir 开始逐级向上查找 names，返回找到的全部路径，离 dir 越近越靠前。
// 与 dir 所有者不同的文件被忽略。
func Lookup(dir string, names ...string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	owner, err := Owner(dir)
	if err != nil {
		return nil, fmt.Errorf("获取 %s 的所有者: %w", dir, err)
	}
	parents, err := ancestors(dir)
	if err != nil {
		return nil, err
	}

	var found []string
	for cur := range parents {
		for _, name := range names {
			path := filepath.Join(cur, name)
			switch err := ownedBy(path, owner); {
			case err == nil:
				found = append(found, path)
			case errors.Is(err, os.ErrNotExist), errors.Is(err, os.ErrPermission):
			default:
				return nil, err
			}
		}
	}
	return found, nil
}

// LookupClosest 返回从 dir 向上最近的 name。主目录里的同名条目属于全局数据，
// 不作为项目目录返回。
func LookupClosest(dir, name string) (string, bool) {
	owner, err := Owner(dir)
	if err != nil {
		return "", false
	}
	parents, err := ancestors(dir)
	if err != nil {
		return "", false
	}
	for cur := range parents {
		path := filepath.Join(cur, name)
		err := ownedBy(path, owner)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil || cur == home.Dir() {
			return "", false
		}
		return path, true
	}
	return "", false
}

// ancestors 依次产出 dir 的绝对路径及其每一级父目录，最后是根目录。
func ancestors(dir string) (iter.Seq[string], error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("解析 %s 的绝对路径: %w", dir, err)
	}
	return func(yield func(string) bool) {
		for cur := abs; ; {
			if !yield(cur) {
				return
			}
			parent := filepath.Dir(cur)
			if parent == cur {
				return
			}
			cur = parent
		}
	}, nil
}

// ownedBy 检查 path 存在且属于 owner，owner 为 -1 时只检查存在。
func ownedBy(path string, owner int) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	if owner == -1 {
		return nil
	}
	uid, err := Owner(path)
	if err != nil {
		return fmt.Errorf("获取 %s 的所有者: %w", path, err)
	}
	if uid != owner {
		return os.ErrPermission
	}
	return nil
}
