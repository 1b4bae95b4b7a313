package fsext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFile 是与 .gitignore 并列读取的项目忽略文件名。
const IgnoreFile = ".powermsgignore"

// commonIgnorePatterns 包含遍历时总是跳过的目录
var commonIgnorePatterns = sync.OnceValue(func() ignore.IgnoreParser {
	return ignore.CompileIgnoreLines(
		".git",
		".svn",
		".hg",
		"node_modules",
		"vendor",
		"build",
		"dist",
		"target",
		".powermsg",
	)
})

// Glob 在 root 下查找与 pattern 匹配的文件，pattern 使用 doublestar 语法，
// 相对于 root 并以正斜杠分隔。隐藏文件、常见的构建目录以及 .gitignore 和
// .powermsgignore 中列出的路径会被跳过。返回按路径排序的绝对路径。
func Glob(root, pattern string) ([]string, error) {
	pattern = filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("无效的匹配模式: %q", pattern)
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("无法将 %s 转换为绝对路径: %w", root, err)
	}

	w := newWalker(root)
	var (
		mu    sync.Mutex
		found []string
	)
	conf := fastwalk.Config{Follow: true}
	err = fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // 跳过无法访问的文件
		}
		if path == root {
			return nil
		}
		if w.shouldSkip(path, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel)); !ok {
			return nil
		}

		mu.Lock()
		found = append(found, path)
		mu.Unlock()
		return nil
	})
	if err != nil && !errors.Is(err, filepath.SkipAll) {
		return nil, fmt.Errorf("遍历 %s 失败: %w", root, err)
	}

	slices.Sort(found)
	return found, nil
}

// walker 缓存每个目录下的忽略规则。fastwalk 会并发调用回调，因此需要加锁。
type walker struct {
	root string

	mu      sync.Mutex
	ignores map[string]ignore.IgnoreParser
}

func newWalker(root string) *walker {
	return &walker{root: root, ignores: make(map[string]ignore.IgnoreParser)}
}

func (w *walker) shouldSkip(path string, isDir bool) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}

	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if commonIgnorePatterns().MatchesPath(rel) {
		return true
	}

	// 自 root 向下检查每一级目录的忽略文件，规则相对于其所在目录匹配。
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		sub, err := filepath.Rel(dir, path)
		if err == nil {
			sub = filepath.ToSlash(sub)
			p := w.parser(dir)
			if p.MatchesPath(sub) || (isDir && p.MatchesPath(sub+"/")) {
				return true
			}
		}
		if dir == w.root || dir == filepath.Dir(dir) {
			return false
		}
	}
}

func (w *walker) parser(dir string) ignore.IgnoreParser {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.ignores[dir]; ok {
		return p
	}
	var lines []string
	for _, name := range []string{".gitignore", IgnoreFile} {
		if content, err := os.ReadFile(filepath.Join(dir, name)); err == nil {
			lines = append(lines, strings.Split(string(content), "\n")...)
		}
	}
	p := ignore.CompileIgnoreLines(lines...)
	w.ignores[dir] = p
	return p
}
