package ansiext

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize 去除 ANSI 转义序列，并丢弃除换行和制表符以外的控制字符，
// 用于清理从终端粘贴或管道传入的消息文本。
func Sanitize(content string) string {
	content = ansi.Strip(content)
	var sb strings.Builder
	sb.Grow(len(content))
	for _, r := range content {
		if (r < 0x20 && r != '\n' && r != '\t') || r == ansi.DEL {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
