// Package stringext 提供字符串处理相关的扩展功能
package stringext

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize 将文本中每个单词的首字母大写，例如 "dark blue" 变为 "Dark Blue"。
func Capitalize(text string) string {
	return cases.Title(language.English, cases.Compact).String(text)
}

// TrimInput 规范化从命令行或标准输入读取的文本：
// Windows 换行符统一为 \n，并去掉末尾的换行符。其他空白保持不变，
// 因为首尾空格在消息中是有意义的。
func TrimInput(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.TrimRight(content, "\n")
}
