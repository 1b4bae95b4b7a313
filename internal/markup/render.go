package markup

import (
	"strings"

	"github.com/purpose168/powermessage/internal/chat"
)

var tagForAction = map[string]Kind{
	chat.ActionShowText:       KindTooltip,
	chat.ActionOpenFile:       KindFile,
	chat.ActionOpenURL:        KindURL,
	chat.ActionSuggestCommand: KindSuggest,
	chat.ActionRunCommand:     KindCommand,
}

// Render 把消息还原为标记文本，颜色以 alt 前缀输出。
//
// 转换是有损的：成就、统计和物品提示没有对应的标签会被丢弃；payload 中的 ]
// 无法表示；没有事件的片段若紧挨在带事件的片段之前，重新解析时会并入同一分组。
func Render(m *chat.Message, alt rune) string {
	var sb strings.Builder
	var prev []chat.ColorToken
	for _, s := range m.Snippets() {
		styles := s.Styles()
		sb.WriteString(chat.StylePrefix(prev, styles, alt))
		sb.WriteString(s.Text())
		prev = styles
		tagged := false
		for _, e := range s.Events() {
			kind, ok := tagForAction[e.Name]
			if !ok || strings.Contains(e.Value, "]") {
				continue
			}
			sb.WriteByte('[')
			sb.WriteString(string(kind))
			sb.WriteByte(':')
			sb.WriteString(e.Value)
			sb.WriteByte(']')
			tagged = true
		}
		// 标签结束一次追加，后续文本从空样式开始。
		if tagged {
			prev = nil
		}
	}
	return sb.String()
}
