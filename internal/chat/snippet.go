package chat

import (
	"fmt"
	"slices"

	"github.com/mailru/easyjson/jwriter"
)

// Snippet 是消息中一段连续的文本，带有自己的样式列表和事件列表。
type Snippet struct {
	text   string
	styles []ColorToken
	events []ActionEvent
}

// NewSnippet 创建带有初始样式的片段。
func NewSnippet(text string, styles ...ColorToken) *Snippet {
	s := &Snippet{text: text}
	s.AddStyles(styles...)
	return s
}

// Text 返回片段文本。
func (s *Snippet) Text() string { return s.text }

// SetText 替换片段文本。
func (s *Snippet) SetText(text string) { s.text = text }

// Styles 返回样式列表的副本。
func (s *Snippet) Styles() []ColorToken { return slices.Clone(s.styles) }

// Events 返回事件列表的副本。
func (s *Snippet) Events() []ActionEvent { return slices.Clone(s.events) }

// AddStyles 按顺序追加样式，不去重。
func (s *Snippet) AddStyles(tokens ...ColorToken) {
	s.styles = append(s.styles, tokens...)
}

// Event 查找类别和名称都匹配的事件。
func (s *Snippet) Event(category Category, name string) (ActionEvent, bool) {
	if i := s.eventIndex(category, name); i >= 0 {
		return s.events[i], true
	}
	return ActionEvent{}, false
}

// AddEvent 添加一个事件。如果已存在相同类别和名称的事件，
// 旧事件会被移除，合并后的事件（旧值与新值以换行连接）追加到末尾。
func (s *Snippet) AddEvent(category Category, name, value string) {
	event := NewActionEvent(category).WithName(name).WithData(value)
	if i := s.eventIndex(category, name); i >= 0 {
		event.Value = s.events[i].Value + "\n" + value
		s.events = slices.Delete(s.events, i, i+1)
	}
	s.events = append(s.events, event)
}

// AddEvents 依次添加多个事件，合并规则与 AddEvent 相同。
func (s *Snippet) AddEvents(events ...ActionEvent) {
	for _, e := range events {
		s.AddEvent(e.Category, e.Name, e.Value)
	}
}

func (s *Snippet) eventIndex(category Category, name string) int {
	return slices.IndexFunc(s.events, func(e ActionEvent) bool {
		return e.Category == category && e.Name == name
	})
}

// Clone 返回深拷贝，样式和事件列表不会共享底层数组。
func (s *Snippet) Clone() *Snippet {
	return &Snippet{
		text:   s.text,
		styles: slices.Clone(s.styles),
		events: slices.Clone(s.events),
	}
}

// JSON 将片段序列化为聊天组件对象。
func (s *Snippet) JSON() (string, error) {
	w := newWriter()
	if err := s.writeJSON(w); err != nil {
		return "", err
	}
	data, err := w.BuildBytes()
	if err != nil {
		return "", fmt.Errorf("序列化片段失败: %w", err)
	}
	return string(data), nil
}

// writeJSON 按顺序写出 text、样式标记、颜色以及事件。
// 出现多个颜色时每一个都会写出，客户端以最后一个为准。
func (s *Snippet) writeJSON(w *jwriter.Writer) error {
	w.RawString(`{"text":`)
	w.String(s.text)
	for _, t := range s.styles {
		w.RawByte(',')
		if t.IsFormat() {
			w.String(t.Name())
			w.RawString(":true")
			continue
		}
		w.RawString(`"color":`)
		w.String(t.Name())
	}
	for _, e := range s.events {
		w.RawByte(',')
		if err := e.writeMember(w); err != nil {
			return err
		}
	}
	w.RawByte('}')
	return nil
}
