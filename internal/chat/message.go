// Package chat 提供由样式化、可点击、可悬停的文本片段组成的聊天消息模型，
// 以及其面向游戏客户端富文本渲染器的 JSON 线路格式。
package chat

import (
	"fmt"
	"strings"

	"github.com/mailru/easyjson/jwriter"
)

// Message 是片段的有序序列，拥有全部片段。
//
// Message 及其 Group 没有内部同步，不能在多个 goroutine 中并发修改。
type Message struct {
	snippets []*Snippet
	alt      rune

	cache      string
	cacheValid bool
}

// Option 配置新建的 Message。
type Option func(*Message)

// WithAlternateChar 设置 Then 在解析前转换为 Sentinel 的替代前缀字符。
func WithAlternateChar(alt rune) Option {
	return func(m *Message) {
		m.alt = alt
	}
}

// New 创建空消息。
func New(opts ...Option) *Message {
	m := &Message{alt: AlternateChar}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewText 创建以一个原样文本片段开头的消息，文本中的颜色代码不会被解析。
func NewText(text string, opts ...Option) *Message {
	m := New(opts...)
	m.snippets = append(m.snippets, NewSnippet(text))
	return m
}

// Then 追加一段文本并返回覆盖本次新增全部片段的分组。
//
// 文本中的颜色代码会把文本切分为多个片段：每遇到一个颜色代码就把它累加到
// 当前样式集合（Reset 则清空集合），两个代码之间的每段纯文本成为一个新片段，
// 并带有此刻样式集合的副本。空文本不追加任何内容，返回的分组为空。
func (m *Message) Then(text string) *Group {
	before := len(m.snippets)
	content := TranslateAlternate(m.alt, text)

	var active []ColorToken
	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		m.snippets = append(m.snippets, NewSnippet(run.String(), active...))
		run.Reset()
	}

	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		if runes[i] == Sentinel && i+1 < len(runes) {
			if t, ok := TokenByCode(runes[i+1]); ok {
				flush()
				if t == Reset {
					active = nil
				} else {
					active = append(active, t)
				}
				i++
				continue
			}
		}
		run.WriteRune(runes[i])
	}
	flush()

	if len(m.snippets) != before {
		m.invalidate()
	}
	return newGroup(m, before, len(m.snippets))
}

// AddSnippet 追加一个片段的副本并返回只包含它的分组。
func (m *Message) AddSnippet(s *Snippet) *Group {
	m.snippets = append(m.snippets, s.Clone())
	m.invalidate()
	return m.Last(1)
}

// Group 返回覆盖 [start, end) 的分组。
func (m *Message) Group(start, end int) *Group {
	return newGroup(m, start, end)
}

// Last 返回覆盖最后 count 个片段的分组。
func (m *Message) Last(count int) *Group {
	n := len(m.snippets)
	return newGroup(m, n-count, n)
}

// All 返回覆盖全部片段的分组。
func (m *Message) All() *Group {
	return newGroup(m, 0, len(m.snippets))
}

// Len 返回片段数量。
func (m *Message) Len() int { return len(m.snippets) }

// Snippet 返回第 i 个片段的副本。
func (m *Message) Snippet(i int) (*Snippet, error) {
	if i < 0 || i >= len(m.snippets) {
		return nil, fmt.Errorf("%w: 片段索引 %d 超出范围 [0, %d)", ErrInvalidArgument, i, len(m.snippets))
	}
	return m.snippets[i].Clone(), nil
}

// Snippets 返回全部片段的副本，修改它们不会影响消息。
func (m *Message) Snippets() []*Snippet {
	out := make([]*Snippet, len(m.snippets))
	for i, s := range m.snippets {
		out[i] = s.Clone()
	}
	return out
}

// Clear 移除全部片段。此前取得的分组随之失效。
func (m *Message) Clear() {
	m.snippets = nil
	m.invalidate()
}

// Clone 返回深拷贝。
func (m *Message) Clone() *Message {
	c := &Message{alt: m.alt, snippets: make([]*Snippet, len(m.snippets))}
	for i, s := range m.snippets {
		c.snippets[i] = s.Clone()
	}
	return c
}

// Text 返回全部片段文本的拼接，不含任何样式。
func (m *Message) Text() string {
	var sb strings.Builder
	for _, s := range m.snippets {
		sb.WriteString(s.text)
	}
	return sb.String()
}

// Plain 返回旧版纯文本形式：每个片段文本前加上其样式的旧版代码。
// 相邻片段的样式按增量输出，因此对只含文本和颜色的消息，
// 把结果再交给 Then 会得到相同的片段。
func (m *Message) Plain() string {
	var sb strings.Builder
	var prev []ColorToken
	for _, s := range m.snippets {
		sb.WriteString(StylePrefix(prev, s.styles, Sentinel))
		sb.WriteString(s.text)
		prev = s.styles
	}
	return sb.String()
}

// String 实现 fmt.Stringer，返回 Plain。
func (m *Message) String() string {
	return m.Plain()
}

// JSON 返回消息的聊天组件 JSON。只有一个片段时直接输出该片段，
// 否则输出 {"text":"","extra":[...]}。结果会被缓存，直到下一次修改。
func (m *Message) JSON() (string, error) {
	if m.cacheValid {
		return m.cache, nil
	}
	w := newWriter()
	if err := m.writeJSON(w); err != nil {
		m.invalidate()
		return "", err
	}
	data, err := w.BuildBytes()
	if err != nil {
		m.invalidate()
		return "", fmt.Errorf("序列化消息失败: %w", err)
	}
	m.cache = string(data)
	m.cacheValid = true
	return m.cache, nil
}

func (m *Message) writeJSON(w *jwriter.Writer) error {
	if len(m.snippets) == 1 {
		return m.snippets[0].writeJSON(w)
	}
	w.RawString(`{"text":"","extra":[`)
	for i, s := range m.snippets {
		if i > 0 {
			w.RawByte(',')
		}
		if err := s.writeJSON(w); err != nil {
			return err
		}
	}
	w.RawString("]}")
	return nil
}

func (m *Message) invalidate() {
	m.cache = ""
	m.cacheValid = false
}
