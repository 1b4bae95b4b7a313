package chat

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseJSON 把聊天组件 JSON 解码为消息。
//
// 支持纯字符串组件、单个组件、数组以及带 extra 的组件。extra 中的子组件继承
// 父组件的样式和事件，子组件声明的同类事件会覆盖继承来的事件，值为 false 的
// 样式标记会移除继承来的同名样式。文本为空且带有 extra 的包装组件本身不产生片段。
func ParseJSON(data string, opts ...Option) (*Message, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("%w: 不是有效的 JSON", ErrMalformed)
	}
	m := New(opts...)
	if err := decodeComponent(m, gjson.Parse(data), nil, nil); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeComponent(m *Message, c gjson.Result, styles []ColorToken, events []ActionEvent) error {
	switch {
	case c.Type == gjson.String:
		s := NewSnippet(c.Str, styles...)
		s.events = slices.Clone(events)
		m.snippets = append(m.snippets, s)
		return nil
	case c.IsArray():
		for _, child := range c.Array() {
			if err := decodeComponent(m, child, styles, events); err != nil {
				return err
			}
		}
		return nil
	case !c.IsObject():
		return fmt.Errorf("%w: 无法识别的组件 %s", ErrMalformed, c.Raw)
	}

	s := NewSnippet("", styles...)
	s.events = slices.Clone(events)
	var children []gjson.Result
	hasExtra := false
	own := make(map[Category]bool)
	var err error
	c.ForEach(func(key, value gjson.Result) bool {
		switch k := key.String(); k {
		case "text":
			s.text = value.String()
		case "extra":
			children = value.Array()
			hasExtra = true
		case "color":
			t, ok := TokenByName(value.String())
			if !ok {
				err = fmt.Errorf("%w: 未知的颜色 %q", ErrMalformed, value.String())
				return false
			}
			s.AddStyles(t)
		case "clickEvent", "hoverEvent":
			category := Category(strings.TrimSuffix(k, "Event"))
			if !own[category] {
				s.events = slices.DeleteFunc(s.events, func(e ActionEvent) bool { return e.Category == category })
				own[category] = true
			}
			s.AddEvent(category, value.Get("action").String(), value.Get("value").String())
		default:
			t, ok := TokenByName(k)
			if !ok || !t.IsFormat() {
				return true
			}
			if value.Bool() {
				s.AddStyles(t)
			} else {
				s.styles = slices.DeleteFunc(s.styles, func(x ColorToken) bool { return x == t })
			}
		}
		return true
	})
	if err != nil {
		return err
	}

	if s.text != "" || !hasExtra {
		m.snippets = append(m.snippets, s)
	}
	for _, child := range children {
		if err := decodeComponent(m, child, s.styles, s.events); err != nil {
			return err
		}
	}
	return nil
}
