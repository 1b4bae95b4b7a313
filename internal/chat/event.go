package chat

import (
	"fmt"

	"github.com/mailru/easyjson/jwriter"
)

// Category 表示动作事件的类别。
type Category string

const (
	// Click 表示点击事件。
	Click Category = "click"
	// Hover 表示悬停事件。
	Hover Category = "hover"
)

// 客户端能识别的动作名称。
const (
	ActionOpenURL         = "open_url"
	ActionOpenFile        = "open_file"
	ActionRunCommand      = "run_command"
	ActionSuggestCommand  = "suggest_command"
	ActionShowText        = "show_text"
	ActionShowAchievement = "show_achievement"
	ActionShowItem        = "show_item"
)

// ActionEvent 表示附加在一段文本上的一个点击或悬停行为。
//
// 构造时允许名称或值为空，校验在序列化时进行。
type ActionEvent struct {
	Category Category
	Name     string
	Value    string
}

// NewActionEvent 创建指定类别的事件。
func NewActionEvent(category Category) ActionEvent {
	return ActionEvent{Category: category}
}

// WithName 返回设置了动作名称的副本。
func (e ActionEvent) WithName(name string) ActionEvent {
	e.Name = name
	return e
}

// WithData 返回设置了动作值的副本。
func (e ActionEvent) WithData(value string) ActionEvent {
	e.Value = value
	return e
}

// Key 返回事件在 JSON 中的键名，例如 "clickEvent"。
func (e ActionEvent) Key() string {
	return string(e.Category) + "Event"
}

// Validate 检查名称和值均不为空。
func (e ActionEvent) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: %s 的动作名称不能为空", ErrValidation, e.Key())
	}
	if e.Value == "" {
		return fmt.Errorf("%w: %s 的动作值不能为空", ErrValidation, e.Key())
	}
	return nil
}

// JSON 将事件序列化为独立的对象：{"<category>Event":{"action":...,"value":...}}。
func (e ActionEvent) JSON() (string, error) {
	w := newWriter()
	w.RawByte('{')
	if err := e.writeMember(w); err != nil {
		return "", err
	}
	w.RawByte('}')
	data, err := w.BuildBytes()
	if err != nil {
		return "", fmt.Errorf("序列化事件失败: %w", err)
	}
	return string(data), nil
}

// writeMember 写出事件对应的成员（不含外层花括号）。
func (e ActionEvent) writeMember(w *jwriter.Writer) error {
	if err := e.Validate(); err != nil {
		return err
	}
	w.String(e.Key())
	w.RawString(`:{"action":`)
	w.String(e.Name)
	w.RawString(`,"value":`)
	w.String(e.Value)
	w.RawByte('}')
	return nil
}

func newWriter() *jwriter.Writer {
	return &jwriter.Writer{NoEscapeHTML: true}
}
