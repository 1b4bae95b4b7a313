package chat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 持久化只保存往返所需的逻辑键值对。
type eventRecord struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
	Data string `yaml:"data"`
}

type snippetRecord struct {
	Text         *string       `yaml:"text"`
	Colours      []string      `yaml:"colours,omitempty"`
	ActionEvents []eventRecord `yaml:"actionEvents,omitempty"`
}

type messageRecord struct {
	Snippets *[]snippetRecord `yaml:"snippets"`
}

func (s *Snippet) record() snippetRecord {
	text := s.text
	r := snippetRecord{Text: &text}
	for _, t := range s.styles {
		r.Colours = append(r.Colours, t.Name())
	}
	for _, e := range s.events {
		r.ActionEvents = append(r.ActionEvents, eventRecord{
			Type: string(e.Category),
			Name: e.Name,
			Data: e.Value,
		})
	}
	return r
}

func snippetFromRecord(r snippetRecord) (*Snippet, error) {
	if r.Text == nil {
		return nil, fmt.Errorf("%w: 片段缺少 text", ErrMalformed)
	}
	s := NewSnippet(*r.Text)
	for _, name := range r.Colours {
		t, ok := TokenByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: 未知的颜色 %q", ErrMalformed, name)
		}
		s.AddStyles(t)
	}
	for _, e := range r.ActionEvents {
		if e.Type == "" {
			return nil, fmt.Errorf("%w: 事件缺少 type", ErrMalformed)
		}
		s.AddEvent(Category(e.Type), e.Name, e.Data)
	}
	return s, nil
}

// MarshalYAML 实现 yaml.Marshaler。
func (m *Message) MarshalYAML() (any, error) {
	snippets := make([]snippetRecord, len(m.snippets))
	for i, s := range m.snippets {
		snippets[i] = s.record()
	}
	return messageRecord{Snippets: &snippets}, nil
}

// UnmarshalYAML 实现 yaml.Unmarshaler，替换消息中现有的全部片段。
func (m *Message) UnmarshalYAML(node *yaml.Node) error {
	var rec messageRecord
	if err := node.Decode(&rec); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if rec.Snippets == nil {
		return fmt.Errorf("%w: 消息缺少 snippets", ErrMalformed)
	}
	snippets := make([]*Snippet, 0, len(*rec.Snippets))
	for _, r := range *rec.Snippets {
		s, err := snippetFromRecord(r)
		if err != nil {
			return err
		}
		snippets = append(snippets, s)
	}
	if m.alt == 0 {
		m.alt = AlternateChar
	}
	m.snippets = snippets
	m.invalidate()
	return nil
}

// SaveFile 把消息以 YAML 写入 path。关闭文件失败同样作为错误返回。
func SaveFile(path string, m *Message) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建文件 %s 失败: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("关闭文件 %s 失败: %w", path, cerr)
		}
	}()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("写入消息失败: %w", err)
	}
	return enc.Close()
}

// LoadFile 从 path 读取 SaveFile 写出的消息。
func LoadFile(path string, opts ...Option) (*Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取文件 %s 失败: %w", path, err)
	}
	m := New(opts...)
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}
