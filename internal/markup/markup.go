// Package markup 解析一种简单的行内标记语法并构建聊天消息。
//
// 语法为普通文本中穿插 [kind:payload] 标签，kind 为 txt、file、url、scmd、cmd
// 之一（不区分大小写），payload 为下一个 ] 之前的任意文本。标签作用于它前面
// 那段文本所产生的片段，例如：
//
//	Hello world[txt:&6Hover text!]. &3Click to perform a command[cmd:say Hello world!]
package markup

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/purpose168/powermessage/internal/chat"
)

// Kind 表示标签类型。
type Kind string

const (
	KindTooltip Kind = "txt"
	KindFile    Kind = "file"
	KindURL     Kind = "url"
	KindSuggest Kind = "scmd"
	KindCommand Kind = "cmd"
)

var tagPattern = regexp.MustCompile(`(?i)\[(txt|file|url|scmd|cmd):([^\]]+)\]`)

// Parser 把标记文本转换为消息。
type Parser struct {
	alt rune
}

// NewParser 创建使用 alt 作为颜色代码替代前缀的解析器。
func NewParser(alt rune) Parser {
	return Parser{alt: alt}
}

// Parse 使用默认的 & 前缀解析标记文本。
func Parse(raw string) (*chat.Message, error) {
	return NewParser(chat.AlternateChar).Parse(raw)
}

// Parse 解析标记文本。标签之前的文本通过 Then 追加，随后标签作用于这次追加
// 产生的分组；最后一个标签之后的文本作为结尾追加。第一个标签之前没有任何
// 文本时返回 chat.ErrNullState。
func (p Parser) Parse(raw string) (*chat.Message, error) {
	b := chat.NewBuilder(chat.WithAlternateChar(p.alt))
	rest := raw
	for {
		loc := tagPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		if loc[0] > 0 {
			b.Then(rest[:loc[0]])
		}
		kind := Kind(strings.ToLower(rest[loc[2]:loc[3]]))
		payload := chat.TranslateAlternate(p.alt, rest[loc[4]:loc[5]])
		slog.Debug("处理标记标签", "kind", kind, "payload", payload)

		switch kind {
		case KindTooltip:
			b.Tooltip(payload)
		case KindFile:
			b.File(payload)
		case KindURL:
			b.Link(payload)
		case KindCommand:
			b.Perform(payload)
		case KindSuggest:
			b.Suggest(payload)
		}
		rest = rest[loc[1]:]
	}
	if rest != "" {
		b.Then(rest)
	}
	return b.Build()
}

// Builder 累积原始标记文本，最后一次性解析。
type Builder struct {
	raw    strings.Builder
	parser Parser
}

// NewBuilder 创建使用默认 & 前缀的标记构建器。
func NewBuilder() *Builder {
	return &Builder{parser: NewParser(chat.AlternateChar)}
}

// WithText 追加原始标记文本。
func (b *Builder) WithText(raw string) *Builder {
	b.raw.WriteString(raw)
	return b
}

// Build 解析目前累积的全部文本。
func (b *Builder) Build() (*chat.Message, error) {
	return b.parser.Parse(b.raw.String())
}
