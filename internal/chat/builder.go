package chat

import "fmt"

// Builder 是带游标的构建会话：每次 Then 之后，修饰方法作用于最近一次
// 追加所产生的分组。消息本身不保存游标。
//
// 第一次失败会被记录下来，之后的调用都不再生效，由 Err 或 Build 返回。
type Builder struct {
	msg     *Message
	current *Group
	err     error
}

// NewBuilder 创建新的构建会话。
func NewBuilder(opts ...Option) *Builder {
	return &Builder{msg: New(opts...)}
}

// Then 追加文本，并把游标移动到新增片段组成的分组。
// 只有颜色代码的文本不产生片段，游标移到空分组，随后的修饰不作用于任何片段；
// 只有空字符串会让游标保持不变。
func (b *Builder) Then(text string) *Builder {
	if b.err != nil {
		return b
	}
	g := b.msg.Then(text)
	if text != "" {
		b.current = g
	}
	return b
}

// Thenf 按格式化字符串追加文本。
func (b *Builder) Thenf(format string, args ...any) *Builder {
	return b.Then(fmt.Sprintf(format, args...))
}

// Group 把游标移动到最后 count 个片段。
func (b *Builder) Group(count int) *Builder {
	return b.retarget(b.msg.Last(count))
}

// All 把游标移动到全部片段。
func (b *Builder) All() *Builder {
	return b.retarget(b.msg.All())
}

// Current 返回当前游标分组，尚未追加任何文本时返回 nil。
func (b *Builder) Current() *Group { return b.current }

// Edit 替换当前分组中每个片段的文本。
func (b *Builder) Edit(content string) *Builder {
	return b.apply(func(g *Group) *Group { return g.SetText(content) })
}

// Colour 为当前分组追加样式。
func (b *Builder) Colour(tokens ...ColorToken) *Builder {
	return b.apply(func(g *Group) *Group { return g.Colour(tokens...) })
}

// File 见 Group.File。
func (b *Builder) File(relativePath string) *Builder {
	return b.apply(func(g *Group) *Group { return g.File(relativePath) })
}

// Link 见 Group.Link。
func (b *Builder) Link(url string) *Builder {
	return b.apply(func(g *Group) *Group { return g.Link(url) })
}

// Suggest 见 Group.Suggest。
func (b *Builder) Suggest(command string) *Builder {
	return b.apply(func(g *Group) *Group { return g.Suggest(command) })
}

// Perform 见 Group.Perform。
func (b *Builder) Perform(command string) *Builder {
	return b.apply(func(g *Group) *Group { return g.Perform(command) })
}

// Tooltip 见 Group.Tooltip。
func (b *Builder) Tooltip(lines ...string) *Builder {
	return b.apply(func(g *Group) *Group { return g.Tooltip(lines...) })
}

// TooltipMessage 见 Group.TooltipMessage。
func (b *Builder) TooltipMessage(m *Message) *Builder {
	return b.apply(func(g *Group) *Group { return g.TooltipMessage(m) })
}

// AchievementTooltip 见 Group.AchievementTooltip。
func (b *Builder) AchievementTooltip(name string) *Builder {
	return b.apply(func(g *Group) *Group { return g.AchievementTooltip(name) })
}

// StatisticTooltip 见 Group.StatisticTooltip。
func (b *Builder) StatisticTooltip(name string) *Builder {
	return b.apply(func(g *Group) *Group { return g.StatisticTooltip(name) })
}

// ItemTooltip 见 Group.ItemTooltip。
func (b *Builder) ItemTooltip(itemJSON string) *Builder {
	return b.apply(func(g *Group) *Group { return g.ItemTooltip(itemJSON) })
}

// ItemTooltipFor 见 Group.ItemTooltipFor。
func (b *Builder) ItemTooltipFor(item Item) *Builder {
	return b.apply(func(g *Group) *Group { return g.ItemTooltipFor(item) })
}

// AchievementTooltipFor 见 Group.AchievementTooltipFor。
func (b *Builder) AchievementTooltipFor(r Resolver, a Achievement) *Builder {
	return b.apply(func(g *Group) *Group { return g.AchievementTooltipFor(r, a) })
}

// StatisticTooltipFor 见 Group.StatisticTooltipFor。
func (b *Builder) StatisticTooltipFor(r Resolver, s Statistic, q Qualifier) *Builder {
	return b.apply(func(g *Group) *Group { return g.StatisticTooltipFor(r, s, q) })
}

// Message 返回正在构建的消息。
func (b *Builder) Message() *Message { return b.msg }

// Err 返回会话中记录的第一个错误。
func (b *Builder) Err() error { return b.err }

// Build 返回构建完成的消息，或会话中记录的第一个错误。
func (b *Builder) Build() (*Message, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.msg, nil
}

func (b *Builder) retarget(g *Group) *Builder {
	if b.err != nil {
		return b
	}
	if err := g.Err(); err != nil {
		b.err = err
		return b
	}
	b.current = g
	return b
}

func (b *Builder) apply(fn func(*Group) *Group) *Builder {
	if b.err != nil {
		return b
	}
	if b.current == nil {
		b.err = fmt.Errorf("%w: 请先调用 Then 追加文本", ErrNullState)
		return b
	}
	if err := fn(b.current).Err(); err != nil {
		b.err = err
	}
	return b
}
