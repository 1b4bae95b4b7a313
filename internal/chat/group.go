package chat

import (
	"fmt"
	"strings"
)

// Group 是消息中连续片段 [start, end) 的视图，修饰操作会作用到范围内的每个片段。
//
// Group 不拥有片段。消息的片段数量在 end 之前发生变化后，分组即失效，
// 此时的修饰操作会记录 ErrInvalidArgument。
//
// 第一次失败会被记录下来，之后的修饰操作都不再生效，可通过 Err 取得该错误。
type Group struct {
	msg        *Message
	start, end int
	err        error
}

func newGroup(m *Message, start, end int) *Group {
	g := &Group{msg: m, start: start, end: end}
	if start < 0 || end < start || end > len(m.snippets) {
		g.err = fmt.Errorf("%w: 分组范围 [%d, %d) 超出片段数量 %d", ErrInvalidArgument, start, end, len(m.snippets))
	}
	return g
}

// Start 返回范围起点（包含）。
func (g *Group) Start() int { return g.start }

// End 返回范围终点（不包含）。
func (g *Group) End() int { return g.end }

// Len 返回范围内的片段数量。
func (g *Group) Len() int { return g.end - g.start }

// Err 返回分组上记录的第一个错误。
func (g *Group) Err() error { return g.err }

// Exit 返回所属消息，便于在链式调用中跳出分组。
func (g *Group) Exit() *Message { return g.msg }

// Text 返回范围内片段文本的拼接。
func (g *Group) Text() string {
	if !g.inRange() {
		return ""
	}
	var sb strings.Builder
	for _, s := range g.msg.snippets[g.start:g.end] {
		sb.WriteString(s.text)
	}
	return sb.String()
}

// SetText 把范围内每个片段的文本都设置为 content，样式和事件保持不变。
func (g *Group) SetText(content string) *Group {
	return g.each(func(s *Snippet) { s.SetText(content) })
}

// Colour 为范围内每个片段追加样式。
func (g *Group) Colour(tokens ...ColorToken) *Group {
	return g.each(func(s *Snippet) { s.AddStyles(tokens...) })
}

// File 点击时在查看者本地打开相对路径的文件。
func (g *Group) File(relativePath string) *Group {
	return g.event(Click, ActionOpenFile, relativePath)
}

// Link 点击时打开链接。
func (g *Group) Link(url string) *Group {
	return g.event(Click, ActionOpenURL, url)
}

// Suggest 点击时把命令填入查看者的聊天输入框。
func (g *Group) Suggest(command string) *Group {
	return g.event(Click, ActionSuggestCommand, command)
}

// Perform 点击时以查看者身份执行命令。
func (g *Group) Perform(command string) *Group {
	return g.event(Click, ActionRunCommand, command)
}

// Tooltip 悬停时显示文本，多行内容以换行连接为一个事件。
func (g *Group) Tooltip(lines ...string) *Group {
	if len(lines) == 0 {
		return g.fail(fmt.Errorf("%w: 提示内容不能为空", ErrInvalidArgument))
	}
	return g.event(Hover, ActionShowText, strings.Join(lines, "\n"))
}

// TooltipMessage 悬停时显示另一条消息的纯文本，样式和事件都会被去除。
func (g *Group) TooltipMessage(m *Message) *Group {
	text := m.Text()
	if text == "" {
		return g.fail(fmt.Errorf("%w: 提示消息不能为空", ErrInvalidArgument))
	}
	return g.event(Hover, ActionShowText, text)
}

// AchievementTooltip 悬停时显示成就。名称缺少 "achievement." 前缀时会自动补上。
func (g *Group) AchievementTooltip(name string) *Group {
	return g.event(Hover, ActionShowAchievement, withPrefix("achievement.", name))
}

// StatisticTooltip 悬停时显示统计信息。名称缺少 "stat." 前缀时会自动补上。
func (g *Group) StatisticTooltip(name string) *Group {
	return g.event(Hover, ActionShowAchievement, withPrefix("stat.", name))
}

// ItemTooltip 悬停时显示物品，itemJSON 为物品的 NBT 文本。
func (g *Group) ItemTooltip(itemJSON string) *Group {
	return g.event(Hover, ActionShowItem, itemJSON)
}

// ItemTooltipFor 根据物品描述生成 NBT 文本后显示物品。
func (g *Group) ItemTooltipFor(item Item) *Group {
	return g.ItemTooltip(item.SNBT())
}

func (g *Group) event(category Category, name, value string) *Group {
	return g.each(func(s *Snippet) { s.AddEvent(category, name, value) })
}

func (g *Group) each(fn func(*Snippet)) *Group {
	if g.err != nil {
		return g
	}
	if !g.inRange() {
		return g.fail(fmt.Errorf("%w: 分组 [%d, %d) 已失效", ErrInvalidArgument, g.start, g.end))
	}
	for _, s := range g.msg.snippets[g.start:g.end] {
		fn(s)
	}
	g.msg.invalidate()
	return g
}

func (g *Group) inRange() bool {
	return g.start >= 0 && g.start <= g.end && g.end <= len(g.msg.snippets)
}

func (g *Group) fail(err error) *Group {
	if g.err == nil {
		g.err = err
	}
	return g
}

func withPrefix(prefix, name string) string {
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}
