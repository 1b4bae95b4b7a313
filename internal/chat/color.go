package chat

import (
	"strings"

	"github.com/purpose168/powermessage/internal/stringext"
)

// ColorToken 表示固定调色板中的一个颜色或文本修饰样式。
type ColorToken uint8

const (
	Black ColorToken = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
	Magic
	Bold
	Strikethrough
	Underline
	Italic
	Reset
)

const (
	// Sentinel 是旧版颜色代码的前缀字符。
	Sentinel = '§'
	// AlternateChar 是默认的替代前缀字符，会在解析前被转换为 Sentinel。
	AlternateChar = '&'
)

type tokenInfo struct {
	code   rune
	name   string
	format bool
	hex    string
}

// 协议名称是固定的，Magic 和 Underline 的名称与标识符不同，不能由标识符推导。
var tokenTable = [...]tokenInfo{
	Black:         {'0', "black", false, "#000000"},
	DarkBlue:      {'1', "dark_blue", false, "#0000AA"},
	DarkGreen:     {'2', "dark_green", false, "#00AA00"},
	DarkAqua:      {'3', "dark_aqua", false, "#00AAAA"},
	DarkRed:       {'4', "dark_red", false, "#AA0000"},
	DarkPurple:    {'5', "dark_purple", false, "#AA00AA"},
	Gold:          {'6', "gold", false, "#FFAA00"},
	Gray:          {'7', "gray", false, "#AAAAAA"},
	DarkGray:      {'8', "dark_gray", false, "#555555"},
	Blue:          {'9', "blue", false, "#5555FF"},
	Green:         {'a', "green", false, "#55FF55"},
	Aqua:          {'b', "aqua", false, "#55FFFF"},
	Red:           {'c', "red", false, "#FF5555"},
	LightPurple:   {'d', "light_purple", false, "#FF55FF"},
	Yellow:        {'e', "yellow", false, "#FFFF55"},
	White:         {'f', "white", false, "#FFFFFF"},
	Magic:         {'k', "obfuscated", true, ""},
	Bold:          {'l', "bold", true, ""},
	Strikethrough: {'m', "strikethrough", true, ""},
	Underline:     {'n', "underlined", true, ""},
	Italic:        {'o', "italic", true, ""},
	Reset:         {'r', "reset", false, ""},
}

// Tokens 按代码顺序返回调色板中的全部标记。
func Tokens() []ColorToken {
	out := make([]ColorToken, len(tokenTable))
	for i := range tokenTable {
		out[i] = ColorToken(i)
	}
	return out
}

// Valid 报告标记是否属于调色板。
func (t ColorToken) Valid() bool {
	return int(t) < len(tokenTable)
}

// Code 返回旧版颜色代码字符，例如 Red 对应 'c'。
func (t ColorToken) Code() rune {
	if !t.Valid() {
		return 0
	}
	return tokenTable[t].code
}

// Name 返回协议中使用的小写名称。
func (t ColorToken) Name() string {
	if !t.Valid() {
		return ""
	}
	return tokenTable[t].name
}

// IsFormat 报告标记是否为文本修饰样式（粗体、斜体等），而非颜色。
func (t ColorToken) IsFormat() bool {
	return t.Valid() && tokenTable[t].format
}

// IsColor 报告标记是否为颜色。Reset 既不是颜色也不是样式。
func (t ColorToken) IsColor() bool {
	return t.Valid() && !tokenTable[t].format && t != Reset
}

// Hex 返回颜色的 RGB 值，样式和 Reset 返回空字符串。
func (t ColorToken) Hex() string {
	if !t.Valid() {
		return ""
	}
	return tokenTable[t].hex
}

// DisplayName 返回适合展示的名称，例如 "Dark Blue"。
func (t ColorToken) DisplayName() string {
	return stringext.Capitalize(strings.ReplaceAll(t.Name(), "_", " "))
}

// String 返回旧版渲染形式，即 Sentinel 加代码字符。
func (t ColorToken) String() string {
	if !t.Valid() {
		return ""
	}
	return string([]rune{Sentinel, t.Code()})
}

// TokenByCode 根据代码字符查找标记，不区分大小写。
func TokenByCode(code rune) (ColorToken, bool) {
	if code >= 'A' && code <= 'Z' {
		code += 'a' - 'A'
	}
	for i, info := range tokenTable {
		if info.code == code {
			return ColorToken(i), true
		}
	}
	return 0, false
}

// TokenByName 根据协议名称查找标记。
func TokenByName(name string) (ColorToken, bool) {
	for i, info := range tokenTable {
		if info.name == name {
			return ColorToken(i), true
		}
	}
	return 0, false
}

// TranslateAlternate 将 alt 后紧跟有效代码字符的位置替换为 Sentinel 形式，
// 代码字符统一转为小写。
func TranslateAlternate(alt rune, s string) string {
	if alt == Sentinel || !strings.ContainsRune(s, alt) {
		return s
	}
	runes := []rune(s)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] != alt {
			continue
		}
		if t, ok := TokenByCode(runes[i+1]); ok {
			runes[i] = Sentinel
			runes[i+1] = t.Code()
		}
	}
	return string(runes)
}

// StylePrefix 返回从 prev 样式过渡到 cur 样式所需的旧版代码，使用 marker 作为前缀字符。
// cur 以 prev 为前缀时只输出新增部分，否则先输出 Reset 再输出 cur 的全部标记。
func StylePrefix(prev, cur []ColorToken, marker rune) string {
	var sb strings.Builder
	tail := cur
	if hasPrefix(cur, prev) {
		tail = cur[len(prev):]
	} else {
		sb.WriteRune(marker)
		sb.WriteRune(Reset.Code())
	}
	for _, t := range tail {
		sb.WriteRune(marker)
		sb.WriteRune(t.Code())
	}
	return sb.String()
}

func hasPrefix(s, prefix []ColorToken) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, t := range prefix {
		if s[i] != t {
			return false
		}
	}
	return true
}
