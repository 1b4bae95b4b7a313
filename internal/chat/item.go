package chat

import (
	"strconv"
	"strings"
)

// Item 描述悬停时展示的物品。
type Item struct {
	ID    string
	Count int
	Name  string
	Lore  []string
}

// SNBT 返回物品的字符串化 NBT，例如
// {id:"minecraft:stone",Count:1b,tag:{display:{Name:"...",Lore:["..."]}}}。
// Count 被限制在字节范围 1 到 127 之内，没有名称和描述时省略 tag。
func (it Item) SNBT() string {
	count := min(max(it.Count, 1), 127)
	var sb strings.Builder
	sb.WriteString("{id:")
	sb.WriteString(quoteSNBT(it.ID))
	sb.WriteString(",Count:")
	sb.WriteString(strconv.Itoa(count))
	sb.WriteString("b")
	if it.Name != "" || len(it.Lore) > 0 {
		sb.WriteString(",tag:{display:{")
		if it.Name != "" {
			sb.WriteString("Name:")
			sb.WriteString(quoteSNBT(it.Name))
		}
		if len(it.Lore) > 0 {
			if it.Name != "" {
				sb.WriteByte(',')
			}
			sb.WriteString("Lore:[")
			for i, line := range it.Lore {
				if i > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(quoteSNBT(line))
			}
			sb.WriteByte(']')
		}
		sb.WriteString("}}")
	}
	sb.WriteByte('}')
	return sb.String()
}

func quoteSNBT(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
