package chat

import "fmt"

// ResourceKind 表示需要由宿主解析名称的资源类型。
type ResourceKind string

const (
	ResourceAchievement ResourceKind = "achievement"
	ResourceStatistic   ResourceKind = "statistic"
)

// Resolver 由宿主提供，把成就、统计等领域对象解析为客户端使用的名称。
type Resolver interface {
	ResolveNamedResource(kind ResourceKind, key string) (string, error)
}

// ResolverFunc 允许用普通函数实现 Resolver。
type ResolverFunc func(kind ResourceKind, key string) (string, error)

// ResolveNamedResource 实现 Resolver。
func (f ResolverFunc) ResolveNamedResource(kind ResourceKind, key string) (string, error) {
	return f(kind, key)
}

// StatisticType 描述统计需要的附加参数类型。
type StatisticType int

const (
	StatisticUntyped StatisticType = iota
	StatisticBlock
	StatisticItem
	StatisticEntity
)

func (t StatisticType) String() string {
	switch t {
	case StatisticUntyped:
		return "untyped"
	case StatisticBlock:
		return "block"
	case StatisticItem:
		return "item"
	case StatisticEntity:
		return "entity"
	default:
		return fmt.Sprintf("StatisticType(%d)", int(t))
	}
}

// Achievement 是宿主中的一个成就。
type Achievement struct {
	Key string
}

// Statistic 是宿主中的一个统计项。
type Statistic struct {
	Key  string
	Type StatisticType
}

// Qualifier 是带类型统计所需的附加参数，即 Material 或 EntityType。
type Qualifier interface {
	qualifierKey() string
}

// Material 是方块或物品类型。
type Material struct {
	Key   string
	Block bool
}

func (m Material) qualifierKey() string { return m.Key }

// EntityType 是实体类型。
type EntityType struct {
	Key string
}

func (e EntityType) qualifierKey() string { return e.Key }

// checkQualifier 校验附加参数与统计类型是否匹配。
func checkQualifier(s Statistic, q Qualifier) error {
	if q == nil {
		if s.Type != StatisticUntyped {
			return fmt.Errorf("%w: 统计 %s 需要额外的 %s 参数", ErrIllegalParameter, s.Key, s.Type)
		}
		return nil
	}
	if s.Type == StatisticUntyped {
		return fmt.Errorf("%w: 统计 %s 不需要额外参数", ErrIllegalParameter, s.Key)
	}
	switch q := q.(type) {
	case Material:
		if s.Type == StatisticEntity || (s.Type == StatisticBlock && !q.Block) {
			return fmt.Errorf("%w: 统计 %s 的参数类型错误，需要 %s", ErrIllegalParameter, s.Key, s.Type)
		}
	case EntityType:
		if s.Type != StatisticEntity {
			return fmt.Errorf("%w: 统计 %s 的参数类型错误，需要 %s", ErrIllegalParameter, s.Key, s.Type)
		}
	default:
		return fmt.Errorf("%w: 未知的参数类型 %T", ErrIllegalParameter, q)
	}
	return nil
}

// AchievementTooltipFor 通过 r 解析成就名称后显示成就。解析结果原样使用。
func (g *Group) AchievementTooltipFor(r Resolver, a Achievement) *Group {
	if g.err != nil {
		return g
	}
	name, err := r.ResolveNamedResource(ResourceAchievement, a.Key)
	if err != nil {
		return g.fail(fmt.Errorf("解析成就 %s 失败: %w", a.Key, err))
	}
	return g.event(Hover, ActionShowAchievement, name)
}

// StatisticTooltipFor 通过 r 解析统计名称后显示统计。q 为 nil 表示无附加参数；
// 参数与统计类型不匹配时记录 ErrIllegalParameter。
func (g *Group) StatisticTooltipFor(r Resolver, s Statistic, q Qualifier) *Group {
	if g.err != nil {
		return g
	}
	if err := checkQualifier(s, q); err != nil {
		return g.fail(err)
	}
	key := s.Key
	if q != nil {
		key += "." + q.qualifierKey()
	}
	name, err := r.ResolveNamedResource(ResourceStatistic, key)
	if err != nil {
		return g.fail(fmt.Errorf("解析统计 %s 失败: %w", key, err))
	}
	return g.event(Hover, ActionShowAchievement, name)
}
