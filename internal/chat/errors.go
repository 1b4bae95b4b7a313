package chat

import "errors"

// 调用方误用时返回的错误。全部为同步错误，重试没有意义，应直接返回给调用方。
var (
	// ErrValidation 表示序列化时必填字段为空（例如动作名称或动作值）。
	ErrValidation = errors.New("校验失败")
	// ErrInvalidArgument 表示参数无效，例如空的提示文本列表或越界的分组范围。
	ErrInvalidArgument = errors.New("无效参数")
	// ErrNullState 表示在尚未建立任何分组时调用了修饰方法。
	ErrNullState = errors.New("当前没有可修饰的分组")
	// ErrIllegalParameter 表示统计类型与附加参数类型不匹配。
	ErrIllegalParameter = errors.New("非法参数")
	// ErrMalformed 表示待解码或待恢复的数据格式不正确。
	ErrMalformed = errors.New("数据格式错误")
)
