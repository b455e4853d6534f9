package xlru

import "errors"

var (
	// ErrCorrupted 表示链表与索引的内部状态不一致。
	// 仅由 Validate 返回，出现即意味着缓存实现自身存在缺陷，
	// 调用方不应捕获后继续使用该缓存实例。
	ErrCorrupted = errors.New("xlru: internal state corrupted")
)
