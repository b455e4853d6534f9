// Package replay 把 CSV 操作轨迹回放到缓存上，供 cachectl 使用。
//
// 轨迹格式：每行一条操作，'#' 开头的行是注释。
//
//	put,<key>,<value>
//	get,<key>
//	remove,<key>
//	clear
package replay

import (
	"errors"
	"fmt"
	"io"

	"github.com/omeyang/cachekit/pkg/cache/xlru"
	"github.com/omeyang/cachekit/pkg/util/xcsv"
)

var (
	// ErrBadRecord 表示轨迹记录的字段数量与操作不匹配。
	ErrBadRecord = errors.New("replay: malformed trace record")

	// ErrUnknownOp 表示不认识的操作名。
	ErrUnknownOp = errors.New("replay: unknown operation")
)

// Kind 操作类型。
type Kind string

const (
	KindGet    Kind = "get"
	KindPut    Kind = "put"
	KindRemove Kind = "remove"
	KindClear  Kind = "clear"
)

// Op 一条缓存操作。
type Op struct {
	Kind  Kind
	Key   string
	Value string
}

// Result 回放结束后的汇总。
type Result struct {
	// Ops 实际执行的操作数。
	Ops int

	// Hits / Misses get 操作的命中与未命中次数。
	Hits   int
	Misses int

	// Evictions 容量淘汰次数。
	Evictions int

	// Keys 回放结束时的键顺序，最新在前。
	Keys []string

	// Size / Capacity 结束时的条目数与缓存容量。
	Size     int
	Capacity int
}

// ParseTrace 解析操作轨迹。
// 每条记录的字段数必须与操作匹配：put 三个字段，get/remove 两个，clear 一个。
func ParseTrace(r io.Reader) ([]Op, error) {
	records, err := xcsv.NewReader(r, xcsv.WithTrimSpace()).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	ops := make([]Op, 0, len(records))
	for i, rec := range records {
		op, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w (record %d: %v)", err, i+1, rec)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseRecord(rec []string) (Op, error) {
	if len(rec) == 0 {
		return Op{}, ErrBadRecord
	}
	switch Kind(rec[0]) {
	case KindPut:
		if len(rec) != 3 {
			return Op{}, ErrBadRecord
		}
		return Op{Kind: KindPut, Key: rec[1], Value: rec[2]}, nil
	case KindGet:
		if len(rec) != 2 {
			return Op{}, ErrBadRecord
		}
		return Op{Kind: KindGet, Key: rec[1]}, nil
	case KindRemove:
		if len(rec) != 2 {
			return Op{}, ErrBadRecord
		}
		return Op{Kind: KindRemove, Key: rec[1]}, nil
	case KindClear:
		if len(rec) != 1 {
			return Op{}, ErrBadRecord
		}
		return Op{Kind: KindClear}, nil
	default:
		return Op{}, fmt.Errorf("%w: %q", ErrUnknownOp, rec[0])
	}
}

// Run 在一个新建的缓存上回放操作并汇总结果，结束时做一次完整性校验。
func Run(ops []Op, capacity int) (*Result, error) {
	res := &Result{}
	cache := xlru.New(capacity, xlru.WithOnEvicted(func(string, string) {
		res.Evictions++
	}))

	for _, op := range ops {
		switch op.Kind {
		case KindPut:
			cache.Put(op.Key, op.Value)
		case KindGet:
			if _, ok := cache.Get(op.Key); ok {
				res.Hits++
			} else {
				res.Misses++
			}
		case KindRemove:
			cache.Remove(op.Key)
		case KindClear:
			cache.Clear()
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op.Kind)
		}
		res.Ops++
	}

	if err := cache.Validate(); err != nil {
		return nil, err
	}
	res.Keys = cache.Keys()
	res.Size = cache.Len()
	res.Capacity = cache.Cap()
	return res, nil
}
