package xlru

import "fmt"

// Validate 遍历链表正反两个方向，校验链表与索引的全部一致性约束：
// 空态约束、头尾链接、正反遍历互逆、索引键集与链表可达键集一致、
// 条目数不超过容量。任何一条被破坏都返回包装了 [ErrCorrupted] 的错误。
//
// 复杂度 O(n)，只应在测试或调试场景调用，严禁出现在生产数据路径上。
func (c *Cache[K, V]) Validate() error {
	if c.head == noEntry {
		if c.tail != noEntry {
			return fmt.Errorf("%w: head is empty but tail is %d", ErrCorrupted, c.tail)
		}
		if len(c.index) != 0 {
			return fmt.Errorf("%w: head is empty but index holds %d keys", ErrCorrupted, len(c.index))
		}
		return nil
	}

	if c.entries[c.head].prev != noEntry {
		return fmt.Errorf("%w: head has a previous link", ErrCorrupted)
	}
	if c.entries[c.tail].next != noEntry {
		return fmt.Errorf("%w: tail has a next link", ErrCorrupted)
	}
	if len(c.index) == 1 && c.head != c.tail {
		return fmt.Errorf("%w: single entry but head %d != tail %d", ErrCorrupted, c.head, c.tail)
	}

	// 正向遍历：检查 prev 回链、索引映射与条目计数
	forward := 0
	prev := noEntry
	for idx := c.head; idx != noEntry; idx = c.entries[idx].next {
		if c.entries[idx].prev != prev {
			return fmt.Errorf("%w: entry %d has previous link %d, want %d", ErrCorrupted, idx, c.entries[idx].prev, prev)
		}
		got, ok := c.index[c.entries[idx].key]
		if !ok {
			return fmt.Errorf("%w: entry %d reachable from head but missing from index", ErrCorrupted, idx)
		}
		if got != idx {
			return fmt.Errorf("%w: index maps key of entry %d to %d", ErrCorrupted, idx, got)
		}
		prev = idx
		forward++
		if forward > len(c.index) {
			return fmt.Errorf("%w: forward walk exceeds index size %d, list may contain a cycle", ErrCorrupted, len(c.index))
		}
	}
	if prev != c.tail {
		return fmt.Errorf("%w: forward walk ends at %d, want tail %d", ErrCorrupted, prev, c.tail)
	}
	if forward != len(c.index) {
		return fmt.Errorf("%w: forward walk visits %d entries, index holds %d", ErrCorrupted, forward, len(c.index))
	}

	// 反向遍历：检查 next 回链并确认终点是 head
	backward := 0
	next := noEntry
	for idx := c.tail; idx != noEntry; idx = c.entries[idx].prev {
		if c.entries[idx].next != next {
			return fmt.Errorf("%w: entry %d has next link %d, want %d", ErrCorrupted, idx, c.entries[idx].next, next)
		}
		next = idx
		backward++
		if backward > len(c.index) {
			return fmt.Errorf("%w: backward walk exceeds index size %d, list may contain a cycle", ErrCorrupted, len(c.index))
		}
	}
	if next != c.head {
		return fmt.Errorf("%w: backward walk ends at %d, want head %d", ErrCorrupted, next, c.head)
	}
	if backward != forward {
		return fmt.Errorf("%w: backward walk visits %d entries, forward walk visited %d", ErrCorrupted, backward, forward)
	}

	if len(c.index) > c.capacity {
		return fmt.Errorf("%w: index holds %d keys, capacity is %d", ErrCorrupted, len(c.index), c.capacity)
	}
	return nil
}
