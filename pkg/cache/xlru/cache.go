package xlru

// minCapacity 缓存容量下限。
// 至少保留 3 个条目可以省去大量单/双条目场景的特判，换取更简单的链表操作。
const minCapacity = 3

// noEntry 表示空句柄（无前驱/无后继/空链表）。
const noEntry = int32(-1)

// entry 是竞技场（arena）中的一个缓存条目。
// prev/next 保存相邻条目在竞技场中的下标句柄而非指针，
// 避免节点间互相持有引用导致的别名与生命周期问题。
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  int32
	next  int32
}

// Option 定义缓存可选配置函数类型。
type Option[K comparable, V any] func(*Cache[K, V])

// WithOnEvicted 设置条目因容量淘汰被移除时的回调函数。
//
// 回调仅在容量淘汰路径触发：Remove、Clear 以及 nil 值删除不会触发。
// 回调在缓存内部状态恢复一致之后同步执行，此时允许读取缓存，
// 但严禁在回调中写入（Put/Remove/Clear），否则会破坏正在进行的插入。
func WithOnEvicted[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvicted = fn
	}
}

// WithObserver 设置统计观测器，记录命中/未命中/写入/淘汰计数。
// obs 为 nil 时不产生任何开销。
func WithObserver[K comparable, V any](obs *Observer) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.obs = obs
	}
}

// Cache 是固定容量、按访问新近度淘汰的键值缓存。
//
// 所有条目存放在一个可增长的竞技场切片中；新近度链表（head 最新、tail 最旧）
// 与键索引都只保存竞技场下标。Get 命中与 Put 更新都会把条目搬到链表头部，
// 缓存满时插入新键会淘汰链表尾部的条目，全部操作均摊 O(1)。
//
// Cache 不是并发安全的：没有任何内部锁，跨 goroutine 共享时
// 必须由调用方用一把锁串行化全部访问。
type Cache[K comparable, V any] struct {
	entries  []entry[K, V]
	free     []int32
	index    map[K]int32
	head     int32
	tail     int32
	capacity int

	onEvicted func(key K, value V)
	obs       *Observer
}

// New 创建新的缓存。
// capacity 小于 3 时静默提升为 3，不返回错误。
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	if capacity < minCapacity {
		capacity = minCapacity
	}

	c := &Cache[K, V]{
		entries:  make([]entry[K, V], 0, capacity),
		index:    make(map[K]int32, capacity),
		head:     noEntry,
		tail:     noEntry,
		capacity: capacity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Get 获取缓存值。
// 命中时条目被提升为最近使用；未命中返回零值和 false。
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	if c.head == noEntry {
		c.obs.observeMiss()
		return value, false
	}

	if c.head == c.tail {
		// 唯一条目直接比较键，不必查索引
		if c.entries[c.head].key == key {
			c.obs.observeHit()
			return c.entries[c.head].value, true
		}
		c.obs.observeMiss()
		return value, false
	}

	idx, ok := c.index[key]
	if !ok {
		c.obs.observeMiss()
		return value, false
	}

	if c.entries[idx].prev != noEntry {
		c.unlink(idx)
		c.pushFront(idx)
	}
	c.obs.observeHit()
	return c.entries[idx].value, true
}

// Peek 获取缓存值但不提升新近度，不计入命中统计。
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	idx, ok := c.index[key]
	if !ok {
		return value, false
	}
	return c.entries[idx].value, true
}

// Contains 检查键是否存在，语义与 Peek 一致，不影响淘汰顺序。
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Put 写入键值。新条目或被更新的条目成为最近使用；
// 缓存已满时插入新键会先淘汰最久未访问的条目。
//
// 已知限制：key 已是最近使用的条目时 Put 直接返回且不更新值
// （与非头部条目的更新路径不对称），如需强制覆盖请先 Remove。
// 详见 doc.go 的「已知限制」。
func (c *Cache[K, V]) Put(key K, value V) {
	if c.head == noEntry {
		idx := c.alloc(key, value)
		c.head = idx
		c.tail = idx
		c.index[key] = idx
		c.obs.observePut()
		return
	}

	if c.entries[c.head].key == key {
		// 已是最近条目，跳过写入
		return
	}

	idx, ok := c.index[key]
	if !ok {
		if len(c.index) == c.capacity {
			c.evictTail()
		}
		idx = c.alloc(key, value)
		c.pushFront(idx)
		c.index[key] = idx
		c.obs.observePut()
		return
	}

	// 更新已有的非头部条目并提升到头部
	c.entries[idx].value = value
	c.unlink(idx)
	c.pushFront(idx)
	c.obs.observePut()
}

// PutOrRemove 写入或删除键值：value 为 nil 时等价于 Remove(key)，
// 否则等价于 Put(key, *value)。空缓存上的 nil 值写入是空操作。
func (c *Cache[K, V]) PutOrRemove(key K, value *V) {
	if value == nil {
		if c.head == noEntry {
			return
		}
		c.Remove(key)
		return
	}
	c.Put(key, *value)
}

// Remove 删除键对应的条目。键不存在或缓存为空时为空操作，重复删除安全。
func (c *Cache[K, V]) Remove(key K) {
	if c.head == noEntry {
		return
	}
	idx, ok := c.index[key]
	if !ok {
		return
	}
	delete(c.index, key)
	c.unlink(idx)
	c.release(idx)
}

// Clear 清空全部条目并回到初始状态，容量不变。
// 不触发淘汰回调：Clear 是重置，不是淘汰。
func (c *Cache[K, V]) Clear() {
	c.entries = make([]entry[K, V], 0, c.capacity)
	c.free = nil
	c.index = make(map[K]int32, c.capacity)
	c.head = noEntry
	c.tail = noEntry
}

// Len 返回当前条目数。
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// IsEmpty 检查缓存是否为空。
func (c *Cache[K, V]) IsEmpty() bool {
	return c.head == noEntry
}

// Cap 返回固定的最大容量。
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys 返回所有键的切片，按从最新到最旧的顺序排列。
// 每次调用分配新切片，复杂度 O(n)。
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for idx := c.head; idx != noEntry; idx = c.entries[idx].next {
		keys = append(keys, c.entries[idx].key)
	}
	return keys
}

// Clone 返回一份完全独立的深拷贝：条目、新近度顺序与容量一致，
// 不与原缓存共享任何可变状态。淘汰回调与观测器沿用原缓存的配置，
// 但复制条目本身不产生任何写入或淘汰计数。
func (c *Cache[K, V]) Clone() *Cache[K, V] {
	dup := New[K, V](c.capacity)

	// 从最旧到最新回放写入，使克隆后的链表顺序与原缓存一致；
	// 观测器在回放完成后再挂接，复制不计入统计
	for idx := c.tail; idx != noEntry; idx = c.entries[idx].prev {
		dup.Put(c.entries[idx].key, c.entries[idx].value)
	}
	dup.onEvicted = c.onEvicted
	dup.obs = c.obs
	return dup
}

// alloc 在竞技场中分配一个条目槽位，优先复用空闲槽。
// 新条目的链接字段为空，由调用方负责接入链表。
func (c *Cache[K, V]) alloc(key K, value V) int32 {
	if n := len(c.free); n > 0 {
		idx := c.free[n-1]
		c.free = c.free[:n-1]
		c.entries[idx] = entry[K, V]{key: key, value: value, prev: noEntry, next: noEntry}
		return idx
	}
	c.entries = append(c.entries, entry[K, V]{key: key, value: value, prev: noEntry, next: noEntry})
	return int32(len(c.entries) - 1)
}

// release 归还槽位并清空内容，避免残留引用阻碍回收。
func (c *Cache[K, V]) release(idx int32) {
	c.entries[idx] = entry[K, V]{prev: noEntry, next: noEntry}
	c.free = append(c.free, idx)
}

// unlink 把条目从链表当前位置摘出，修复相邻条目与 head/tail 的链接，
// 并清空条目自身的链接字段。
func (c *Cache[K, V]) unlink(idx int32) {
	e := &c.entries[idx]
	if e.prev != noEntry {
		c.entries[e.prev].next = e.next
	} else {
		c.head = e.next
	}
	if e.next != noEntry {
		c.entries[e.next].prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = noEntry
	e.next = noEntry
}

// pushFront 把一个未链接的条目接到链表头部。
func (c *Cache[K, V]) pushFront(idx int32) {
	e := &c.entries[idx]
	e.prev = noEntry
	e.next = c.head
	if c.head != noEntry {
		c.entries[c.head].prev = idx
	}
	c.head = idx
	if c.tail == noEntry {
		c.tail = idx
	}
}

// evictTail 淘汰最久未访问的条目：先摘链、删索引、归还槽位，
// 待内部状态一致后再触发淘汰回调。
func (c *Cache[K, V]) evictTail() {
	idx := c.tail
	key := c.entries[idx].key
	value := c.entries[idx].value

	delete(c.index, key)
	c.unlink(idx)
	c.release(idx)
	c.obs.observeEviction()

	if c.onEvicted != nil {
		c.onEvicted(key, value)
	}
}
