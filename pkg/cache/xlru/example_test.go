package xlru_test

import (
	"fmt"

	"github.com/omeyang/cachekit/pkg/cache/xlru"
)

func Example() {
	// 创建一个最多存储 128 条目的缓存
	cache := xlru.New[string, int](128)

	// 写入
	cache.Put("user:123", 42)

	// 读取（命中会提升新近度）
	if val, ok := cache.Get("user:123"); ok {
		fmt.Println("Found:", val)
	}

	// 删除
	cache.Remove("user:123")
	fmt.Println("Length:", cache.Len())

	// Output:
	// Found: 42
	// Length: 0
}

func Example_eviction() {
	// 容量 3：写入第 4 个新键时淘汰最久未访问的条目
	cache := xlru.New(3, xlru.WithOnEvicted(func(key string, value int) {
		fmt.Printf("Evicted: %s=%d\n", key, value)
	}))

	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("c", 3)
	cache.Get("a") // a 被提升，b 成为最久未访问
	cache.Put("d", 4)

	fmt.Println("Keys:", cache.Keys())

	// Output:
	// Evicted: b=2
	// Keys: [d a c]
}

func ExampleCache_Clone() {
	cache := xlru.New[string, string](8)
	cache.Put("k1", "v1")
	cache.Put("k2", "v2")

	dup := cache.Clone()
	cache.Remove("k1")

	_, inOriginal := cache.Peek("k1")
	_, inClone := dup.Peek("k1")
	fmt.Println(inOriginal, inClone)

	// Output:
	// false true
}

func ExampleCache_PutOrRemove() {
	cache := xlru.New[string, int](8)

	v := 7
	cache.PutOrRemove("k", &v) // 等价于 Put
	fmt.Println(cache.Contains("k"))

	cache.PutOrRemove("k", nil) // 等价于 Remove
	fmt.Println(cache.Contains("k"))

	// Output:
	// true
	// false
}
