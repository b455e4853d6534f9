package xlru

import (
	"fmt"
	"testing"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// =============================================================================
// 基本操作基准测试
// =============================================================================

func BenchmarkCache_Get(b *testing.B) {
	c := New[string, int](1000)
	c.Put("benchmark_key", 42)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = c.Get("benchmark_key")
	}
}

func BenchmarkCache_Get_Miss(b *testing.B) {
	c := New[string, int](1000)
	for i := range 1000 {
		c.Put(fmt.Sprintf("key_%d", i), i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = c.Get("nonexistent")
	}
}

func BenchmarkCache_Put(b *testing.B) {
	c := New[string, int](1000)
	keys := make([]string, 2000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key_%d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		c.Put(keys[i%2000], i)
	}
}

func BenchmarkCache_Put_Evicting(b *testing.B) {
	// keyspace 大于容量，持续触发淘汰
	c := New[string, int](100)
	keys := make([]string, 1000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key_%d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		c.Put(keys[i%1000], i)
	}
}

// =============================================================================
// 与其他实现的对照基准测试
// =============================================================================

func BenchmarkComparison_Get_XLRU(b *testing.B) {
	c := New[string, int](1000)
	c.Put("benchmark_key", 42)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = c.Get("benchmark_key")
	}
}

func BenchmarkComparison_Get_SimpleLRU(b *testing.B) {
	lru, err := simplelru.NewLRU[string, int](1000, nil)
	if err != nil {
		b.Fatal(err)
	}
	lru.Add("benchmark_key", 42)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = lru.Get("benchmark_key")
	}
}

func BenchmarkComparison_Get_Ristretto(b *testing.B) {
	// ristretto 是并发异步缓存，语义并不对等，仅作量级参考
	cache, err := ristretto.NewCache(&ristretto.Config[string, int]{
		NumCounters: 10000,
		MaxCost:     1000,
		BufferItems: 64,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(cache.Close)

	cache.Set("benchmark_key", 42, 1)
	cache.Wait()

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = cache.Get("benchmark_key")
	}
}

func BenchmarkComparison_Put_XLRU(b *testing.B) {
	c := New[string, int](1000)
	keys := benchKeys(2000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		c.Put(keys[i%2000], i)
	}
}

func BenchmarkComparison_Put_SimpleLRU(b *testing.B) {
	lru, err := simplelru.NewLRU[string, int](1000, nil)
	if err != nil {
		b.Fatal(err)
	}
	keys := benchKeys(2000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		lru.Add(keys[i%2000], i)
	}
}

func BenchmarkComparison_Put_Ristretto(b *testing.B) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, int]{
		NumCounters: 10000,
		MaxCost:     1000,
		BufferItems: 64,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(cache.Close)
	keys := benchKeys(2000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		cache.Set(keys[i%2000], i, 1)
	}
}

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key_%d", i)
	}
	return keys
}
