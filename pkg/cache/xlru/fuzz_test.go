package xlru

import (
	"fmt"
	"reflect"
	"slices"
	"testing"
)

// lruModel 是用于差分测试的朴素参照实现：切片维护新近度顺序（最新在前），
// map 维护键值。语义与 Cache 完全一致，包括头部条目不更新值的快速路径。
type lruModel struct {
	order    []string
	vals     map[string]int
	capacity int
}

func newModel(capacity int) *lruModel {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return &lruModel{vals: make(map[string]int), capacity: capacity}
}

func (m *lruModel) get(key string) (int, bool) {
	if _, ok := m.vals[key]; !ok {
		return 0, false
	}
	m.touch(key)
	return m.vals[key], true
}

func (m *lruModel) put(key string, value int) {
	if len(m.order) > 0 && m.order[0] == key {
		return
	}
	if _, ok := m.vals[key]; ok {
		m.vals[key] = value
		m.touch(key)
		return
	}
	if len(m.order) == m.capacity {
		last := m.order[len(m.order)-1]
		m.order = m.order[:len(m.order)-1]
		delete(m.vals, last)
	}
	m.order = append([]string{key}, m.order...)
	m.vals[key] = value
}

func (m *lruModel) remove(key string) {
	if _, ok := m.vals[key]; !ok {
		return
	}
	delete(m.vals, key)
	i := slices.Index(m.order, key)
	m.order = append(m.order[:i], m.order[i+1:]...)
}

func (m *lruModel) touch(key string) {
	i := slices.Index(m.order, key)
	m.order = append(m.order[:i], m.order[i+1:]...)
	m.order = append([]string{key}, m.order...)
}

// FuzzOps 把字节序列解码为操作脚本，在 Cache 和参照实现上同步执行，
// 每一步都比对新近度顺序、键值内容并做结构校验。
func FuzzOps(f *testing.F) {
	f.Add([]byte{0, 1, 0, 2, 0, 3, 1, 1, 0, 4})
	f.Add([]byte{0, 0, 2, 0, 0, 0, 3, 0})
	f.Add([]byte{0, 1, 0, 1, 0, 1, 1, 9, 2, 9})
	f.Add([]byte{4, 0, 0, 5, 3, 5, 4, 5})

	f.Fuzz(func(t *testing.T, script []byte) {
		c := New[string, int](4)
		m := newModel(4)

		for i := 0; i+1 < len(script); i += 2 {
			op := script[i] % 5
			key := fmt.Sprintf("k%d", script[i+1]%8)
			value := int(script[i+1])

			switch op {
			case 0:
				c.Put(key, value)
				m.put(key, value)
			case 1:
				gotVal, gotOK := c.Get(key)
				wantVal, wantOK := m.get(key)
				if gotOK != wantOK || gotVal != wantVal {
					t.Fatalf("step %d: Get(%s) = (%d, %v), model says (%d, %v)", i, key, gotVal, gotOK, wantVal, wantOK)
				}
			case 2:
				c.Remove(key)
				m.remove(key)
			case 3:
				c.PutOrRemove(key, nil)
				m.remove(key)
			case 4:
				c.PutOrRemove(key, &value)
				m.put(key, value)
			}

			if err := c.Validate(); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
			wantOrder := m.order
			if wantOrder == nil {
				wantOrder = []string{}
			}
			if gotOrder := c.Keys(); !reflect.DeepEqual(gotOrder, wantOrder) && !(len(gotOrder) == 0 && len(wantOrder) == 0) {
				t.Fatalf("step %d: Keys() = %v, model order %v", i, gotOrder, wantOrder)
			}
			for k, want := range m.vals {
				if got, ok := c.Peek(k); !ok || got != want {
					t.Fatalf("step %d: Peek(%s) = (%d, %v), model value %d", i, k, got, ok, want)
				}
			}
		}
	})
}

func FuzzNew(f *testing.F) {
	f.Add(1)
	f.Add(0)
	f.Add(-1)
	f.Add(1024)

	f.Fuzz(func(t *testing.T, capacity int) {
		c := New[string, int](capacity)
		if c.Cap() < minCapacity {
			t.Fatalf("Cap() = %d, below minimum", c.Cap())
		}
		// 基本操作不应 panic
		c.Put("k", 1)
		c.Get("k")
		c.Peek("k")
		c.Contains("k")
		c.Keys()
		c.Remove("k")
		c.Clear()
		if err := c.Validate(); err != nil {
			t.Fatal(err)
		}
	})
}
