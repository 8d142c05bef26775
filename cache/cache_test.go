package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](4)
	if _, ok := c.Get("a"); ok {
		t.Error("unexpected hit on empty cache")
	}
	c.Set("a", 1)
	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Errorf("got (%d, %t), want (1, true)", v, ok)
	}
	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("update lost, got %d", v)
	}
	if c.Len() != 1 {
		t.Errorf("len %d, want 1", c.Len())
	}
}

func TestEviction(t *testing.T) {
	c := New[int, int](3)
	for i := 0; i < 3; i++ {
		c.Set(i, i)
	}
	// touch 0 so 1 becomes the eviction candidate
	c.Get(0)
	c.Set(3, 3)
	if c.Len() != 3 {
		t.Fatalf("len %d, want 3", c.Len())
	}
	if _, ok := c.Get(1); ok {
		t.Error("expected 1 to be evicted")
	}
	for _, k := range []int{0, 2, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected %d to survive", k)
		}
	}
	if st := c.Stats(); st.Evicts != 1 {
		t.Errorf("evicts %d, want 1", st.Evicts)
	}
}

func TestConcurrent(t *testing.T) {
	c := New[string, int](64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				k := fmt.Sprintf("k%d", i%100)
				if v, ok := c.Get(k); ok && v != i%100 {
					t.Errorf("got %d for %s", v, k)
				}
				c.Set(k, i%100)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 64 {
		t.Errorf("len %d exceeds capacity", c.Len())
	}
}

func TestDefaultCapacity(t *testing.T) {
	c := New[string, string](0)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("capacity %d, want %d", c.Capacity(), DefaultCapacity)
	}
}
