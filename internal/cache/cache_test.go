package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

// oneShard sends every key to shard 0 so eviction order is observable.
func oneShard(string) uint64 { return 0 }

func TestNew(t *testing.T) {
	c := New[string, int](0, StringHasher)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", c.Capacity(), DefaultCapacity)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestGetSet(t *testing.T) {
	c := New[string, int](10, StringHasher)
	c.Set("a", 1)
	c.Set("a", 2)

	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) found a value")
	}
	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Len != 1 {
		t.Errorf("Stats() = %+v", st)
	}
	if !c.Delete("a") || c.Delete("a") {
		t.Error("Delete() did not report presence correctly")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3, oneShard)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Get("a") // b is now the oldest
	c.Set("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("b survived eviction")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s was evicted", k)
		}
	}
	if st := c.Stats(); st.Evictions != 1 || st.Len != 3 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestGetOrLoad(t *testing.T) {
	c := New[string, string](4, StringHasher)
	calls := 0
	load := func() (string, error) {
		calls++
		return "v", nil
	}
	for range 3 {
		v, err := c.GetOrLoad("k", load)
		if err != nil || v != "v" {
			t.Fatalf("GetOrLoad() = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}

	errBoom := errors.New("boom")
	for range 2 {
		if _, err := c.GetOrLoad("bad", func() (string, error) {
			calls++
			return "", errBoom
		}); !errors.Is(err, errBoom) {
			t.Errorf("GetOrLoad() error = %v, want boom", err)
		}
	}
	if calls != 3 {
		t.Errorf("failed loads were cached: calls = %d, want 3", calls)
	}
}

func TestConcurrent(t *testing.T) {
	c := New[string, int](16, StringHasher)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := strconv.Itoa((g*31 + i) % 50)
				_, _ = c.GetOrLoad(k, func() (int, error) { return i, nil })
				c.Get(k)
			}
		}()
	}
	wg.Wait()
	if n := c.Len(); n > 16*ShardCount {
		t.Errorf("Len() = %d exceeds total capacity", n)
	}
}
