package runutil

import (
	"math"
	"runtime"
	"sync"
	"testing"
)

func TestEffectiveThreads(t *testing.T) {
	if got := EffectiveThreads(3); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if got := EffectiveThreads(0); got != runtime.NumCPU() {
		t.Fatalf("0 → NumCPU, got %d", got)
	}
	if got := EffectiveThreads(-1); got != runtime.NumCPU() {
		t.Fatalf("-1 → NumCPU, got %d", got)
	}
}

func TestFloatKey(t *testing.T) {
	if FloatKey(math.NaN()) != FloatKey(-math.NaN()) {
		t.Fatalf("all NaNs must share a key")
	}
	if FloatKey(1.5) != FloatKey(1.5) || FloatKey(1.5) == FloatKey(1.5000000000000002) {
		t.Fatalf("FloatKey must be exact on finite values")
	}
	if FloatKey(0) == FloatKey(math.Copysign(0, -1)) {
		t.Fatalf("signed zeros are distinct inputs")
	}
}

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("get a: %v %v", v, ok)
	}
	// a is now most recent; inserting c evicts b.
	c.Put("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("a should survive")
	}
	if c.Len() != 2 {
		t.Fatalf("len = %d", c.Len())
	}
}

func TestLRU_Overwrite(t *testing.T) {
	c := NewLRU[int, string](0)
	c.Put(1, "x")
	c.Put(1, "y")
	if v, _ := c.Get(1); v != "y" || c.Len() != 1 {
		t.Fatalf("overwrite failed: %q len=%d", v, c.Len())
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU[int, int](64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				c.Put(i%128, g)
				c.Get(i % 97)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 64 {
		t.Fatalf("capacity exceeded: %d", c.Len())
	}
}
