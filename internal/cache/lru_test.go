package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestLRUCache_GetSet(t *testing.T) {
	c := NewLRUCache[string](10, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() on empty cache should miss")
	}

	c.Set("a", "alpha")
	if v, ok := c.Get("a"); !ok || v != "alpha" {
		t.Errorf("Get(a) = %v, %v; want alpha, true", v, ok)
	}

	c.Set("a", "updated")
	if v, _ := c.Get("a"); v != "updated" {
		t.Errorf("Get(a) after overwrite = %v, want updated", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after overwrite", c.Len())
	}
}

func TestLRUCache_Eviction(t *testing.T) {
	c := NewLRUCache[int](3, time.Minute)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}

	// Touch k0 so k1 becomes the eviction candidate.
	c.Get("k0")
	c.Set("k3", 3)

	if _, ok := c.Get("k1"); ok {
		t.Error("k1 should have been evicted as least recently used")
	}
	for _, key := range []string{"k0", "k2", "k3"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("%s should still be cached", key)
		}
	}
}

func TestLRUCache_Expiry(t *testing.T) {
	c := NewLRUCache[int](10, 10*time.Millisecond)

	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Error("expired entry should not be returned")
	}

	c.Set("b", 2)
	time.Sleep(20 * time.Millisecond)
	if cleaned := c.CleanExpired(); cleaned != 1 {
		t.Errorf("CleanExpired() = %d, want 1", cleaned)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after cleanup", c.Len())
	}
}

func TestLRUCache_Delete(t *testing.T) {
	c := NewLRUCache[int](10, time.Minute)

	c.Set("a", 1)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry should not be returned")
	}

	// Deleting a missing key is a no-op.
	c.Delete("missing")
}
