package cache_test

import (
	"testing"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/infra/cache"
)

func TestCache_SetAndGet(t *testing.T) {
	c := cache.New[string](5 * time.Minute)

	c.Set("key1", "value1")
	val, ok := c.Get("key1")
	if !ok {
		t.Fatal("expected key to exist")
	}
	if val != "value1" {
		t.Errorf("expected 'value1', got '%s'", val)
	}
}

func TestCache_GetMiss(t *testing.T) {
	c := cache.New[string](5 * time.Minute)

	_, ok := c.Get("nonexistent")
	if ok {
		t.Fatal("expected cache miss for nonexistent key")
	}
}

func TestCache_Expiration(t *testing.T) {
	c := cache.New[string](50 * time.Millisecond)

	c.Set("key1", "value1")
	time.Sleep(100 * time.Millisecond)

	_, ok := c.Get("key1")
	if ok {
		t.Fatal("expected cache entry to be expired")
	}
}

func TestCache_SetTTLOverridesDefault(t *testing.T) {
	c := cache.New[string](5 * time.Minute)

	c.SetTTL("short", "v", 50*time.Millisecond)
	if _, ok := c.Get("short"); !ok {
		t.Fatal("expected entry before TTL")
	}

	time.Sleep(100 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Fatal("expected entry to expire after explicit TTL")
	}
}

func TestCache_Delete(t *testing.T) {
	c := cache.New[string](5 * time.Minute)

	c.Set("key1", "value1")
	c.Delete("key1")

	_, ok := c.Get("key1")
	if ok {
		t.Fatal("expected key to be deleted")
	}
}

func TestCache_Len(t *testing.T) {
	c := cache.New[int](5 * time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.SetTTL("expired", 3, -time.Second)

	if got := c.Len(); got != 2 {
		t.Errorf("expected 2 live entries, got %d", got)
	}
}
