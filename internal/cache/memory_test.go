package cache

import (
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemory(time.Minute)
	defer c.Stop()

	c.Set("key", []byte("value"))

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(got) != "value" {
		t.Errorf("got %q, want value", got)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemory(time.Minute)
	defer c.Stop()

	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemory(time.Minute)
	defer c.Stop()

	c.SetWithTTL("short", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemory(time.Minute)
	defer c.Stop()

	c.Set("key", []byte("v"))
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("expected miss after delete")
	}
}

func TestMemoryCacheClear(t *testing.T) {
	c := NewMemory(time.Minute)
	defer c.Stop()

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Clear()

	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after clear")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("expected miss after clear")
	}
}

func TestMemoryCacheOverwrite(t *testing.T) {
	c := NewMemory(time.Minute)
	defer c.Stop()

	c.Set("key", []byte("old"))
	c.Set("key", []byte("new"))

	got, ok := c.Get("key")
	if !ok || string(got) != "new" {
		t.Errorf("got %q (hit=%v), want new", got, ok)
	}
}
