package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache()

	c.Set("key", []byte("value"), time.Minute)

	got, found := c.Get("key")
	if !found {
		t.Fatal("Expected key to be found")
	}
	if string(got) != "value" {
		t.Errorf("Expected value, got %s", got)
	}
}

func TestCacheMiss(t *testing.T) {
	c := NewCache()

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache()

	c.Set("key", []byte("value"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, found := c.Get("key"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestCacheDelete(t *testing.T) {
	c := NewCache()

	c.Set("key", []byte("value"), time.Minute)
	c.Delete("key")

	if _, found := c.Get("key"); found {
		t.Error("Expected deleted key to miss")
	}
}
