package tokencache

import (
	"testing"
	"time"
)

// fixedClock lets tests advance time without sleeping.
type fixedClock struct {
	t time.Time
}

func (f *fixedClock) Now() time.Time          { return f.t }
func (f *fixedClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(ttl time.Duration) (*Cache, *fixedClock) {
	clock := &fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := New(ttl)
	c.now = clock.Now
	return c, clock
}

func TestCacheSetGet(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	c.Set("qwant_token", "abc")
	v, ok := c.Get("qwant_token")
	if !ok || v != "abc" {
		t.Fatalf("Get = %q/%v, want abc/true", v, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) = found, want miss")
	}
}

func TestCacheExpiry(t *testing.T) {
	c, clock := newTestCache(time.Minute)

	c.Set("k", "v")
	clock.Advance(59 * time.Second)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry expired before its TTL")
	}

	clock.Advance(2 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry survived past its TTL")
	}
	// Lazy eviction removed the entry on access.
	if c.Len() != 0 {
		t.Errorf("Len = %d after expired access, want 0", c.Len())
	}
}

func TestCacheSetRefreshesTTL(t *testing.T) {
	c, clock := newTestCache(time.Minute)

	c.Set("k", "v1")
	clock.Advance(50 * time.Second)
	c.Set("k", "v2")
	clock.Advance(50 * time.Second)

	v, ok := c.Get("k")
	if !ok || v != "v2" {
		t.Errorf("Get = %q/%v, want refreshed v2/true", v, ok)
	}
}

func TestCachePurge(t *testing.T) {
	c, clock := newTestCache(time.Minute)

	c.Set("old", "v")
	clock.Advance(2 * time.Minute)
	c.Set("fresh", "v")

	c.Purge()
	if c.Len() != 1 {
		t.Errorf("Len = %d after purge, want 1", c.Len())
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("purge removed a live entry")
	}
}

func TestNewDefaultTTL(t *testing.T) {
	c := New(0)
	if c.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want DefaultTTL", c.ttl)
	}
}
