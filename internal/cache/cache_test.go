package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestEntityKey(t *testing.T) {
	key := EntityKey("20260801", "Q42")
	if key != EntityKey("20260801", "Q42") {
		t.Error("key must be stable for the same inputs")
	}
	if key == EntityKey("20260715", "Q42") {
		t.Error("different dump generations must not share keys")
	}
	if key == EntityKey("20260801", "Q43") {
		t.Error("different entities must not share keys")
	}
	// The separator keeps (ab, c) and (a, bc) apart
	if EntityKey("2026", "0801Q42") == EntityKey("20260801", "Q42") {
		t.Error("date stamp and entity id must not blur together")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Hour)
	key := EntityKey("20260801", "Q42")
	value := []byte(`{"type":"item","id":"Q42"}`)

	if err := c.Set(key, value, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Drop the memory layer; the next Get must fall through to disk
	// and promote the value back.
	c.memory.Clear()

	got, found := c.Get(key)
	if !found || !bytes.Equal(got, value) {
		t.Fatalf("disk layer miss: found=%v value=%q", found, got)
	}
	if _, found := c.memory.Get(key); !found {
		t.Error("disk hit was not promoted into memory")
	}
}

func TestLayeredCache_Delete(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Hour)
	key := EntityKey("20260801", "P31")

	if err := c.Set(key, []byte("x"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("deleted key still present")
	}
}
