package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryStoreSetGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "audio:abc", "https://cdn.example.com/msg.mp3", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := s.Get(ctx, "audio:abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "https://cdn.example.com/msg.mp3" {
		t.Errorf("unexpected value %q", v)
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	current := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	if err := s.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, "k"); err != nil {
		t.Fatalf("expected live entry, got %v", err)
	}

	current = current.Add(2 * time.Minute)
	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected expired entry, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_ = s.Set(ctx, "k", "v", 0)
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("deleting absent key should not fail: %v", err)
	}
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client), mr
}

func TestRedisStoreSetGet(t *testing.T) {
	s, _ := newRedisStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "lang:visitor1", "es", time.Hour); err != nil {
		t.Fatal(err)
	}
	v, err := s.Get(ctx, "lang:visitor1")
	if err != nil {
		t.Fatal(err)
	}
	if v != "es" {
		t.Errorf("expected es, got %q", v)
	}
}

func TestRedisStoreMissing(t *testing.T) {
	s, _ := newRedisStore(t)
	if _, err := s.Get(context.Background(), "absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisStoreExpiry(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestRedisStoreDelete(t *testing.T) {
	s, _ := newRedisStore(t)
	ctx := context.Background()

	_ = s.Set(ctx, "k", "v", 0)
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
