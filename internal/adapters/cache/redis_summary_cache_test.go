package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *RedisSummaryCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisSummaryCache(client, time.Hour)
}

func TestRedisSummaryCacheMiss(t *testing.T) {
	c := newTestCache(t)

	payload, ok, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected miss for absent key")
	}
	if payload != nil {
		t.Fatalf("payload = %q, want nil", payload)
	}
}

func TestRedisSummaryCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	want := []byte(`{"mean_days":3.28}`)
	if err := c.Set(ctx, "digest-1", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "digest-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != string(want) {
		t.Fatalf("payload = %q, want %q", got, want)
	}
}

func TestRedisSummaryCacheEmptyKey(t *testing.T) {
	c := newTestCache(t)

	if _, _, err := c.Get(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty key on Get")
	}
	if err := c.Set(context.Background(), "", nil); err == nil {
		t.Fatal("expected error for empty key on Set")
	}
}
