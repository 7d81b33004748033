package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	c, err := OpenRedis(s.Addr(), 1)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 1 {
		t.Fatalf("client DB = %d, want 1", got)
	}

	// The middleware stores idempotency entries with a TTL; make sure a
	// basic SET/GET round-trip works through the opened client.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Set(ctx, "idemp:ax:probe", "{}", time.Minute).Err(); err != nil {
		t.Fatalf("SET: %v", err)
	}
	got, err := c.Get(ctx, "idemp:ax:probe").Result()
	if err != nil || got != "{}" {
		t.Fatalf("GET = (%q, %v)", got, err)
	}
}

func TestOpenRedis_Unreachable(t *testing.T) {
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected connection error")
	}
}
