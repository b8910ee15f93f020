package idempotency

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreClaimsOnce(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	seen, err := s.Seen(ctx, "order-1")
	if err != nil || seen {
		t.Fatalf("first claim: seen=%v err=%v", seen, err)
	}
	seen, _ = s.Seen(ctx, "order-1")
	if !seen {
		t.Fatal("second claim should be seen")
	}
	seen, _ = s.Seen(ctx, "order-2")
	if seen {
		t.Fatal("other key should be fresh")
	}
}

func TestMemoryStoreExpires(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }
	ctx := context.Background()

	_, _ = s.Seen(ctx, "k")
	at = at.Add(2 * time.Minute)
	if seen, _ := s.Seen(ctx, "k"); seen {
		t.Fatal("expired key should be claimable again")
	}
}

func TestMemoryStoreRelease(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	_, _ = s.Seen(ctx, "k1")
	if err := s.Release(ctx, "k1"); err != nil {
		t.Fatal(err)
	}
	if seen, _ := s.Seen(ctx, "k1"); seen {
		t.Fatal("released key should be claimable again")
	}
	if err := s.Release(ctx, "missing"); err != nil {
		t.Fatalf("releasing an unknown key: %v", err)
	}
}
