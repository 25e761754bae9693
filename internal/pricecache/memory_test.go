package pricecache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"steaminvest/internal/pricecache"
)

type stubSource struct {
	calls int
	price decimal.Decimal
	err   error
}

func (s *stubSource) Lookup(ctx context.Context, itemLink string) (decimal.Decimal, error) {
	s.calls++
	return s.price, s.err
}

func TestMemoryLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("Caches Successful Lookups", func(t *testing.T) {
		src := &stubSource{price: decimal.NewFromFloat(4.20)}
		cache := pricecache.NewMemory(src, 10, time.Minute)

		for i := 0; i < 3; i++ {
			price, err := cache.Lookup(ctx, "link-a")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !price.Equal(src.price) {
				t.Errorf("expected %s, got %s", src.price, price)
			}
		}
		if src.calls != 1 {
			t.Errorf("expected 1 upstream call, got %d", src.calls)
		}
	})

	t.Run("Distinct Links Are Distinct Entries", func(t *testing.T) {
		src := &stubSource{price: decimal.NewFromInt(1)}
		cache := pricecache.NewMemory(src, 10, time.Minute)

		cache.Lookup(ctx, "link-a")
		cache.Lookup(ctx, "link-b")

		if src.calls != 2 {
			t.Errorf("expected 2 upstream calls, got %d", src.calls)
		}
	})

	t.Run("Failures Are Not Cached", func(t *testing.T) {
		src := &stubSource{err: errors.New("down")}
		cache := pricecache.NewMemory(src, 10, time.Minute)

		cache.Lookup(ctx, "link-a")
		cache.Lookup(ctx, "link-a")

		if src.calls != 2 {
			t.Errorf("expected failures to pass through, got %d calls", src.calls)
		}
	})
}
