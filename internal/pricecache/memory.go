// Package pricecache provides caching decorators around a
// steammarket.PriceSource so repeated lookups for the same item within a
// short window do not hit the external market API again.
package pricecache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"

	"steaminvest/pkg/steammarket"
)

const (
	// DefaultTTL is how long a resolved price is reused before a fresh
	// lookup is forced.
	DefaultTTL = 5 * time.Minute

	// DefaultSize caps the number of cached item links.
	DefaultSize = 1000
)

// Memory is an in-process TTL cache decorator over a PriceSource.
type Memory struct {
	source steammarket.PriceSource
	cache  *expirable.LRU[string, decimal.Decimal]
}

// NewMemory wraps source with an expirable LRU cache. Zero ttl/size fall
// back to the package defaults.
func NewMemory(source steammarket.PriceSource, size int, ttl time.Duration) *Memory {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		source: source,
		cache:  expirable.NewLRU[string, decimal.Decimal](size, nil, ttl),
	}
}

// Lookup returns the cached price when fresh, otherwise delegates to the
// wrapped source. Failed lookups are never cached.
func (m *Memory) Lookup(ctx context.Context, itemLink string) (decimal.Decimal, error) {
	if price, ok := m.cache.Get(itemLink); ok {
		return price, nil
	}

	price, err := m.source.Lookup(ctx, itemLink)
	if err != nil {
		return decimal.Zero, err
	}

	m.cache.Add(itemLink, price)
	return price, nil
}
