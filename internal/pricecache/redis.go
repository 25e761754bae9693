package pricecache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"steaminvest/pkg/log"
	"steaminvest/pkg/steammarket"
)

const priceKeyPrefix = "price:"

// Redis is a shared TTL cache decorator over a PriceSource, for running
// several API instances against one cache. Redis failures degrade to a
// direct lookup instead of failing the request.
type Redis struct {
	source steammarket.PriceSource
	client *redis.Client
	ttl    time.Duration
	l      log.Logger
}

// NewRedis wraps source with a redis-backed cache.
func NewRedis(source steammarket.PriceSource, client *redis.Client, ttl time.Duration, l log.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{
		source: source,
		client: client,
		ttl:    ttl,
		l:      l,
	}
}

// Lookup returns the cached price when present, otherwise delegates to the
// wrapped source and stores the result.
func (r *Redis) Lookup(ctx context.Context, itemLink string) (decimal.Decimal, error) {
	key := priceKeyPrefix + itemLink

	raw, err := r.client.Get(ctx, key).Result()
	if err == nil {
		if price, perr := decimal.NewFromString(raw); perr == nil {
			return price, nil
		}
		// Unparseable cache entry, drop it and fall through.
		r.client.Del(ctx, key)
	} else if err != redis.Nil {
		r.l.Warnf(ctx, "pricecache.Redis Get %s: %v", key, err)
	}

	price, err := r.source.Lookup(ctx, itemLink)
	if err != nil {
		return decimal.Zero, err
	}

	if err := r.client.Set(ctx, key, price.String(), r.ttl).Err(); err != nil {
		r.l.Warnf(ctx, "pricecache.Redis Set %s: %v", key, err)
	}
	return price, nil
}
