package usecase

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"steaminvest/internal/inventory/repository"
	"steaminvest/internal/refresh"
	"steaminvest/pkg/log"
	"steaminvest/pkg/steammarket"
)

// DefaultLookupInterval paces market lookups so the community market does not
// throttle us. One request every 3.5 seconds is what the market tolerates
// for sustained polling.
const DefaultLookupInterval = 3500 * time.Millisecond

// implUseCase is the private implementation of refresh.UseCase. The limiter
// is shared between single and bulk refreshes so the pacing holds globally.
type implUseCase struct {
	repo    repository.Repository
	prices  steammarket.PriceSource
	limiter *rate.Limiter
	l       log.Logger

	mu      sync.Mutex
	status  refresh.Status
	lastRun *refresh.RunSummary
}

// New creates a new refresh UseCase implementation. A non-positive
// lookupInterval falls back to DefaultLookupInterval.
func New(repo repository.Repository, prices steammarket.PriceSource, lookupInterval time.Duration, l log.Logger) *implUseCase {
	if lookupInterval <= 0 {
		lookupInterval = DefaultLookupInterval
	}
	return &implUseCase{
		repo:    repo,
		prices:  prices,
		limiter: rate.NewLimiter(rate.Every(lookupInterval), 1),
		l:       l,
		status:  refresh.StatusIdle,
	}
}
