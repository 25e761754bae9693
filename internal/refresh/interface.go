package refresh

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// RefreshOne looks up the current market price for one item and persists
	// the recomputed valuation. On lookup failure the stored price is left
	// unchanged and ErrPriceUnavailable is returned.
	RefreshOne(ctx context.Context, id int64) (RefreshOneOutput, error)

	// RefreshAll starts a bulk run over every item in ascending id order and
	// returns its progress channel. The channel receives one event per record
	// and is closed when the run finishes or ctx is cancelled. Only one run
	// may be active at a time; ErrRefreshRunning is returned otherwise.
	RefreshAll(ctx context.Context) (<-chan Progress, error)

	// Status reports the run state and the last completed run summary.
	Status(ctx context.Context) (StatusOutput, error)
}
