package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider is one external source of exchange rates. Implementations are
// registered with a static priority; the chain tries them in ascending
// priority order until one succeeds.
type RateProvider interface {
	// Name identifies the provider in cache rows and audit output.
	Name() string

	// Priority orders the provider within the failover chain; lower values
	// are tried first. The static fallback carries the highest value so it
	// is always tried last.
	Priority() int

	// IsAvailable is a lightweight, time-bounded liveness probe. It never
	// returns an error; any network failure maps to false.
	IsAvailable(ctx context.Context) bool

	// GetRate fetches a single pairwise rate. Fails with a
	// provider-failure error on non-2xx response, timeout, or malformed
	// payload.
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)

	// GetAllRates fetches every known rate relative to a base currency.
	GetAllRates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}
