package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fxcore/internal/core/domain"
)

// RateStoreReader defines read operations over persisted rate snapshots.
type RateStoreReader interface {
	// FindFreshRate retrieves the newest snapshot for the pair no older
	// than maxAge. Returns apperrors.ErrNotFound when nothing qualifies.
	FindFreshRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string, maxAge time.Duration) (*domain.ExchangeRate, error)
}

// RateStoreWriter defines write operations over persisted rate snapshots.
type RateStoreWriter interface {
	// SaveRate persists a new snapshot. Snapshots are insert-only; a newer
	// fetch supersedes rather than updates.
	SaveRate(ctx context.Context, rate domain.ExchangeRate) error

	// DeleteOlderThan removes snapshots fetched before cutoff and reports
	// how many rows were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// RateStoreFacade combines all rate-store operations for clients that need
// the full surface.
type RateStoreFacade interface {
	RateStoreReader
	RateStoreWriter
}
