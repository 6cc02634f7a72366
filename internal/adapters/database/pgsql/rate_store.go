package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fxcore/internal/apperrors"
	"github.com/SscSPs/fxcore/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateStore implements the repositories.RateStoreFacade interface using
// pgxpool. Rate rows are insert-only snapshots keyed by
// (from_currency_code, to_currency_code, fetched_at); reads are always
// freshness-filtered and newest-first.
type PgxRateStore struct {
	db *pgxpool.Pool
}

// NewRateStore creates a new PgxRateStore.
func NewRateStore(db *pgxpool.Pool) *PgxRateStore {
	return &PgxRateStore{db: db}
}

// SaveRate inserts a new rate snapshot.
func (r *PgxRateStore) SaveRate(ctx context.Context, rate domain.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rate_cache (
			from_currency_code, to_currency_code, rate, source, fetched_at, ttl_seconds
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (from_currency_code, to_currency_code, fetched_at) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query,
		rate.FromCurrencyCode, rate.ToCurrencyCode, rate.Rate, rate.Source,
		rate.FetchedAt, int64(rate.TTL.Seconds()),
	)
	if err != nil {
		return fmt.Errorf("%w: inserting rate snapshot: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// FindFreshRate retrieves the newest snapshot for the pair no older than
// maxAge.
func (r *PgxRateStore) FindFreshRate(ctx context.Context, fromCode, toCode string, maxAge time.Duration) (*domain.ExchangeRate, error) {
	query := `
		SELECT from_currency_code, to_currency_code, rate, source, fetched_at, ttl_seconds
		FROM exchange_rate_cache
		WHERE from_currency_code = $1
		  AND to_currency_code = $2
		  AND fetched_at > $3
		ORDER BY fetched_at DESC
		LIMIT 1
	`
	cutoff := time.Now().Add(-maxAge)

	rate := &domain.ExchangeRate{}
	var ttlSeconds int64
	err := r.db.QueryRow(ctx, query, fromCode, toCode, cutoff).Scan(
		&rate.FromCurrencyCode, &rate.ToCurrencyCode, &rate.Rate, &rate.Source,
		&rate.FetchedAt, &ttlSeconds,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding rate snapshot: %v", apperrors.ErrPersistence, err)
	}
	rate.TTL = time.Duration(ttlSeconds) * time.Second
	return rate, nil
}

// DeleteOlderThan removes snapshots fetched before cutoff.
func (r *PgxRateStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM exchange_rate_cache WHERE fetched_at < $1`
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: sweeping rate snapshots: %v", apperrors.ErrPersistence, err)
	}
	return tag.RowsAffected(), nil
}
