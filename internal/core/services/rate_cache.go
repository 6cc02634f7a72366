package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/fxcore/internal/apperrors"
	"github.com/SscSPs/fxcore/internal/core/domain"
	portsrepo "github.com/SscSPs/fxcore/internal/core/ports/repositories"
	"github.com/SscSPs/fxcore/internal/platform/metrics"
)

// RateCacheService is the staleness-aware cache in front of the provider
// chain: an in-memory map under a read-write lock, backed by a persistent
// store. Two freshness tiers apply: TTL decides whether a cached rate is
// worth serving without a refetch, the stale threshold bounds the age of
// anything served at all (including reciprocal derivations).
type RateCacheService struct {
	mu  sync.RWMutex
	mem map[string]domain.ExchangeRate

	store           portsrepo.RateStoreFacade // nil disables persistence
	ttl             time.Duration
	staleThreshold  time.Duration
	retentionWindow time.Duration

	logger  *slog.Logger
	metrics *metrics.ConversionMetrics
	now     func() time.Time
}

// NewRateCacheService creates the cache. A nil store degrades to memory-only
// operation.
func NewRateCacheService(
	store portsrepo.RateStoreFacade,
	ttl, staleThreshold, retentionWindow time.Duration,
	logger *slog.Logger,
	m *metrics.ConversionMetrics,
) *RateCacheService {
	return &RateCacheService{
		mem:             make(map[string]domain.ExchangeRate),
		store:           store,
		ttl:             ttl,
		staleThreshold:  staleThreshold,
		retentionWindow: retentionWindow,
		logger:          logger,
		metrics:         m,
		now:             time.Now,
	}
}

func pairKey(from, to string) string { return from + "->" + to }

// Get resolves a cached rate for the pair: memory first, then the persistent
// store, then reciprocal derivation from the reverse pair. Store read
// failures degrade to a miss. A reciprocal result is a read-time derivation
// and is never written back as a row of its own.
func (s *RateCacheService) Get(ctx context.Context, from, to string) (*domain.ExchangeRate, bool) {
	now := s.now()

	s.mu.RLock()
	direct, hasDirect := s.mem[pairKey(from, to)]
	reverse, hasReverse := s.mem[pairKey(to, from)]
	s.mu.RUnlock()

	if hasDirect && direct.IsFresh(now, s.ttl) {
		s.metrics.CacheHitTotal.WithLabelValues("memory").Inc()
		return &direct, true
	}

	if s.store != nil {
		stored, err := s.store.FindFreshRate(ctx, from, to, s.ttl)
		switch {
		case err == nil:
			s.mu.Lock()
			s.mem[pairKey(from, to)] = *stored
			s.mu.Unlock()
			s.metrics.CacheHitTotal.WithLabelValues("store").Inc()
			return stored, true
		case !errors.Is(err, apperrors.ErrNotFound):
			s.logger.Warn("Rate store read failed, treating as cache miss",
				slog.String("from", from),
				slog.String("to", to),
				slog.String("error", err.Error()))
		}
	}

	if hasReverse && !reverse.IsStale(now, s.staleThreshold) {
		derived := reverse.Reciprocal()
		s.metrics.CacheHitTotal.WithLabelValues("reciprocal").Inc()
		return &derived, true
	}
	if s.store != nil {
		storedReverse, err := s.store.FindFreshRate(ctx, to, from, s.staleThreshold)
		if err == nil && !storedReverse.IsStale(now, s.staleThreshold) {
			derived := storedReverse.Reciprocal()
			s.metrics.CacheHitTotal.WithLabelValues("reciprocal").Inc()
			return &derived, true
		}
	}

	s.metrics.CacheMissTotal.Inc()
	return nil, false
}

// Put stores a new snapshot in memory and the persistent store. Identity
// rates are never cached. A manual rate already in memory is not overwritten
// by an automated fetch. A store write failure is logged and dropped; the
// caller already holds a correct in-memory result.
func (s *RateCacheService) Put(ctx context.Context, rate domain.ExchangeRate) {
	if rate.FromCurrencyCode == rate.ToCurrencyCode || rate.Source == domain.SourceIdentity {
		return
	}

	key := pairKey(rate.FromCurrencyCode, rate.ToCurrencyCode)

	s.mu.Lock()
	existing, ok := s.mem[key]
	if ok && existing.Source == domain.SourceManual && rate.Source != domain.SourceManual {
		s.mu.Unlock()
		return
	}
	s.mem[key] = rate
	s.mu.Unlock()

	if s.store == nil {
		return
	}
	if err := s.store.SaveRate(ctx, rate); err != nil {
		s.logger.Warn("Rate store write failed, keeping in-memory result",
			slog.String("from", rate.FromCurrencyCode),
			slog.String("to", rate.ToCurrencyCode),
			slog.String("source", rate.Source),
			slog.String("error", err.Error()))
	}
}

// SweepExpired removes persistent rows past the retention window and purges
// stale in-memory entries. Returns the number of persistent rows removed.
func (s *RateCacheService) SweepExpired(ctx context.Context) int64 {
	now := s.now()

	s.mu.Lock()
	for key, rate := range s.mem {
		if rate.IsStale(now, s.staleThreshold) {
			delete(s.mem, key)
		}
	}
	s.mu.Unlock()

	if s.store == nil {
		return 0
	}

	removed, err := s.store.DeleteOlderThan(ctx, now.Add(-s.retentionWindow))
	if err != nil {
		s.logger.Warn("Rate store retention sweep failed",
			slog.String("error", err.Error()))
		return 0
	}
	if removed > 0 {
		s.metrics.SweepRemoved.Add(float64(removed))
		s.logger.Info("Rate store retention sweep completed",
			slog.Int64("rows_removed", removed))
	}
	return removed
}
