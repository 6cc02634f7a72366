package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/fxcore/internal/apperrors"
	"github.com/SscSPs/fxcore/internal/core/domain"
	"github.com/SscSPs/fxcore/internal/core/ports"
	"github.com/SscSPs/fxcore/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// ProviderChain runs the deterministic failover loop over the registered
// rate providers. Providers are sorted ascending by priority once, at
// construction; every fetch walks the same order.
type ProviderChain struct {
	providers           []ports.RateProvider
	availabilityTimeout time.Duration
	fetchTimeout        time.Duration
	rateTTL             time.Duration
	logger              *slog.Logger
	metrics             *metrics.ConversionMetrics
}

// NewProviderChain creates the failover chain. The caller registers only
// providers whose credentials are configured; the static fallback should
// always be among them.
func NewProviderChain(
	providers []ports.RateProvider,
	availabilityTimeout, fetchTimeout, rateTTL time.Duration,
	logger *slog.Logger,
	m *metrics.ConversionMetrics,
) *ProviderChain {
	sorted := make([]ports.RateProvider, len(providers))
	copy(sorted, providers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})

	return &ProviderChain{
		providers:           sorted,
		availabilityTimeout: availabilityTimeout,
		fetchTimeout:        fetchTimeout,
		rateTTL:             rateTTL,
		logger:              logger,
		metrics:             m,
	}
}

// Providers returns the chain in failover order, for diagnostics.
func (c *ProviderChain) Providers() []ports.RateProvider {
	return c.providers
}

// FetchRate walks the chain in priority order: probe availability, attempt
// the fetch, move on to the next provider on any failure. The returned
// snapshot is tagged with the winning provider's name. Fails with
// ErrNoProviderAvailable only when every provider, fallback included, failed.
func (c *ProviderChain) FetchRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	for depth, provider := range c.providers {
		availCtx, cancelAvail := context.WithTimeout(ctx, c.availabilityTimeout)
		available := provider.IsAvailable(availCtx)
		cancelAvail()
		if !available {
			c.metrics.ProviderFailureTotal.WithLabelValues(provider.Name(), "unavailable").Inc()
			c.logger.Warn("Rate provider unavailable, failing over",
				slog.String("provider", provider.Name()))
			continue
		}

		fetchCtx, cancelFetch := context.WithTimeout(ctx, c.fetchTimeout)
		rate, err := provider.GetRate(fetchCtx, from, to)
		cancelFetch()
		if err != nil {
			c.metrics.ProviderFetchTotal.WithLabelValues(provider.Name(), "failure").Inc()
			c.metrics.ProviderFailureTotal.WithLabelValues(provider.Name(), "fetch").Inc()
			c.logger.Warn("Rate provider fetch failed, failing over",
				slog.String("provider", provider.Name()),
				slog.String("from", from),
				slog.String("to", to),
				slog.String("error", err.Error()))
			continue
		}
		if !rate.IsPositive() {
			c.metrics.ProviderFetchTotal.WithLabelValues(provider.Name(), "failure").Inc()
			c.metrics.ProviderFailureTotal.WithLabelValues(provider.Name(), "invalid_rate").Inc()
			c.logger.Warn("Rate provider returned non-positive rate, failing over",
				slog.String("provider", provider.Name()),
				slog.String("from", from),
				slog.String("to", to))
			continue
		}

		c.metrics.ProviderFetchTotal.WithLabelValues(provider.Name(), "success").Inc()
		c.metrics.FailoverDepth.Observe(float64(depth + 1))

		return &domain.ExchangeRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             rate,
			Source:           provider.Name(),
			FetchedAt:        time.Now(),
			TTL:              c.rateTTL,
		}, nil
	}

	return nil, fmt.Errorf("%w: %s->%s", apperrors.ErrNoProviderAvailable, from, to)
}

// FetchAllRates walks the chain the same way for an all-rates fetch,
// returning the winning provider's name alongside the table.
func (c *ProviderChain) FetchAllRates(ctx context.Context, base string) (map[string]decimal.Decimal, string, error) {
	for depth, provider := range c.providers {
		availCtx, cancelAvail := context.WithTimeout(ctx, c.availabilityTimeout)
		available := provider.IsAvailable(availCtx)
		cancelAvail()
		if !available {
			c.metrics.ProviderFailureTotal.WithLabelValues(provider.Name(), "unavailable").Inc()
			continue
		}

		fetchCtx, cancelFetch := context.WithTimeout(ctx, c.fetchTimeout)
		rates, err := provider.GetAllRates(fetchCtx, base)
		cancelFetch()
		if err != nil {
			c.metrics.ProviderFetchTotal.WithLabelValues(provider.Name(), "failure").Inc()
			c.metrics.ProviderFailureTotal.WithLabelValues(provider.Name(), "fetch").Inc()
			c.logger.Warn("Rate provider all-rates fetch failed, failing over",
				slog.String("provider", provider.Name()),
				slog.String("base", base),
				slog.String("error", err.Error()))
			continue
		}

		c.metrics.ProviderFetchTotal.WithLabelValues(provider.Name(), "success").Inc()
		c.metrics.FailoverDepth.Observe(float64(depth + 1))
		return rates, provider.Name(), nil
	}

	return nil, "", fmt.Errorf("%w: all rates for base %s", apperrors.ErrNoProviderAvailable, base)
}
