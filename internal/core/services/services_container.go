package services

import (
	"log/slog"

	"github.com/SscSPs/fxcore/internal/core/ports"
	portsrepo "github.com/SscSPs/fxcore/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fxcore/internal/core/ports/services"
	"github.com/SscSPs/fxcore/internal/platform/config"
	"github.com/SscSPs/fxcore/internal/platform/metrics"
)

// NewServiceContainer creates the conversion core with properly initialized
// dependencies. The container is constructed once at startup and owned by
// the composition root; there is no static mutable state.
func NewServiceContainer(
	cfg *config.Config,
	store portsrepo.RateStoreFacade,
	providers []ports.RateProvider,
	logger *slog.Logger,
	m *metrics.ConversionMetrics,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	chain := NewProviderChain(
		providers,
		cfg.AvailabilityTimeout,
		cfg.FetchTimeout,
		cfg.RateTTL,
		logger,
		m,
	)

	container.RateCache = NewRateCacheService(
		store,
		cfg.RateTTL,
		cfg.StaleThreshold,
		cfg.RetentionWindow,
		logger,
		m,
	)

	container.Converter = NewConversionService(container.RateCache, chain, logger, m)
	container.Aggregator = NewAggregationService(container.Converter, logger)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.ConverterSvcFacade  = (*ConversionService)(nil)
	_ portssvc.AggregatorSvcFacade = (*AggregationService)(nil)
	_ portssvc.RateCacheSvc        = (*RateCacheService)(nil)
)
