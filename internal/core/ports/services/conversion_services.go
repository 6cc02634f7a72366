package services

import (
	"context"

	"github.com/SscSPs/fxcore/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConverterSvcFacade is the inbound surface of the conversion engine.
type ConverterSvcFacade interface {
	// Convert runs one full conversion: restricted-currency check, rate
	// acquisition with failover, amount and fee math, audit id.
	Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error)

	// GetRate resolves a single pairwise rate through the cache and, on
	// miss, the provider chain.
	GetRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error)

	// FormatAmount renders symbol + amount rounded to the currency's
	// minor-unit precision.
	FormatAmount(amount decimal.Decimal, currencyCode string) string

	// CurrencyPrecision returns the minor-unit digit count for a code.
	CurrencyPrecision(currencyCode string) int

	// IsCurrencyRestricted reports whether policy forbids converting the code.
	IsCurrencyRestricted(currencyCode string) bool
}

// AggregatorSvcFacade folds mixed-currency items into one primary-currency
// total, with one rate lookup per distinct currency.
type AggregatorSvcFacade interface {
	Aggregate(ctx context.Context, items []domain.AggregationItem, primaryCurrency string) (*domain.AggregationSummary, error)
}

// RateCacheSvc is the staleness-aware cache in front of the provider chain.
type RateCacheSvc interface {
	Get(ctx context.Context, from, to string) (*domain.ExchangeRate, bool)
	Put(ctx context.Context, rate domain.ExchangeRate)
	SweepExpired(ctx context.Context) int64
}

// ServiceContainer holds all the services constructed at startup.
type ServiceContainer struct {
	Converter  ConverterSvcFacade
	Aggregator AggregatorSvcFacade
	RateCache  RateCacheSvc
}
