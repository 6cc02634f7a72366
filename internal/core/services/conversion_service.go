package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fxcore/internal/apperrors"
	"github.com/SscSPs/fxcore/internal/core/domain"
	portssvc "github.com/SscSPs/fxcore/internal/core/ports/services"
	"github.com/SscSPs/fxcore/internal/currencies"
	"github.com/SscSPs/fxcore/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// ConversionService is the conversion engine: it validates requests against
// the restricted-currency policy, resolves rates through the cache and the
// provider chain, computes amounts and fees at working precision, and emits
// an auditable result.
type ConversionService struct {
	cache   portssvc.RateCacheSvc
	chain   *ProviderChain
	logger  *slog.Logger
	metrics *metrics.ConversionMetrics
	now     func() time.Time
}

// NewConversionService creates a new ConversionService.
func NewConversionService(
	cache portssvc.RateCacheSvc,
	chain *ProviderChain,
	logger *slog.Logger,
	m *metrics.ConversionMetrics,
) *ConversionService {
	return &ConversionService{
		cache:   cache,
		chain:   chain,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// Convert runs one full conversion per the engine contract: the restricted
// check runs before any cache or network access; same-currency legs use the
// identity rate and touch neither; the account and primary legs are two
// independent rate lookups, never a chained multiplication.
func (s *ConversionService) Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error) {
	started := s.now()

	entered := currencies.Normalize(req.EnteredCurrency)
	account := currencies.Normalize(req.AccountCurrency)
	primary := currencies.Normalize(req.PrimaryCurrency)

	for _, code := range []string{entered, account, primary} {
		if len(code) != 3 {
			return nil, fmt.Errorf("%w: currency codes must be 3 letters, got %q", apperrors.ErrValidation, code)
		}
	}
	for _, code := range []string{entered, account, primary} {
		if currencies.IsRestricted(code) {
			s.metrics.RestrictedRejected.Inc()
			s.metrics.ConversionTotal.WithLabelValues(string(domain.ClassifyConversion(entered, account, primary)), "restricted").Inc()
			return nil, fmt.Errorf("%w: %s", apperrors.ErrRestrictedCurrency, code)
		}
	}

	conversionCase := domain.ClassifyConversion(entered, account, primary)

	accountRate, err := s.lookupRate(ctx, entered, account)
	if err != nil {
		s.metrics.ConversionTotal.WithLabelValues(string(conversionCase), "error").Inc()
		return nil, err
	}
	primaryRate, err := s.lookupRate(ctx, entered, primary)
	if err != nil {
		s.metrics.ConversionTotal.WithLabelValues(string(conversionCase), "error").Inc()
		return nil, err
	}

	accountAmount := roundAmount(req.Amount.Mul(accountRate.Rate), account)
	primaryAmount := roundAmount(req.Amount.Mul(primaryRate.Rate), primary)

	// Excluded fees stay the exact zero of the decimal type, not a rounded
	// zero.
	var fee decimal.Decimal
	totalCost := primaryAmount
	if req.IncludeFees {
		fee = roundAmount(primaryAmount.Mul(req.FeePercentage), primary)
		totalCost = primaryAmount.Add(fee)
	}

	result := &domain.ConversionResult{
		EnteredAmount:   roundAmount(req.Amount, entered),
		EnteredCurrency: entered,
		EnteredSymbol:   currencies.Symbol(entered),

		AccountAmount:   accountAmount,
		AccountCurrency: account,
		AccountSymbol:   currencies.Symbol(account),

		PrimaryAmount:   primaryAmount,
		PrimaryCurrency: primary,
		PrimarySymbol:   currencies.Symbol(primary),

		Rate:             primaryRate.Rate,
		ConversionSource: primaryRate.Source,
		RateFetchedAt:    primaryRate.FetchedAt,

		ConversionCase: conversionCase,

		Fee:       fee,
		TotalCost: totalCost,

		PrimaryRate: *primaryRate,
		AccountRate: *accountRate,

		AuditID: domain.NewAuditID(req.AuditContext, s.now()),
	}

	s.metrics.ConversionTotal.WithLabelValues(string(conversionCase), "success").Inc()
	s.metrics.ConversionDuration.Observe(s.now().Sub(started).Seconds())

	s.logger.Info("Conversion completed",
		slog.String("audit_id", result.AuditID),
		slog.String("case", string(conversionCase)),
		slog.String("entered", entered),
		slog.String("account", account),
		slog.String("primary", primary),
		slog.String("source", result.ConversionSource))

	return result, nil
}

// GetRate resolves a single pairwise rate. Same-currency pairs short-circuit
// to the identity rate without touching the cache or any provider;
// restricted codes are rejected before any I/O.
func (s *ConversionService) GetRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	from = currencies.Normalize(from)
	to = currencies.Normalize(to)

	for _, code := range []string{from, to} {
		if currencies.IsRestricted(code) {
			s.metrics.RestrictedRejected.Inc()
			return nil, fmt.Errorf("%w: %s", apperrors.ErrRestrictedCurrency, code)
		}
	}
	return s.lookupRate(ctx, from, to)
}

// lookupRate is the internal cache-or-fetch path. Assumes codes are
// normalized and policy-checked.
func (s *ConversionService) lookupRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	if from == to {
		rate := domain.IdentityRate(from, s.now())
		return &rate, nil
	}

	if cached, ok := s.cache.Get(ctx, from, to); ok {
		return cached, nil
	}

	fetched, err := s.chain.FetchRate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	s.cache.Put(ctx, *fetched)
	return fetched, nil
}

// FormatAmount renders symbol + amount rounded to the currency's minor-unit
// precision. Unknown codes default to precision 2 and symbol "$".
func (s *ConversionService) FormatAmount(amount decimal.Decimal, currencyCode string) string {
	precision := currencies.Precision(currencyCode)
	return currencies.Symbol(currencyCode) + amount.Round(int32(precision)).StringFixed(int32(precision))
}

// CurrencyPrecision returns the minor-unit digit count for a code.
func (s *ConversionService) CurrencyPrecision(currencyCode string) int {
	return currencies.Precision(currencyCode)
}

// IsCurrencyRestricted reports whether policy forbids converting the code.
func (s *ConversionService) IsCurrencyRestricted(currencyCode string) bool {
	return currencies.IsRestricted(currencyCode)
}

// roundAmount rounds half-up to the currency's minor-unit precision. All
// arithmetic before this point runs at working precision.
func roundAmount(amount decimal.Decimal, currencyCode string) decimal.Decimal {
	return amount.Round(int32(currencies.Precision(currencyCode)))
}
