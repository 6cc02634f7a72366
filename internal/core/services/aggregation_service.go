package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fxcore/internal/apperrors"
	"github.com/SscSPs/fxcore/internal/core/domain"
	portssvc "github.com/SscSPs/fxcore/internal/core/ports/services"
	"github.com/SscSPs/fxcore/internal/currencies"
	"github.com/shopspring/decimal"
)

// AggregationService folds mixed-currency line items into one
// primary-currency total. Items are grouped by currency code and the engine
// is consulted exactly once per distinct non-primary currency, so rate
// lookups scale with the number of currencies present, not the number of
// items.
type AggregationService struct {
	converter portssvc.ConverterSvcFacade
	logger    *slog.Logger
}

// NewAggregationService creates a new AggregationService.
func NewAggregationService(converter portssvc.ConverterSvcFacade, logger *slog.Logger) *AggregationService {
	return &AggregationService{converter: converter, logger: logger}
}

// Aggregate groups the items by currency, obtains one rate per group, and
// returns the scaled per-currency breakdown with a grand total.
func (s *AggregationService) Aggregate(ctx context.Context, items []domain.AggregationItem, primaryCurrency string) (*domain.AggregationSummary, error) {
	primary := currencies.Normalize(primaryCurrency)
	if len(primary) != 3 {
		return nil, fmt.Errorf("%w: primary currency must be 3 letters, got %q", apperrors.ErrValidation, primaryCurrency)
	}
	if currencies.IsRestricted(primary) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRestrictedCurrency, primary)
	}

	// Group subtotals, preserving first-appearance order for stable output.
	type group struct {
		subtotal decimal.Decimal
		count    int
	}
	groups := make(map[string]*group)
	order := make([]string, 0)
	for _, item := range items {
		code := currencies.Normalize(item.CurrencyCode)
		if len(code) != 3 {
			return nil, fmt.Errorf("%w: item currency must be 3 letters, got %q", apperrors.ErrValidation, item.CurrencyCode)
		}
		g, ok := groups[code]
		if !ok {
			g = &group{}
			groups[code] = g
			order = append(order, code)
		}
		g.subtotal = g.subtotal.Add(item.Amount)
		g.count++
	}

	summary := &domain.AggregationSummary{
		PrimaryCurrency: primary,
		Breakdown:       make([]domain.CurrencyBreakdown, 0, len(order)),
	}

	total := decimal.Decimal{}
	for _, code := range order {
		g := groups[code]

		rate, err := s.converter.GetRate(ctx, code, primary)
		if err != nil {
			return nil, fmt.Errorf("aggregating %s into %s: %w", code, primary, err)
		}

		converted := g.subtotal.Mul(rate.Rate).Round(int32(currencies.Precision(primary)))
		total = total.Add(converted)

		summary.Breakdown = append(summary.Breakdown, domain.CurrencyBreakdown{
			CurrencyCode:    code,
			ItemCount:       g.count,
			Subtotal:        g.subtotal.Round(int32(currencies.Precision(code))),
			Rate:            rate.Rate,
			RateSource:      rate.Source,
			RateFetchedAt:   rate.FetchedAt,
			ConvertedAmount: converted,
			Formatted:       s.converter.FormatAmount(converted, primary),
		})
	}

	summary.Total = total
	summary.FormattedTotal = s.converter.FormatAmount(total, primary)

	s.logger.Info("Aggregation completed",
		slog.String("primary", primary),
		slog.Int("items", len(items)),
		slog.Int("currencies", len(order)))

	return summary, nil
}
