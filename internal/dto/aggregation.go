package dto

import (
	"time"

	"github.com/SscSPs/fxcore/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregateItem is one line item in an aggregation request.
type AggregateItem struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,currencycode"`
}

// AggregateRequest defines the payload for a dashboard aggregation call.
type AggregateRequest struct {
	Items           []AggregateItem `json:"items" binding:"required,min=1,dive"`
	PrimaryCurrency string          `json:"primaryCurrency" binding:"required,len=3,currencycode"`
}

// ToAggregationItems maps the DTO items onto domain items.
func (r AggregateRequest) ToAggregationItems() []domain.AggregationItem {
	items := make([]domain.AggregationItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.AggregationItem{
			Amount:       item.Amount,
			CurrencyCode: item.CurrencyCode,
		}
	}
	return items
}

// CurrencyBreakdownResponse is the per-currency slice of an aggregation
// response.
type CurrencyBreakdownResponse struct {
	CurrencyCode    string          `json:"currencyCode"`
	ItemCount       int             `json:"itemCount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Rate            decimal.Decimal `json:"rate"`
	RateSource      string          `json:"rateSource"`
	RateFetchedAt   time.Time       `json:"rateFetchedAt"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Formatted       string          `json:"formatted"`
}

// AggregateResponse defines the API shape of an aggregation summary.
type AggregateResponse struct {
	PrimaryCurrency string                      `json:"primaryCurrency"`
	Total           decimal.Decimal             `json:"total"`
	FormattedTotal  string                      `json:"formattedTotal"`
	Breakdown       []CurrencyBreakdownResponse `json:"breakdown"`
}

// ToAggregateResponse converts a domain.AggregationSummary to its API shape.
func ToAggregateResponse(summary *domain.AggregationSummary) AggregateResponse {
	breakdown := make([]CurrencyBreakdownResponse, len(summary.Breakdown))
	for i, b := range summary.Breakdown {
		breakdown[i] = CurrencyBreakdownResponse{
			CurrencyCode:    b.CurrencyCode,
			ItemCount:       b.ItemCount,
			Subtotal:        b.Subtotal,
			Rate:            b.Rate,
			RateSource:      b.RateSource,
			RateFetchedAt:   b.RateFetchedAt,
			ConvertedAmount: b.ConvertedAmount,
			Formatted:       b.Formatted,
		}
	}
	return AggregateResponse{
		PrimaryCurrency: summary.PrimaryCurrency,
		Total:           summary.Total,
		FormattedTotal:  summary.FormattedTotal,
		Breakdown:       breakdown,
	}
}
