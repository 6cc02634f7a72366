package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregationItem is one line item to fold into a primary-currency total.
type AggregationItem struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// CurrencyBreakdown is the per-currency slice of an aggregation: the group
// subtotal in its own currency, the single rate used for the group, and the
// converted subtotal.
type CurrencyBreakdown struct {
	CurrencyCode    string          `json:"currencyCode"`
	ItemCount       int             `json:"itemCount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Rate            decimal.Decimal `json:"rate"`
	RateSource      string          `json:"rateSource"`
	RateFetchedAt   time.Time       `json:"rateFetchedAt"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Formatted       string          `json:"formatted"`
}

// AggregationSummary is the primary-currency view of a mixed-currency set of
// items.
type AggregationSummary struct {
	PrimaryCurrency string              `json:"primaryCurrency"`
	Total           decimal.Decimal     `json:"total"`
	FormattedTotal  string              `json:"formattedTotal"`
	Breakdown       []CurrencyBreakdown `json:"breakdown"`
}
