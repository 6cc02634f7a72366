package dto

import (
	"time"

	"github.com/SscSPs/fxcore/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse defines the API shape of one rate snapshot.
type ExchangeRateResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	Source           string          `json:"source"`
	FetchedAt        time.Time       `json:"fetchedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its API shape.
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		Source:           rate.Source,
		FetchedAt:        rate.FetchedAt,
	}
}
