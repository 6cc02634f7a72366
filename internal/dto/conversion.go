package dto

import (
	"time"

	"github.com/SscSPs/fxcore/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest defines the payload for a conversion call.
type ConvertRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	EnteredCurrency string          `json:"enteredCurrency" binding:"required,len=3,currencycode"`
	AccountCurrency string          `json:"accountCurrency" binding:"required,len=3,currencycode"`
	PrimaryCurrency string          `json:"primaryCurrency" binding:"required,len=3,currencycode"`
	IncludeFees     bool            `json:"includeFees"`
	FeePercentage   decimal.Decimal `json:"feePercentage"`
	AuditContext    string          `json:"auditContext"`
}

// ToConversionRequest maps the DTO onto the domain request.
func (r ConvertRequest) ToConversionRequest() domain.ConversionRequest {
	return domain.ConversionRequest{
		Amount:          r.Amount,
		EnteredCurrency: r.EnteredCurrency,
		AccountCurrency: r.AccountCurrency,
		PrimaryCurrency: r.PrimaryCurrency,
		IncludeFees:     r.IncludeFees,
		FeePercentage:   r.FeePercentage,
		AuditContext:    r.AuditContext,
	}
}

// ConvertResponse defines the API shape of a conversion result.
type ConvertResponse struct {
	EnteredAmount    decimal.Decimal `json:"enteredAmount"`
	EnteredCurrency  string          `json:"enteredCurrency"`
	EnteredFormatted string          `json:"enteredFormatted"`

	AccountAmount    decimal.Decimal `json:"accountAmount"`
	AccountCurrency  string          `json:"accountCurrency"`
	AccountFormatted string          `json:"accountFormatted"`

	PrimaryAmount    decimal.Decimal `json:"primaryAmount"`
	PrimaryCurrency  string          `json:"primaryCurrency"`
	PrimaryFormatted string          `json:"primaryFormatted"`

	Rate             decimal.Decimal `json:"rate"`
	ConversionSource string          `json:"conversionSource"`
	RateFetchedAt    time.Time       `json:"rateFetchedAt"`
	ConversionCase   string          `json:"conversionCase"`

	Fee       decimal.Decimal `json:"fee"`
	TotalCost decimal.Decimal `json:"totalCost"`

	AuditID string `json:"auditId"`
}

// ToConvertResponse converts a domain.ConversionResult to ConvertResponse.
func ToConvertResponse(res *domain.ConversionResult) ConvertResponse {
	return ConvertResponse{
		EnteredAmount:    res.EnteredAmount,
		EnteredCurrency:  res.EnteredCurrency,
		EnteredFormatted: res.EnteredSymbol + res.EnteredAmount.String(),

		AccountAmount:    res.AccountAmount,
		AccountCurrency:  res.AccountCurrency,
		AccountFormatted: res.AccountSymbol + res.AccountAmount.String(),

		PrimaryAmount:    res.PrimaryAmount,
		PrimaryCurrency:  res.PrimaryCurrency,
		PrimaryFormatted: res.PrimarySymbol + res.PrimaryAmount.String(),

		Rate:             res.Rate,
		ConversionSource: res.ConversionSource,
		RateFetchedAt:    res.RateFetchedAt,
		ConversionCase:   string(res.ConversionCase),

		Fee:       res.Fee,
		TotalCost: res.TotalCost,

		AuditID: res.AuditID,
	}
}
