package dto

import "github.com/shopspring/decimal"

// CurrencyInfoResponse describes what the core knows about one currency
// code: precision, display symbol, and whether policy restricts it.
type CurrencyInfoResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Precision    int    `json:"precision"`
	Symbol       string `json:"symbol"`
	Restricted   bool   `json:"restricted"`
}

// FormatAmountRequest defines the payload for a formatting call.
type FormatAmountRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,currencycode"`
}

// FormatAmountResponse carries the rendered amount string.
type FormatAmountResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Formatted    string `json:"formatted"`
}
