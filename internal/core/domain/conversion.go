package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionCase classifies which of the three currencies on a conversion
// request (entered, account, primary) coincide. Pure function of the codes,
// no numeric dependency; carried on the result for diagnostics and so
// callers can branch on common patterns without re-deriving it.
type ConversionCase string

const (
	CaseAllSame              ConversionCase = "all_same"
	CaseEnteredEqualsAccount ConversionCase = "entered_equals_account"
	CaseEnteredEqualsPrimary ConversionCase = "entered_equals_primary"
	CaseAccountEqualsPrimary ConversionCase = "account_equals_primary"
	CaseAllDifferent         ConversionCase = "all_different"
	// CaseUnknown is a defensive catch-all; the five cases above are
	// exhaustive over the three pairwise equalities, so it should be
	// unreachable.
	CaseUnknown ConversionCase = "unknown"
)

// ClassifyConversion tags the relationship between the three currency axes.
func ClassifyConversion(entered, account, primary string) ConversionCase {
	switch {
	case entered == account && account == primary:
		return CaseAllSame
	case entered == account && account != primary:
		return CaseEnteredEqualsAccount
	case entered == primary && account != primary:
		return CaseEnteredEqualsPrimary
	case entered != account && account == primary:
		return CaseAccountEqualsPrimary
	case entered != account && account != primary && entered != primary:
		return CaseAllDifferent
	default:
		return CaseUnknown
	}
}

// ConversionRequest carries one conversion through the engine. The three
// currencies are independent axes and may pairwise coincide in any
// combination.
type ConversionRequest struct {
	Amount          decimal.Decimal
	EnteredCurrency string
	AccountCurrency string
	PrimaryCurrency string
	IncludeFees     bool
	FeePercentage   decimal.Decimal // fraction, e.g. 0.0025 for 0.25%
	AuditContext    string
}

// ConversionResult is the auditable outcome of a conversion. Monetary fields
// are rounded to each currency's minor-unit precision; the rate records keep
// full precision.
type ConversionResult struct {
	EnteredAmount   decimal.Decimal `json:"enteredAmount"`
	EnteredCurrency string          `json:"enteredCurrency"`
	EnteredSymbol   string          `json:"enteredSymbol"`

	AccountAmount   decimal.Decimal `json:"accountAmount"`
	AccountCurrency string          `json:"accountCurrency"`
	AccountSymbol   string          `json:"accountSymbol"`

	PrimaryAmount   decimal.Decimal `json:"primaryAmount"`
	PrimaryCurrency string          `json:"primaryCurrency"`
	PrimarySymbol   string          `json:"primarySymbol"`

	// Rate actually used for the entered→primary leg, with provenance.
	Rate             decimal.Decimal `json:"rate"`
	ConversionSource string          `json:"conversionSource"`
	RateFetchedAt    time.Time       `json:"rateFetchedAt"`

	ConversionCase ConversionCase `json:"conversionCase"`

	Fee       decimal.Decimal `json:"fee"`
	TotalCost decimal.Decimal `json:"totalCost"`

	// Full snapshots for both legs of the computation.
	PrimaryRate ExchangeRate `json:"primaryRate"`
	AccountRate ExchangeRate `json:"accountRate"`

	AuditID string `json:"auditId"`
}

// NewAuditID derives a unique audit identifier from the caller-supplied
// context, the current time, and a random suffix. Never reused.
func NewAuditID(auditContext string, now time.Time) string {
	if auditContext == "" {
		auditContext = "convert"
	}
	return fmt.Sprintf("%s-%d-%s", auditContext, now.UnixNano(), uuid.NewString()[:8])
}
