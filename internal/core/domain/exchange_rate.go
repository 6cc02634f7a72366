package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Intermediate arithmetic is carried well above any currency's display
	// precision; outputs are rounded once, at the end.
	if decimal.DivisionPrecision < 28 {
		decimal.DivisionPrecision = 28
	}
}

// SourceIdentity tags the synthetic rate used for same-currency conversions.
// Identity rates are never fetched from a provider and never persisted.
const SourceIdentity = "identity"

// SourceManual tags admin-entered rates. Automated fetches never overwrite a
// manual rate in the cache.
const SourceManual = "manual"

// ExchangeRate is an immutable snapshot of a conversion rate between two
// currencies. A newer fetch supersedes it with a new snapshot; snapshots are
// never updated in place.
type ExchangeRate struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	Source           string          `json:"source"`
	FetchedAt        time.Time       `json:"fetchedAt"`
	TTL              time.Duration   `json:"ttl"`
}

// IdentityRate returns the implicit rate-1 snapshot for a same-currency pair.
func IdentityRate(code string, now time.Time) ExchangeRate {
	return ExchangeRate{
		FromCurrencyCode: code,
		ToCurrencyCode:   code,
		Rate:             decimal.NewFromInt(1),
		Source:           SourceIdentity,
		FetchedAt:        now,
	}
}

// Age returns how old the snapshot is relative to now.
func (r ExchangeRate) Age(now time.Time) time.Duration {
	return now.Sub(r.FetchedAt)
}

// IsFresh reports whether the snapshot is young enough to serve without a
// refetch, per the short freshness window (TTL).
func (r ExchangeRate) IsFresh(now time.Time, ttl time.Duration) bool {
	return r.Age(now) <= ttl
}

// IsStale reports whether the snapshot has exceeded the stale threshold and
// must not be served at all, even for reciprocal derivation.
func (r ExchangeRate) IsStale(now time.Time, staleThreshold time.Duration) bool {
	return r.Age(now) > staleThreshold
}

// Reciprocal derives the inverse rate as a read-time computation. The result
// keeps the original snapshot's source and timestamp so provenance stays
// traceable, and must never be persisted as a row of its own.
func (r ExchangeRate) Reciprocal() ExchangeRate {
	return ExchangeRate{
		FromCurrencyCode: r.ToCurrencyCode,
		ToCurrencyCode:   r.FromCurrencyCode,
		Rate:             decimal.NewFromInt(1).Div(r.Rate),
		Source:           r.Source,
		FetchedAt:        r.FetchedAt,
		TTL:              r.TTL,
	}
}
