package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fxcore/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRate_Freshness(t *testing.T) {
	now := time.Now()
	rate := domain.ExchangeRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "INR",
		Rate:             decimal.RequireFromString("83.0"),
		Source:           "frankfurter",
		FetchedAt:        now.Add(-30 * time.Minute),
	}

	// Younger than the TTL: fresh, no refetch needed.
	assert.True(t, rate.IsFresh(now, time.Hour))
	// Older than the TTL but younger than the stale threshold: refetchable
	// but still servable.
	assert.False(t, rate.IsFresh(now, 10*time.Minute))
	assert.False(t, rate.IsStale(now, 24*time.Hour))

	old := rate
	old.FetchedAt = now.Add(-25 * time.Hour)
	assert.True(t, old.IsStale(now, 24*time.Hour))
}

func TestExchangeRate_Reciprocal(t *testing.T) {
	rate := domain.ExchangeRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "INR",
		Rate:             decimal.RequireFromString("83.0"),
		Source:           "frankfurter",
		FetchedAt:        time.Now(),
	}

	inverse := rate.Reciprocal()
	assert.Equal(t, "INR", inverse.FromCurrencyCode)
	assert.Equal(t, "USD", inverse.ToCurrencyCode)
	// Provenance of the original fetch is preserved.
	assert.Equal(t, rate.Source, inverse.Source)
	assert.Equal(t, rate.FetchedAt, inverse.FetchedAt)

	product := rate.Rate.Mul(inverse.Rate)
	diff := product.Sub(decimal.NewFromInt(1)).Abs()
	require.True(t, diff.LessThan(decimal.RequireFromString("0.0000000001")),
		"rate * reciprocal = %s, want 1", product)
}

func TestIdentityRate(t *testing.T) {
	now := time.Now()
	rate := domain.IdentityRate("EUR", now)
	assert.True(t, rate.Rate.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, domain.SourceIdentity, rate.Source)
	assert.Equal(t, "EUR", rate.FromCurrencyCode)
	assert.Equal(t, "EUR", rate.ToCurrencyCode)
}
