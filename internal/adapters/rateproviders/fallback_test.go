package rateproviders_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fxcore/internal/adapters/rateproviders"
	"github.com/SscSPs/fxcore/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackProvider_AlwaysAvailable(t *testing.T) {
	p := rateproviders.NewFallbackProvider()
	assert.True(t, p.IsAvailable(context.Background()))
	assert.Equal(t, rateproviders.PriorityFallback, p.Priority())
}

func TestFallbackProvider_DirectLookup(t *testing.T) {
	p := rateproviders.NewFallbackProvider()

	rate, err := p.GetRate(context.Background(), "USD", "INR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("83.0")))
}

func TestFallbackProvider_NestedSourceLookup(t *testing.T) {
	p := rateproviders.NewFallbackProvider()

	// INR is present as a nested source key; direct lookup beats pivoting.
	rate, err := p.GetRate(context.Background(), "INR", "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.01205")))
}

func TestFallbackProvider_ReverseInversion(t *testing.T) {
	p := rateproviders.NewFallbackProvider()

	// EUR has no nested table, so EUR->USD inverts USD->EUR.
	rate, err := p.GetRate(context.Background(), "EUR", "USD")
	require.NoError(t, err)
	expected := decimal.NewFromInt(1).Div(decimal.RequireFromString("0.92"))
	assert.True(t, rate.Sub(expected).Abs().LessThan(decimal.RequireFromString("0.0000001")),
		"got %s, want ~%s", rate, expected)
}

func TestFallbackProvider_PivotThroughUSD(t *testing.T) {
	p := rateproviders.NewFallbackProvider()

	// EUR->GBP has neither a direct nor a reverse entry; it routes through
	// USD: (USD->GBP) / (USD->EUR).
	rate, err := p.GetRate(context.Background(), "EUR", "GBP")
	require.NoError(t, err)
	expected := decimal.RequireFromString("0.79").Div(decimal.RequireFromString("0.92"))
	assert.True(t, rate.Sub(expected).Abs().LessThan(decimal.RequireFromString("0.0000001")),
		"got %s, want ~%s", rate, expected)
}

func TestFallbackProvider_SameCurrency(t *testing.T) {
	p := rateproviders.NewFallbackProvider()

	rate, err := p.GetRate(context.Background(), "USD", "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestFallbackProvider_UnknownCurrency(t *testing.T) {
	p := rateproviders.NewFallbackProvider()

	_, err := p.GetRate(context.Background(), "USD", "ZZZ")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProviderFailure)
}

func TestFallbackProvider_GetAllRates(t *testing.T) {
	p := rateproviders.NewFallbackProvider()

	rates, err := p.GetAllRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.True(t, rates["INR"].Equal(decimal.RequireFromString("83.0")))
	assert.NotContains(t, rates, "USD")

	// Rebasing onto another currency includes the USD leg.
	eurRates, err := p.GetAllRates(context.Background(), "EUR")
	require.NoError(t, err)
	expectedUSD := decimal.NewFromInt(1).Div(decimal.RequireFromString("0.92"))
	assert.True(t, eurRates["USD"].Sub(expectedUSD).Abs().LessThan(decimal.RequireFromString("0.0000001")))
}
