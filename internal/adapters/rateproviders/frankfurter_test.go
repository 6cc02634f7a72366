package rateproviders_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/fxcore/internal/adapters/rateproviders"
	"github.com/SscSPs/fxcore/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrankfurterProvider_GetRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "INR", r.URL.Query().Get("symbols"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","date":"2024-05-01","rates":{"INR":83.25}}`))
	}))
	defer server.Close()

	p := rateproviders.NewFrankfurterProvider(server.URL, server.Client())

	rate, err := p.GetRate(context.Background(), "usd", "inr")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("83.25")))
}

func TestFrankfurterProvider_GetAllRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","date":"2024-05-01","rates":{"eur":0.92,"INR":83.25,"XXX":-1}}`))
	}))
	defer server.Close()

	p := rateproviders.NewFrankfurterProvider(server.URL, server.Client())

	rates, err := p.GetAllRates(context.Background(), "USD")
	require.NoError(t, err)
	// Keys are normalized and non-positive entries dropped.
	assert.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.92")))
	assert.NotContains(t, rates, "XXX")
}

func TestFrankfurterProvider_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	p := rateproviders.NewFrankfurterProvider(server.URL, server.Client())

	_, err := p.GetRate(context.Background(), "USD", "INR")
	assert.ErrorIs(t, err, apperrors.ErrProviderFailure)
}

func TestFrankfurterProvider_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	p := rateproviders.NewFrankfurterProvider(server.URL, server.Client())

	_, err := p.GetRate(context.Background(), "USD", "INR")
	assert.ErrorIs(t, err, apperrors.ErrProviderFailure)
}

func TestFrankfurterProvider_MissingSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92}}`))
	}))
	defer server.Close()

	p := rateproviders.NewFrankfurterProvider(server.URL, server.Client())

	_, err := p.GetRate(context.Background(), "USD", "INR")
	assert.ErrorIs(t, err, apperrors.ErrProviderFailure)
}

func TestFrankfurterProvider_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"EUR","rates":{"USD":1.08}}`))
	}))
	p := rateproviders.NewFrankfurterProvider(server.URL, server.Client())
	assert.True(t, p.IsAvailable(context.Background()))

	server.Close()
	assert.False(t, p.IsAvailable(context.Background()))
}
