package services_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/fxcore/internal/apperrors"
	"github.com/SscSPs/fxcore/internal/core/domain"
	"github.com/SscSPs/fxcore/internal/core/ports"
	"github.com/SscSPs/fxcore/internal/core/services"
	"github.com/SscSPs/fxcore/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Test helpers shared by the service tests ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics() *metrics.ConversionMetrics {
	return metrics.NewConversionMetrics(prometheus.NewRegistry())
}

// stubProvider is a scriptable RateProvider that counts its calls so tests
// can assert on exactly how often the network would have been touched.
type stubProvider struct {
	name         string
	priority     int
	available    bool
	rates        map[string]decimal.Decimal // keyed "FROM->TO"
	err          error
	getRateCalls int
	availCalls   int
}

func (p *stubProvider) Name() string  { return p.name }
func (p *stubProvider) Priority() int { return p.priority }

func (p *stubProvider) IsAvailable(ctx context.Context) bool {
	p.availCalls++
	return p.available
}

func (p *stubProvider) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	p.getRateCalls++
	if p.err != nil {
		return decimal.Decimal{}, p.err
	}
	if rate, ok := p.rates[from+"->"+to]; ok {
		return rate, nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %s: no rate for %s->%s", apperrors.ErrProviderFailure, p.name, from, to)
}

func (p *stubProvider) GetAllRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	if p.err != nil {
		return nil, p.err
	}
	all := make(map[string]decimal.Decimal)
	for key, rate := range p.rates {
		var from, to string
		fmt.Sscanf(key, "%3s->%3s", &from, &to)
		if from == base {
			all[to] = rate
		}
	}
	return all, nil
}

// --- Test Suite ---

type ConversionServiceTestSuite struct {
	suite.Suite
	provider *stubProvider
	service  *services.ConversionService
}

func (s *ConversionServiceTestSuite) newService(providers ...ports.RateProvider) *services.ConversionService {
	logger := newTestLogger()
	m := newTestMetrics()
	cache := services.NewRateCacheService(nil, time.Hour, 24*time.Hour, 7*24*time.Hour, logger, m)
	chain := services.NewProviderChain(providers, 5*time.Second, 15*time.Second, time.Hour, logger, m)
	return services.NewConversionService(cache, chain, logger, m)
}

func (s *ConversionServiceTestSuite) SetupTest() {
	s.provider = &stubProvider{
		name:      "test-provider",
		priority:  10,
		available: true,
		rates: map[string]decimal.Decimal{
			"USD->INR": decimal.RequireFromString("83.0"),
			"USD->EUR": decimal.RequireFromString("0.92"),
		},
	}
	s.service = s.newService(s.provider)
}

func (s *ConversionServiceTestSuite) TestConvert_AllSame_NoProviderCall() {
	result, err := s.service.Convert(context.Background(), domain.ConversionRequest{
		Amount:          decimal.NewFromInt(1500),
		EnteredCurrency: "INR",
		AccountCurrency: "INR",
		PrimaryCurrency: "INR",
	})

	s.Require().NoError(err)
	s.Equal(domain.CaseAllSame, result.ConversionCase)
	s.True(result.AccountAmount.Equal(decimal.NewFromInt(1500)))
	s.True(result.PrimaryAmount.Equal(decimal.NewFromInt(1500)))
	s.True(result.Rate.Equal(decimal.NewFromInt(1)))
	s.Equal(domain.SourceIdentity, result.ConversionSource)
	s.Zero(s.provider.getRateCalls, "same-currency conversion must not touch providers")
	s.Zero(s.provider.availCalls)
}

func (s *ConversionServiceTestSuite) TestConvert_AccountEqualsPrimary() {
	result, err := s.service.Convert(context.Background(), domain.ConversionRequest{
		Amount:          decimal.NewFromInt(500),
		EnteredCurrency: "USD",
		AccountCurrency: "INR",
		PrimaryCurrency: "INR",
	})

	s.Require().NoError(err)
	s.Equal(domain.CaseAccountEqualsPrimary, result.ConversionCase)
	s.True(result.AccountAmount.Equal(decimal.RequireFromString("41500.00")),
		"got %s", result.AccountAmount)
	s.True(result.PrimaryAmount.Equal(decimal.RequireFromString("41500.00")))
	s.Equal("test-provider", result.ConversionSource)
}

func (s *ConversionServiceTestSuite) TestConvert_IndependentLookups() {
	result, err := s.service.Convert(context.Background(), domain.ConversionRequest{
		Amount:          decimal.NewFromInt(100),
		EnteredCurrency: "USD",
		AccountCurrency: "EUR",
		PrimaryCurrency: "INR",
	})

	s.Require().NoError(err)
	s.Equal(domain.CaseAllDifferent, result.ConversionCase)
	// Each leg is its own lookup from the entered currency, not chained
	// through the account currency.
	s.True(result.AccountAmount.Equal(decimal.RequireFromString("92.00")), "got %s", result.AccountAmount)
	s.True(result.PrimaryAmount.Equal(decimal.RequireFromString("8300.00")), "got %s", result.PrimaryAmount)
	s.Equal(2, s.provider.getRateCalls)
}

func (s *ConversionServiceTestSuite) TestConvert_RestrictedCurrency_BeforeAnyIO() {
	_, err := s.service.Convert(context.Background(), domain.ConversionRequest{
		Amount:          decimal.NewFromInt(10),
		EnteredCurrency: "KPW",
		AccountCurrency: "USD",
		PrimaryCurrency: "USD",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrRestrictedCurrency)
	s.Zero(s.provider.getRateCalls, "restricted check must run before any provider access")
	s.Zero(s.provider.availCalls)
}

func (s *ConversionServiceTestSuite) TestConvert_Failover_FallbackWins() {
	down := &stubProvider{name: "down-provider", priority: 1, available: false}
	failing := &stubProvider{
		name:      "failing-provider",
		priority:  2,
		available: true,
		err:       fmt.Errorf("%w: boom", apperrors.ErrProviderFailure),
	}
	fallback := &stubProvider{
		name:      "static-fallback",
		priority:  1<<31 - 1,
		available: true,
		rates:     map[string]decimal.Decimal{"USD->INR": decimal.RequireFromString("83.0")},
	}
	service := s.newService(fallback, failing, down) // chain sorts by priority

	result, err := service.Convert(context.Background(), domain.ConversionRequest{
		Amount:          decimal.NewFromInt(1),
		EnteredCurrency: "USD",
		AccountCurrency: "INR",
		PrimaryCurrency: "INR",
	})

	s.Require().NoError(err)
	s.Equal("static-fallback", result.ConversionSource)
	s.Equal(1, failing.getRateCalls, "failing provider is tried before the fallback")
	s.Zero(down.getRateCalls, "unavailable provider is never asked for a rate")
}

func (s *ConversionServiceTestSuite) TestConvert_AllProvidersFail() {
	failing := &stubProvider{
		name:      "failing-provider",
		priority:  1,
		available: true,
		err:       fmt.Errorf("%w: boom", apperrors.ErrProviderFailure),
	}
	service := s.newService(failing)

	_, err := service.Convert(context.Background(), domain.ConversionRequest{
		Amount:          decimal.NewFromInt(1),
		EnteredCurrency: "USD",
		AccountCurrency: "INR",
		PrimaryCurrency: "INR",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNoProviderAvailable)
}

func (s *ConversionServiceTestSuite) TestConvert_FeeMath() {
	// USD->EUR rate of 2.0 turns 500 into a primary amount of exactly 1000.
	s.provider.rates["USD->EUR"] = decimal.NewFromInt(2)

	result, err := s.service.Convert(context.Background(), domain.ConversionRequest{
		Amount:          decimal.NewFromInt(500),
		EnteredCurrency: "USD",
		AccountCurrency: "USD",
		PrimaryCurrency: "EUR",
		IncludeFees:     true,
		FeePercentage:   decimal.RequireFromString("0.0025"),
	})

	s.Require().NoError(err)
	s.True(result.PrimaryAmount.Equal(decimal.NewFromInt(1000)))
	s.True(result.Fee.Equal(decimal.RequireFromString("2.50")), "got fee %s", result.Fee)
	s.True(result.TotalCost.Equal(decimal.RequireFromString("1002.50")), "got total %s", result.TotalCost)
}

func (s *ConversionServiceTestSuite) TestConvert_FeesExcluded_ExactZero() {
	result, err := s.service.Convert(context.Background(), domain.ConversionRequest{
		Amount:          decimal.NewFromInt(100),
		EnteredCurrency: "USD",
		AccountCurrency: "INR",
		PrimaryCurrency: "INR",
		IncludeFees:     false,
	})

	s.Require().NoError(err)
	s.True(result.Fee.IsZero())
	s.True(result.TotalCost.Equal(result.PrimaryAmount))
}

func (s *ConversionServiceTestSuite) TestConvert_Idempotent_DistinctAuditIDs() {
	req := domain.ConversionRequest{
		Amount:          decimal.NewFromInt(250),
		EnteredCurrency: "USD",
		AccountCurrency: "INR",
		PrimaryCurrency: "INR",
		AuditContext:    "dashboard",
	}

	first, err := s.service.Convert(context.Background(), req)
	s.Require().NoError(err)
	second, err := s.service.Convert(context.Background(), req)
	s.Require().NoError(err)

	s.True(first.AccountAmount.Equal(second.AccountAmount))
	s.True(first.PrimaryAmount.Equal(second.PrimaryAmount))
	s.NotEqual(first.AuditID, second.AuditID)
	// The second call is served from the cache.
	s.Equal(1, s.provider.getRateCalls)
}

func (s *ConversionServiceTestSuite) TestConvert_RoundTripWithinOneMinorUnit() {
	amount := decimal.RequireFromString("123.45")

	out, err := s.service.Convert(context.Background(), domain.ConversionRequest{
		Amount:          amount,
		EnteredCurrency: "USD",
		AccountCurrency: "EUR",
		PrimaryCurrency: "EUR",
	})
	s.Require().NoError(err)

	// The return leg derives the reciprocal of the same cached snapshot.
	back, err := s.service.Convert(context.Background(), domain.ConversionRequest{
		Amount:          out.PrimaryAmount,
		EnteredCurrency: "EUR",
		AccountCurrency: "USD",
		PrimaryCurrency: "USD",
	})
	s.Require().NoError(err)
	s.Equal(1, s.provider.getRateCalls, "return leg must reuse the cached snapshot")

	diff := back.PrimaryAmount.Sub(amount).Abs()
	s.True(diff.LessThanOrEqual(decimal.RequireFromString("0.01")),
		"round trip drifted by %s", diff)
}

func (s *ConversionServiceTestSuite) TestConvert_InvalidCurrencyCode() {
	_, err := s.service.Convert(context.Background(), domain.ConversionRequest{
		Amount:          decimal.NewFromInt(1),
		EnteredCurrency: "US",
		AccountCurrency: "INR",
		PrimaryCurrency: "INR",
	})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ConversionServiceTestSuite) TestGetRate_SameCurrency() {
	rate, err := s.service.GetRate(context.Background(), "usd", "USD")
	s.Require().NoError(err)
	s.True(rate.Rate.Equal(decimal.NewFromInt(1)))
	s.Equal(domain.SourceIdentity, rate.Source)
	s.Zero(s.provider.getRateCalls)
}

func (s *ConversionServiceTestSuite) TestGetRate_Restricted() {
	_, err := s.service.GetRate(context.Background(), "USD", "IRR")
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrRestrictedCurrency)
	s.Zero(s.provider.getRateCalls)
}

func (s *ConversionServiceTestSuite) TestFormatAmount() {
	s.Equal("₹1500.00", s.service.FormatAmount(decimal.NewFromInt(1500), "INR"))
	s.Equal("¥150", s.service.FormatAmount(decimal.RequireFromString("149.5"), "JPY"))
	s.Equal("$12.35", s.service.FormatAmount(decimal.RequireFromString("12.345"), "XYZ"))
}

func (s *ConversionServiceTestSuite) TestCurrencyPrecisionAndRestriction() {
	s.Equal(0, s.service.CurrencyPrecision("JPY"))
	s.Equal(2, s.service.CurrencyPrecision("XYZ"))
	s.True(s.service.IsCurrencyRestricted("KPW"))
	s.False(s.service.IsCurrencyRestricted("USD"))
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}

func TestRoundHalfUp(t *testing.T) {
	service := newStandaloneService(t)
	assert.Equal(t, "$0.13", service.FormatAmount(decimal.RequireFromString("0.125"), "XYZ"))
	require.NotNil(t, service)
}

func newStandaloneService(t *testing.T) *services.ConversionService {
	t.Helper()
	logger := newTestLogger()
	m := newTestMetrics()
	cache := services.NewRateCacheService(nil, time.Hour, 24*time.Hour, 7*24*time.Hour, logger, m)
	chain := services.NewProviderChain(nil, time.Second, time.Second, time.Hour, logger, m)
	return services.NewConversionService(cache, chain, logger, m)
}
