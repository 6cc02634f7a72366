package rateproviders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SscSPs/fxcore/internal/apperrors"
	"github.com/SscSPs/fxcore/internal/currencies"
	"github.com/shopspring/decimal"
)

// FixerProvider fetches rates from Fixer.io. The free plan only serves
// EUR-base quotes, so rates for any other base are derived by cross-dividing
// two EUR-base rates.
type FixerProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewFixerProvider creates a Fixer.io-backed provider.
func NewFixerProvider(baseURL, apiKey string, client *http.Client) *FixerProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &FixerProvider{baseURL: baseURL, apiKey: apiKey, client: client}
}

func (p *FixerProvider) Name() string { return "fixer.io" }

func (p *FixerProvider) Priority() int { return PriorityFixer }

func (p *FixerProvider) IsAvailable(ctx context.Context) bool {
	query := url.Values{}
	query.Set("access_key", p.apiKey)
	query.Set("symbols", "USD")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(p.baseURL, "/latest", query), nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (p *FixerProvider) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	rates, err := p.GetAllRates(ctx, from)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return pairFromAll(rates, to, p.Name())
}

// GetAllRates fetches the EUR-base table and rebases it onto the requested
// base currency.
func (p *FixerProvider) GetAllRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	query := url.Values{}
	query.Set("access_key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(p.baseURL, "/latest", query), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrProviderFailure, p.Name(), err)
	}

	payload, err := fetchLatest(p.client, req, p.Name())
	if err != nil {
		return nil, err
	}

	eurRates := normalizeRates(payload.Rates)
	base = currencies.Normalize(base)
	if base == "EUR" {
		return eurRates, nil
	}

	baseRate, ok := eurRates[base]
	if !ok || !baseRate.IsPositive() {
		return nil, fmt.Errorf("%w: %s: no EUR rate for base %s", apperrors.ErrProviderFailure, p.Name(), base)
	}

	rebased := make(map[string]decimal.Decimal, len(eurRates))
	for code, rate := range eurRates {
		rebased[code] = rate.Div(baseRate)
	}
	rebased["EUR"] = decimal.NewFromInt(1).Div(baseRate)
	return rebased, nil
}
