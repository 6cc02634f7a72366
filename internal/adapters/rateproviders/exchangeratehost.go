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

// ExchangeRateHostProvider fetches rates from exchangerate.host. Requires an
// access key; without one the provider is never registered.
type ExchangeRateHostProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewExchangeRateHostProvider creates an exchangerate.host-backed provider.
func NewExchangeRateHostProvider(baseURL, apiKey string, client *http.Client) *ExchangeRateHostProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &ExchangeRateHostProvider{baseURL: baseURL, apiKey: apiKey, client: client}
}

func (p *ExchangeRateHostProvider) Name() string { return "exchangerate.host" }

func (p *ExchangeRateHostProvider) Priority() int { return PriorityExchangeRateHost }

func (p *ExchangeRateHostProvider) IsAvailable(ctx context.Context) bool {
	query := url.Values{}
	query.Set("access_key", p.apiKey)
	query.Set("base", "USD")
	query.Set("symbols", "EUR")

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

func (p *ExchangeRateHostProvider) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	rates, err := p.GetAllRates(ctx, from)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return pairFromAll(rates, to, p.Name())
}

func (p *ExchangeRateHostProvider) GetAllRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	query := url.Values{}
	query.Set("access_key", p.apiKey)
	query.Set("base", currencies.Normalize(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(p.baseURL, "/latest", query), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrProviderFailure, p.Name(), err)
	}

	payload, err := fetchLatest(p.client, req, p.Name())
	if err != nil {
		return nil, err
	}
	return normalizeRates(payload.Rates), nil
}
