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

// FrankfurterProvider fetches rates from the keyless Frankfurter API
// (ECB reference rates). It sits first in the chain because it needs no
// credentials and carries no quota.
type FrankfurterProvider struct {
	baseURL string
	client  *http.Client
}

// NewFrankfurterProvider creates a Frankfurter-backed rate provider.
func NewFrankfurterProvider(baseURL string, client *http.Client) *FrankfurterProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &FrankfurterProvider{baseURL: baseURL, client: client}
}

func (p *FrankfurterProvider) Name() string { return "frankfurter" }

func (p *FrankfurterProvider) Priority() int { return PriorityFrankfurter }

// IsAvailable probes the latest-rates endpoint. Network failure maps to
// false, never to an error.
func (p *FrankfurterProvider) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/latest", nil)
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

func (p *FrankfurterProvider) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("base", currencies.Normalize(from))
	query.Set("symbols", currencies.Normalize(to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(p.baseURL, "/latest", query), nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s: %v", apperrors.ErrProviderFailure, p.Name(), err)
	}

	payload, err := fetchLatest(p.client, req, p.Name())
	if err != nil {
		return decimal.Decimal{}, err
	}
	return pairFromAll(normalizeRates(payload.Rates), to, p.Name())
}

func (p *FrankfurterProvider) GetAllRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	query := url.Values{}
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
