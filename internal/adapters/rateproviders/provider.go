// Package rateproviders implements the external rate sources behind the
// ports.RateProvider contract. Each HTTP provider normalizes its payload to
// the common {success, rates, base, date} shape before use; the static
// fallback provider closes the chain and never fails.
package rateproviders

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SscSPs/fxcore/internal/apperrors"
	"github.com/SscSPs/fxcore/internal/currencies"
	"github.com/shopspring/decimal"
)

// Chain priorities. Lower is tried first; the fallback is always last.
const (
	PriorityFrankfurter      = 10
	PriorityExchangeRateHost = 20
	PriorityFixer            = 30
	PriorityFallback         = 1<<31 - 1
)

// latestRates is the normalized latest-rates payload shared by all HTTP
// providers.
type latestRates struct {
	Success *bool                      `json:"success"`
	Base    string                     `json:"base"`
	Date    string                     `json:"date"`
	Rates   map[string]decimal.Decimal `json:"rates"`
}

// fetchLatest performs one GET against a latest-rates endpoint and decodes
// the normalized payload. Any transport error, non-2xx status, or malformed
// body maps to ErrProviderFailure.
func fetchLatest(client *http.Client, req *http.Request, provider string) (*latestRates, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrProviderFailure, provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s: unexpected status %d", apperrors.ErrProviderFailure, provider, resp.StatusCode)
	}

	var payload latestRates
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %s: malformed payload: %v", apperrors.ErrProviderFailure, provider, err)
	}
	if payload.Success != nil && !*payload.Success {
		return nil, fmt.Errorf("%w: %s: provider reported failure", apperrors.ErrProviderFailure, provider)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("%w: %s: empty rates payload", apperrors.ErrProviderFailure, provider)
	}
	return &payload, nil
}

// normalizeRates upper-cases all rate keys and drops non-positive entries.
func normalizeRates(raw map[string]decimal.Decimal) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(raw))
	for code, rate := range raw {
		if rate.IsPositive() {
			rates[currencies.Normalize(code)] = rate
		}
	}
	return rates
}

// pairFromAll extracts a single pairwise rate out of an all-rates response.
func pairFromAll(rates map[string]decimal.Decimal, to, provider string) (decimal.Decimal, error) {
	rate, ok := rates[currencies.Normalize(to)]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s: no rate for %s", apperrors.ErrProviderFailure, provider, to)
	}
	return rate, nil
}

func buildURL(base, path string, query url.Values) string {
	u := base + path
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}
