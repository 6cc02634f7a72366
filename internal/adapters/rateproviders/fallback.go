package rateproviders

import (
	"context"
	"fmt"

	"github.com/SscSPs/fxcore/internal/apperrors"
	"github.com/SscSPs/fxcore/internal/currencies"
	"github.com/shopspring/decimal"
)

// FallbackProvider serves rates from a static snapshot table. It is always
// available and always last in the chain, which guarantees the failover loop
// terminates with a rate unless the table itself cannot resolve the pair.
//
// The table is a single deduplicated USD-based snapshot plus a small INR
// nest for the most common pairs of this application. Pairs absent from the
// nests resolve through the USD pivot.
type FallbackProvider struct {
	table map[string]map[string]decimal.Decimal
}

// pivotCurrency routes pairs with no direct or reverse table entry.
const pivotCurrency = "USD"

func d(value string) decimal.Decimal { return decimal.RequireFromString(value) }

// snapshotTable holds the hard-coded rate snapshot. One value per pair.
func snapshotTable() map[string]map[string]decimal.Decimal {
	return map[string]map[string]decimal.Decimal{
		"USD": {
			"EUR": d("0.92"),
			"GBP": d("0.79"),
			"INR": d("83.0"),
			"JPY": d("149.5"),
			"AUD": d("1.52"),
			"CAD": d("1.36"),
			"CHF": d("0.88"),
			"CNY": d("7.24"),
			"SGD": d("1.34"),
			"HKD": d("7.82"),
			"NZD": d("1.64"),
			"AED": d("3.67"),
			"SAR": d("3.75"),
			"QAR": d("3.64"),
			"KWD": d("0.308"),
			"BHD": d("0.376"),
			"OMR": d("0.385"),
			"KRW": d("1330"),
			"THB": d("35.8"),
			"MYR": d("4.70"),
			"IDR": d("15600"),
			"PHP": d("56.0"),
			"VND": d("24500"),
			"ZAR": d("18.6"),
			"BRL": d("5.00"),
			"MXN": d("17.1"),
			"TRY": d("32.0"),
			"PLN": d("4.00"),
			"CZK": d("23.2"),
			"SEK": d("10.5"),
			"NOK": d("10.6"),
			"DKK": d("6.87"),
			"ILS": d("3.70"),
			"LKR": d("300"),
			"NPR": d("132.8"),
			"PKR": d("278"),
			"BDT": d("110"),
		},
		"INR": {
			"USD": d("0.01205"),
			"EUR": d("0.01108"),
			"GBP": d("0.00952"),
			"AED": d("0.0442"),
			"SGD": d("0.01614"),
		},
	}
}

// NewFallbackProvider creates the static-table provider that closes the
// failover chain.
func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{table: snapshotTable()}
}

func (p *FallbackProvider) Name() string { return "static-fallback" }

func (p *FallbackProvider) Priority() int { return PriorityFallback }

// IsAvailable always reports true; the table needs no network.
func (p *FallbackProvider) IsAvailable(ctx context.Context) bool { return true }

func (p *FallbackProvider) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from = currencies.Normalize(from)
	to = currencies.Normalize(to)

	if from == to {
		return decimal.NewFromInt(1), nil
	}

	// Direct nested lookup.
	if nested, ok := p.table[from]; ok {
		if rate, ok := nested[to]; ok {
			return rate, nil
		}
	}

	// Reverse nested lookup, inverted.
	if nested, ok := p.table[to]; ok {
		if rate, ok := nested[from]; ok && rate.IsPositive() {
			return decimal.NewFromInt(1).Div(rate), nil
		}
	}

	// Route through the pivot: from→USD→to.
	fromPivot, err := p.pivotRate(from)
	if err != nil {
		return decimal.Decimal{}, err
	}
	toPivot, err := p.pivotRate(to)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return toPivot.Div(fromPivot), nil
}

// pivotRate returns the USD→code rate from the snapshot.
func (p *FallbackProvider) pivotRate(code string) (decimal.Decimal, error) {
	if code == pivotCurrency {
		return decimal.NewFromInt(1), nil
	}
	if rate, ok := p.table[pivotCurrency][code]; ok {
		return rate, nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %s: no fallback rate for %s", apperrors.ErrProviderFailure, p.Name(), code)
}

func (p *FallbackProvider) GetAllRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	base = currencies.Normalize(base)
	basePivot, err := p.pivotRate(base)
	if err != nil {
		return nil, err
	}

	rates := make(map[string]decimal.Decimal, len(p.table[pivotCurrency])+1)
	for code, usdRate := range p.table[pivotCurrency] {
		if code == base {
			continue
		}
		rates[code] = usdRate.Div(basePivot)
	}
	if base != pivotCurrency {
		rates[pivotCurrency] = decimal.NewFromInt(1).Div(basePivot)
	}
	return rates, nil
}
