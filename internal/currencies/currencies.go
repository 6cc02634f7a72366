// Package currencies holds the static currency metadata used by the
// conversion core: minor-unit precision, display symbols, and the restricted
// currency set. Codes absent from the tables fall back to precision 2 and
// symbol "$".
package currencies

import "strings"

const (
	// DefaultPrecision applies to any code missing from the precision table.
	DefaultPrecision = 2
	// DefaultSymbol applies to any code missing from the symbol table.
	DefaultSymbol = "$"
)

// precision maps ISO-4217 codes to their minor-unit digit counts.
var precision = map[string]int{
	"USD": 2,
	"EUR": 2,
	"GBP": 2,
	"INR": 2,
	"AUD": 2,
	"CAD": 2,
	"CHF": 2,
	"CNY": 2,
	"SGD": 2,
	"HKD": 2,
	"NZD": 2,
	"SEK": 2,
	"NOK": 2,
	"DKK": 2,
	"AED": 2,
	"SAR": 2,
	"QAR": 2,
	"THB": 2,
	"MYR": 2,
	"IDR": 2,
	"PHP": 2,
	"ZAR": 2,
	"BRL": 2,
	"MXN": 2,
	"RUB": 2,
	"TRY": 2,
	"PLN": 2,
	"CZK": 2,
	"ILS": 2,
	"LKR": 2,
	"NPR": 2,
	"PKR": 2,
	"BDT": 2,

	// Zero-decimal currencies.
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"CLP": 0,
	"ISK": 0,

	// Three-decimal currencies.
	"KWD": 3,
	"BHD": 3,
	"OMR": 3,
	"JOD": 3,
	"TND": 3,
}

// symbol maps ISO-4217 codes to display symbols.
var symbol = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"AUD": "A$",
	"CAD": "C$",
	"SGD": "S$",
	"HKD": "HK$",
	"NZD": "NZ$",
	"CHF": "CHF ",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"AED": "د.إ",
	"SAR": "﷼",
	"QAR": "﷼",
	"KWD": "د.ك",
	"BHD": ".د.ب",
	"OMR": "﷼",
	"JOD": "د.ا",
	"THB": "฿",
	"MYR": "RM",
	"IDR": "Rp",
	"PHP": "₱",
	"VND": "₫",
	"ZAR": "R",
	"BRL": "R$",
	"MXN": "Mex$",
	"RUB": "₽",
	"TRY": "₺",
	"PLN": "zł",
	"CZK": "Kč",
	"ILS": "₪",
	"LKR": "₨",
	"NPR": "₨",
	"PKR": "₨",
	"BDT": "৳",
}

// Normalize upper-cases and trims a currency code token.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Precision returns the number of minor-unit digits for a currency code.
func Precision(code string) int {
	if p, ok := precision[Normalize(code)]; ok {
		return p
	}
	return DefaultPrecision
}

// Symbol returns the display symbol for a currency code.
func Symbol(code string) string {
	if s, ok := symbol[Normalize(code)]; ok {
		return s
	}
	return DefaultSymbol
}

// IsKnown reports whether the code appears in the precision table.
func IsKnown(code string) bool {
	_, ok := precision[Normalize(code)]
	return ok
}
