package currencies

// restricted is the static set of currency codes that must never be
// converted, regardless of rate availability.
var restricted = map[string]struct{}{
	"KPW": {},
	"IRR": {},
	"SYP": {},
	"CUP": {},
}

// IsRestricted reports whether policy forbids converting to or from the code.
func IsRestricted(code string) bool {
	_, ok := restricted[Normalize(code)]
	return ok
}

// RestrictedCodes returns the restricted set as a slice, for diagnostics.
func RestrictedCodes() []string {
	codes := make([]string, 0, len(restricted))
	for code := range restricted {
		codes = append(codes, code)
	}
	return codes
}
