package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fxcore/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyConversion(t *testing.T) {
	testCases := []struct {
		name     string
		entered  string
		account  string
		primary  string
		expected domain.ConversionCase
	}{
		{"all three equal", "INR", "INR", "INR", domain.CaseAllSame},
		{"entered equals account", "USD", "USD", "INR", domain.CaseEnteredEqualsAccount},
		{"entered equals primary", "INR", "USD", "INR", domain.CaseEnteredEqualsPrimary},
		{"account equals primary", "USD", "INR", "INR", domain.CaseAccountEqualsPrimary},
		{"all different", "USD", "EUR", "INR", domain.CaseAllDifferent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.ClassifyConversion(tc.entered, tc.account, tc.primary))
		})
	}
}

func TestClassifyConversion_Exhaustive(t *testing.T) {
	// Every combination of three codes drawn from a two-element set must
	// land on one of the five named cases; the defensive unknown tag stays
	// unreachable.
	codes := []string{"USD", "EUR"}
	for _, entered := range codes {
		for _, account := range codes {
			for _, primary := range codes {
				c := domain.ClassifyConversion(entered, account, primary)
				assert.NotEqual(t, domain.CaseUnknown, c,
					"%s/%s/%s classified as unknown", entered, account, primary)
			}
		}
	}
}

func TestNewAuditID_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := domain.NewAuditID("dashboard", now)
		_, dup := seen[id]
		assert.False(t, dup, "audit id %q repeated", id)
		seen[id] = struct{}{}
	}
}

func TestNewAuditID_DefaultContext(t *testing.T) {
	id := domain.NewAuditID("", time.Now())
	assert.Contains(t, id, "convert-")
}
