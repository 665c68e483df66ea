// Package normalize converts parser output into canonical transactions:
// locale-specific amount and date strings into typed values, and raw rows
// into the signed-amount transaction record the cascade operates on.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CleanAmount parses an amount-like string into a decimal value. Thousands
// separators and whitespace are stripped, parenthesized values are treated as
// negative, and anything unparsable yields zero. It never fails: a bad amount
// cell must not sink a whole statement row.
func CleanAmount(raw string) decimal.Decimal {
	s := strings.NewReplacer(",", "", " ", "", " ", "", "\n", "").Replace(raw)
	if s == "" || s == "-" || strings.EqualFold(s, "NA") {
		return decimal.Zero
	}

	// Accounting notation: (123.45) means -123.45.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	// Trailing Dr/Cr markers from SBI/ICICI style columns.
	for _, suffix := range []string{"CR.", "DR.", "CR", "DR", "Cr.", "Dr.", "Cr", "Dr"} {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
