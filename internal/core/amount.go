// Package core implements the expense-ledger engine: free-text line parsing,
// amount and date normalization, and even-split settlement arithmetic.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeAmount converts a locale-formatted amount string into a decimal
// value. Currency symbols and whitespace are stripped and decimal commas are
// normalized to dots. When more than one dot remains, every dot except the
// last is treated as a thousands separator.
//
// Examples:
//
//	NormalizeAmount("$1.234,56")    -> 1234.56
//	NormalizeAmount("1.234.567,89") -> 1234567.89
//	NormalizeAmount("54000")        -> 54000
//	NormalizeAmount("$12,5")        -> 12.5
func NormalizeAmount(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(raw, "$", "")
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, ",", ".")
	if strings.Count(s, ".") > 1 {
		parts := strings.Split(s, ".")
		s = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d, nil
}
