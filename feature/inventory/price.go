package inventory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidPrice reports a price value that cannot be converted.
var ErrInvalidPrice = errors.New("inventory: invalid price")

// ParsePrice converts currency-decorated price text into a whole rouble
// amount: "1 500.00 руб." becomes 1500. Grouping runes and currency suffixes
// are stripped, the first dot starts the fractional part, and the fraction
// is truncated. A price with no integer part is invalid.
func ParsePrice(raw string) (int64, error) {
	cleaned := sanitizePrice(raw)
	if cleaned == "" || strings.HasPrefix(cleaned, ".") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	return d.IntPart(), nil
}

// sanitizePrice keeps digits and the first dot, dropping everything else.
func sanitizePrice(raw string) string {
	var b strings.Builder
	dotSeen := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !dotSeen:
			dotSeen = true
			b.WriteRune(r)
		}
	}
	return b.String()
}
