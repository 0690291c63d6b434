package inventory

import (
	"errors"
	"fmt"
	"strconv"
)

// Quantity sentinels used by the upstream feed.
const (
	quantityOverflow = ">10" // supplier reports "more than ten"
	quantityReserved = "1"   // the last unit is kept as showcase stock
)

// ErrInvalidQuantity reports a quantity value that cannot be normalized.
var ErrInvalidQuantity = errors.New("inventory: invalid quantity")

// ParseQuantity normalizes the feed's textual quantity encoding into a stock
// count: ">10" maps to 100, "1" maps to 0 (reserved), anything else must be
// a non-negative base-10 integer. Values are matched verbatim, without
// trimming.
func ParseQuantity(raw string) (int, error) {
	switch raw {
	case quantityOverflow:
		return 100, nil
	case quantityReserved:
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative count %q", ErrInvalidQuantity, raw)
	}
	return n, nil
}
