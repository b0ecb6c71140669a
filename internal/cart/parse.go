package cart

import (
	"fmt"
	"strconv"
	"strings"
)

// Input parsing for numeric form fields lives with the store, not the
// presentation layer, so callers hand over raw strings.

func ParseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("quantity %q is not a whole number", raw)
	}
	return n, nil
}

// ParsePrice accepts a plain number or a "$"-prefixed one, as read off a
// price label.
func ParsePrice(raw string) (float64, error) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q is not a number", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("price %q is negative", raw)
	}
	return v, nil
}
