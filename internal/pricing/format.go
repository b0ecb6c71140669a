package pricing

import "fmt"

func FormatUSD(v float64) string {
	return fmt.Sprintf("$%.2f", Round2(v))
}

// FormatShipping renders the waived flat rate the way the page did.
func FormatShipping(v float64) string {
	if v == 0 {
		return "FREE"
	}
	return FormatUSD(v)
}
