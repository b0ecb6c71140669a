package pricing

import (
	"math"
	"strings"

	"github.com/artisanhome/cartengine/internal/domain"
)

// Rates are the shop-wide pricing parameters. Shipping is a flat rate waived
// above the free-shipping threshold; tax is a single fixed rate.
type Rates struct {
	TaxRate          float64
	ShippingFlat     float64
	FreeShippingOver float64
}

func DefaultRates() Rates {
	return Rates{
		TaxRate:          0.08,
		ShippingFlat:     15,
		FreeShippingOver: 100,
	}
}

// Promo is a percentage discount unlocked by a code.
type Promo struct {
	Code    string
	Percent float64
}

// DefaultPromos returns the codes the shop honors.
func DefaultPromos() []Promo {
	return []Promo{{Code: "ARTISAN10", Percent: 10}}
}

// Summary is the derived order summary. Amounts accumulate unrounded;
// rounding happens only at presentation time via Round2/FormatUSD.
type Summary struct {
	Subtotal float64
	Discount float64
	Shipping float64
	Tax      float64
	Total    float64
}

// Calculator derives a Summary from cart contents. It is a pure function of
// its inputs and holds no cart state.
type Calculator struct {
	rates  Rates
	promos map[string]float64
}

func NewCalculator(rates Rates, promos ...Promo) *Calculator {
	c := &Calculator{
		rates:  rates,
		promos: make(map[string]float64, len(promos)),
	}
	for _, p := range promos {
		c.promos[normalizeCode(p.Code)] = p.Percent
	}
	return c
}

func (c *Calculator) Rates() Rates { return c.rates }

// KnownPromo reports whether code unlocks a discount.
func (c *Calculator) KnownPromo(code string) bool {
	_, ok := c.promos[normalizeCode(code)]
	return ok
}

func (c *Calculator) Summarize(items []domain.LineItem) Summary {
	return c.summarize(items, 0)
}

// SummarizeWithPromo applies a promo code before shipping and tax. An unknown
// code returns domain.ErrUnknownPromo and the undiscounted summary.
func (c *Calculator) SummarizeWithPromo(items []domain.LineItem, code string) (Summary, error) {
	if code == "" {
		return c.Summarize(items), nil
	}
	percent, ok := c.promos[normalizeCode(code)]
	if !ok {
		return c.Summarize(items), domain.ErrUnknownPromo
	}
	return c.summarize(items, percent), nil
}

func (c *Calculator) summarize(items []domain.LineItem, discountPercent float64) Summary {
	var subtotal float64
	for _, it := range items {
		subtotal += it.LineTotal()
	}

	discount := subtotal * discountPercent / 100
	discounted := subtotal - discount

	shipping := c.rates.ShippingFlat
	if discounted > c.rates.FreeShippingOver {
		shipping = 0
	}
	tax := discounted * c.rates.TaxRate

	return Summary{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Tax:      tax,
		Total:    discounted + shipping + tax,
	}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Round2 rounds to cents. Presentation only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
