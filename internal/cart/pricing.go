package cart

import "github.com/shopspring/decimal"

// Tier is one step of a bulk discount schedule.
type Tier struct {
	MinQty   int
	Discount decimal.Decimal
}

// Schedule is an ordered set of tiers. Selection picks the tier with
// the highest MinQty that is still <= the quantity, so declaration
// order does not matter.
type Schedule []Tier

var (
	// ScheduleA is the authoritative cart-side schedule. Anything that
	// can become an order is priced from it.
	ScheduleA = Schedule{
		{MinQty: 250000, Discount: decimal.RequireFromString("0.20")},
		{MinQty: 100000, Discount: decimal.RequireFromString("0.15")},
		{MinQty: 50000, Discount: decimal.RequireFromString("0.10")},
	}

	// ScheduleB prices preview surfaces only: product cards and the
	// chat quick-order form. Its lower thresholds are a marketing
	// choice; quotes built from it are illustrative.
	ScheduleB = Schedule{
		{MinQty: 25000, Discount: decimal.RequireFromString("0.20")},
		{MinQty: 10000, Discount: decimal.RequireFromString("0.15")},
		{MinQty: 5000, Discount: decimal.RequireFromString("0.10")},
	}
)

// DiscountFor returns the discount fraction for the given quantity.
// Quantities below the lowest tier, including zero and negative
// values, take no discount.
func (s Schedule) DiscountFor(qty int) decimal.Decimal {
	var selected *Tier
	for i := range s {
		tier := &s[i]
		if qty >= tier.MinQty && (selected == nil || tier.MinQty > selected.MinQty) {
			selected = tier
		}
	}
	if selected == nil {
		return decimal.Zero
	}
	return selected.Discount
}

// UnitPrice returns the effective per-unit price for a base price in
// cents at the given cumulative quantity.
func (s Schedule) UnitPrice(basePriceCents int64, qty int) decimal.Decimal {
	base := decimal.NewFromInt(basePriceCents)
	return base.Mul(decimal.NewFromInt(1).Sub(s.DiscountFor(qty)))
}

// UnitPriceCents is UnitPrice rounded half-up to whole cents, for
// serialization boundaries.
func (s Schedule) UnitPriceCents(basePriceCents int64, qty int) int64 {
	return s.UnitPrice(basePriceCents, qty).Round(0).IntPart()
}
