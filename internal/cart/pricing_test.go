package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestScheduleADiscountSteps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		qty  int
		want string
	}{
		{qty: 0, want: "0"},
		{qty: 999, want: "0"},
		{qty: 49999, want: "0"},
		{qty: 50000, want: "0.1"},
		{qty: 99999, want: "0.1"},
		{qty: 100000, want: "0.15"},
		{qty: 249999, want: "0.15"},
		{qty: 250000, want: "0.2"},
		{qty: 1000000, want: "0.2"},
	}

	for _, tc := range cases {
		got := ScheduleA.DiscountFor(tc.qty)
		if got.String() != tc.want {
			t.Fatalf("qty %d: expected discount %s, got %s", tc.qty, tc.want, got)
		}
	}
}

func TestScheduleBDiscountSteps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		qty  int
		want string
	}{
		{qty: 4999, want: "0"},
		{qty: 5000, want: "0.1"},
		{qty: 10000, want: "0.15"},
		{qty: 25000, want: "0.2"},
	}

	for _, tc := range cases {
		got := ScheduleB.DiscountFor(tc.qty)
		if got.String() != tc.want {
			t.Fatalf("qty %d: expected discount %s, got %s", tc.qty, tc.want, got)
		}
	}
}

func TestUnitPriceBounds(t *testing.T) {
	t.Parallel()

	base := int64(8)
	for _, qty := range []int{-5, 0, 1, 4999, 5000, 49999, 50000, 100000, 250000, 2000000} {
		for _, schedule := range []Schedule{ScheduleA, ScheduleB} {
			price := schedule.UnitPrice(base, qty)
			if price.GreaterThan(decimal.NewFromInt(base)) {
				t.Fatalf("qty %d: price %s exceeds base", qty, price)
			}
			if price.IsNegative() {
				t.Fatalf("qty %d: price %s is negative", qty, price)
			}
		}
	}
}

func TestUnitPriceBelowLowestTierIsBase(t *testing.T) {
	t.Parallel()

	if got := ScheduleA.UnitPrice(5, 49999); !got.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected base price below lowest tier, got %s", got)
	}
}

func TestNegativeQuantityFallsThroughToNoDiscount(t *testing.T) {
	t.Parallel()

	if got := ScheduleA.DiscountFor(-1000); !got.IsZero() {
		t.Fatalf("expected no discount for negative qty, got %s", got)
	}
}

func TestHighestQualifyingTierWins(t *testing.T) {
	t.Parallel()

	// 300k qualifies for every tier; the 250k tier must win.
	if got := ScheduleA.DiscountFor(300000); got.String() != "0.2" {
		t.Fatalf("expected 0.2, got %s", got)
	}
}

func TestUnitPriceCentsRounds(t *testing.T) {
	t.Parallel()

	// 10% off 5 cents is 4.5, which rounds half-up to 5.
	if got := ScheduleA.UnitPriceCents(5, 50000); got != 5 {
		t.Fatalf("expected 5 cents, got %d", got)
	}
	// 20% off 5 cents is an exact 4.
	if got := ScheduleA.UnitPriceCents(5, 250000); got != 4 {
		t.Fatalf("expected 4 cents, got %d", got)
	}
}
