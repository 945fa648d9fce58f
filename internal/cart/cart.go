package cart

import (
	"github.com/shopspring/decimal"
	"github.com/strawfields/strawfields-backend/internal/catalog"
)

// DefaultStepQty is the quantity applied when Add is called without an
// explicit amount.
const DefaultStepQty = 10000

// MinAddQty is the smallest quantity a single Add may carry. The
// storefront enforces it too; the engine rejects smaller adds so the
// invariant does not depend on the client.
const MinAddQty = 1000

// Key identifies a cart line. Two lines with the same product but
// different colors are distinct.
type Key struct {
	ProductID string        `json:"product_id"`
	Color     catalog.Color `json:"color"`
}

// LineItem is one (product, color) entry in the cart. UnitPrice is
// always derived from the catalog base price and the line's cumulative
// quantity via ScheduleA; it is never carried as independent state.
type LineItem struct {
	ProductID     string
	Color         catalog.Color
	Name          string
	DiameterLabel string
	ImageRef      string
	Quantity      int
	UnitPrice     decimal.Decimal
}

// Key returns the line's identity key.
func (li LineItem) Key() Key {
	return Key{ProductID: li.ProductID, Color: li.Color}
}

// LineSubtotalCents is the line total rounded to whole cents.
func (li LineItem) LineSubtotalCents() int64 {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))).Round(0).IntPart()
}

// Cart is the aggregate the four actions operate on. SubtotalCents and
// TotalUnits are recomputed by full reduction after every transition.
type Cart struct {
	Items         []LineItem
	SubtotalCents int64
	TotalUnits    int
}

// NewCart returns an empty aggregate.
func NewCart() *Cart {
	return &Cart{}
}

// Add merges qty into the line for (product, color), creating it when
// absent. A non-positive qty takes the default step; minimum-order
// enforcement lives in the service, which resolves quantities before
// calling here. The merged line's unit price is recomputed from
// ScheduleA at the new cumulative quantity.
func (c *Cart) Add(product catalog.Product, color catalog.Color, qty int) {
	if qty <= 0 {
		qty = DefaultStepQty
	}

	key := Key{ProductID: product.ID, Color: color}
	if idx := c.indexOf(key); idx >= 0 {
		line := &c.Items[idx]
		line.Quantity += qty
		line.UnitPrice = ScheduleA.UnitPrice(product.BasePriceCents, line.Quantity)
	} else {
		c.Items = append(c.Items, LineItem{
			ProductID:     product.ID,
			Color:         color,
			Name:          product.Name,
			DiameterLabel: product.DiameterLabel,
			ImageRef:      product.ImageRef,
			Quantity:      qty,
			UnitPrice:     ScheduleA.UnitPrice(product.BasePriceCents, qty),
		})
	}
	c.recompute()
}

// Remove deletes the line with the given key. Missing keys are a no-op.
func (c *Cart) Remove(key Key) {
	idx := c.indexOf(key)
	if idx < 0 {
		return
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	c.recompute()
}

// SetQuantity replaces the line's quantity, clamped at zero. A zero
// result removes the line. The unit price is recomputed from ScheduleA
// exactly as Add does, so price can never drift from quantity.
func (c *Cart) SetQuantity(key Key, qty int) {
	idx := c.indexOf(key)
	if idx < 0 {
		return
	}
	if qty <= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		c.recompute()
		return
	}
	line := &c.Items[idx]
	line.Quantity = qty
	if product, ok := catalog.ByID(line.ProductID); ok {
		line.UnitPrice = ScheduleA.UnitPrice(product.BasePriceCents, qty)
	}
	c.recompute()
}

// Clear resets the aggregate unconditionally.
func (c *Cart) Clear() {
	c.Items = nil
	c.recompute()
}

func (c *Cart) indexOf(key Key) int {
	for i, line := range c.Items {
		if line.Key() == key {
			return i
		}
	}
	return -1
}

// recompute derives subtotal and total units by full reduction. Cart
// sizes are a handful of lines, so O(n) per mutation is fine and the
// derived fields can never drift. The subtotal sums the per-line
// rounded subtotals, so it always equals the sum of the line totals a
// client sees.
func (c *Cart) recompute() {
	var subtotal int64
	units := 0
	for _, line := range c.Items {
		subtotal += line.LineSubtotalCents()
		units += line.Quantity
	}
	c.SubtotalCents = subtotal
	c.TotalUnits = units
}
