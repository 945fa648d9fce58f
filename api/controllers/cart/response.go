package cart

import (
	cartsvc "github.com/strawfields/strawfields-backend/internal/cart"
)

type cartItemView struct {
	ProductID         string `json:"product_id"`
	Color             string `json:"color"`
	Name              string `json:"name"`
	Diameter          string `json:"diameter"`
	Image             string `json:"image"`
	Quantity          int    `json:"quantity"`
	UnitPrice         string `json:"unit_price"`
	Discount          string `json:"discount"`
	LineSubtotalCents int64  `json:"line_subtotal_cents"`
}

type cartView struct {
	Items         []cartItemView `json:"items"`
	SubtotalCents int64          `json:"subtotal_cents"`
	TotalUnits    int            `json:"total_units"`
}

func newCartView(c *cartsvc.Cart) cartView {
	items := make([]cartItemView, 0, len(c.Items))
	for _, line := range c.Items {
		items = append(items, cartItemView{
			ProductID:         line.ProductID,
			Color:             string(line.Color),
			Name:              line.Name,
			Diameter:          line.DiameterLabel,
			Image:             line.ImageRef,
			Quantity:          line.Quantity,
			UnitPrice:         line.UnitPrice.String(),
			Discount:          cartsvc.ScheduleA.DiscountFor(line.Quantity).String(),
			LineSubtotalCents: line.LineSubtotalCents(),
		})
	}
	return cartView{
		Items:         items,
		SubtotalCents: c.SubtotalCents,
		TotalUnits:    c.TotalUnits,
	}
}
