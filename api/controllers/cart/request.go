package cart

import (
	cartsvc "github.com/strawfields/strawfields-backend/internal/cart"
	"github.com/strawfields/strawfields-backend/internal/catalog"
)

// AddItemRequest carries one add action. A zero or omitted quantity
// takes the storefront's default step.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=0"`
}

// UpdateQuantityRequest replaces a line's quantity. Zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

func (r AddItemRequest) toInput() cartsvc.AddInput {
	return cartsvc.AddInput{
		ProductID: r.ProductID,
		Color:     catalog.Color(r.Color),
		Quantity:  r.Quantity,
	}
}
