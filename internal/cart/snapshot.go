package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/strawfields/strawfields-backend/internal/catalog"
)

// SnapshotItem mirrors the persisted line shape. Field names are the
// wire contract; renaming any of them is a breaking change with no
// version field to negotiate it.
type SnapshotItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Diameter string  `json:"diameter"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Color    string  `json:"color"`
	Image    string  `json:"image"`
}

// Snapshot is the persisted cart shape: items plus the derived totals.
type Snapshot struct {
	Items     []SnapshotItem `json:"items"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"itemCount"`
}

// ToSnapshot serializes the aggregate for persistence.
func (c *Cart) ToSnapshot() Snapshot {
	items := make([]SnapshotItem, 0, len(c.Items))
	for _, line := range c.Items {
		items = append(items, SnapshotItem{
			ID:       line.ProductID,
			Name:     line.Name,
			Diameter: line.DiameterLabel,
			Price:    line.UnitPrice.InexactFloat64(),
			Quantity: line.Quantity,
			Color:    string(line.Color),
			Image:    line.ImageRef,
		})
	}
	return Snapshot{
		Items:     items,
		Total:     float64(c.SubtotalCents),
		ItemCount: c.TotalUnits,
	}
}

// FromSnapshot restores an aggregate verbatim: snapshot prices are
// trusted as-is rather than re-derived, matching the Load contract.
// Totals are still recomputed from the lines so they cannot disagree
// with the restored items.
func FromSnapshot(snap Snapshot) *Cart {
	c := NewCart()
	for _, item := range snap.Items {
		if item.Quantity <= 0 {
			continue
		}
		c.Items = append(c.Items, LineItem{
			ProductID:     item.ID,
			Color:         catalog.Color(item.Color),
			Name:          item.Name,
			DiameterLabel: item.Diameter,
			ImageRef:      item.Image,
			Quantity:      item.Quantity,
			UnitPrice:     decimal.NewFromFloat(item.Price),
		})
	}
	c.recompute()
	return c
}

// EncodeSnapshot marshals the snapshot for the storage port.
func EncodeSnapshot(c *Cart) ([]byte, error) {
	return json.Marshal(c.ToSnapshot())
}

// DecodeSnapshot parses a persisted snapshot. Callers treat any error
// as corruption and fall back to an empty cart.
func DecodeSnapshot(raw []byte) (*Cart, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return FromSnapshot(snap), nil
}
