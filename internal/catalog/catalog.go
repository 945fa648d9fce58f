// Package catalog holds the fixed rice-straw product registry. The
// catalog is compiled into the binary: products change with releases,
// not at runtime, so there is no store behind this package.
package catalog

// Product is one straw variant (diameter class) offered on the site.
type Product struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DiameterLabel  string  `json:"diameter"`
	DiameterMM     float64 `json:"diameter_mm"`
	BasePriceCents int64   `json:"base_price_cents"`
	ImageRef       string  `json:"image"`
}

// Color is one of the fixed straw color variants.
type Color string

const (
	ColorWhite  Color = "white"
	ColorOrange Color = "orange"
	ColorGreen  Color = "green"
	ColorBlack  Color = "black"
	ColorRed    Color = "red"
)

var colors = []Color{ColorWhite, ColorOrange, ColorGreen, ColorBlack, ColorRed}

// Base prices are per-unit cents before any bulk tier.
var products = []Product{
	{
		ID:             "straw-6.5mm",
		Name:           "Cocktail Straw",
		DiameterLabel:  "6.5mm",
		DiameterMM:     6.5,
		BasePriceCents: 4,
		ImageRef:       "/images/products/straw-6-5mm.webp",
	},
	{
		ID:             "straw-8mm",
		Name:           "Standard Straw",
		DiameterLabel:  "8mm",
		DiameterMM:     8,
		BasePriceCents: 5,
		ImageRef:       "/images/products/straw-8mm.webp",
	},
	{
		ID:             "straw-10mm",
		Name:           "Smoothie Straw",
		DiameterLabel:  "10mm",
		DiameterMM:     10,
		BasePriceCents: 6,
		ImageRef:       "/images/products/straw-10mm.webp",
	},
	{
		ID:             "straw-12mm",
		Name:           "Bubble Tea Straw",
		DiameterLabel:  "12mm",
		DiameterMM:     12,
		BasePriceCents: 8,
		ImageRef:       "/images/products/straw-12mm.webp",
	},
}

// All returns the registry in display order.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ByID returns the product with the given identifier.
func ByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Colors returns the fixed color variant set.
func Colors() []Color {
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}

// ValidColor reports whether c is one of the offered variants.
func ValidColor(c Color) bool {
	for _, known := range colors {
		if known == c {
			return true
		}
	}
	return false
}
