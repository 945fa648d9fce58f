package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/strawfields/strawfields-backend/api/responses"
	"github.com/strawfields/strawfields-backend/api/validators"
	"github.com/strawfields/strawfields-backend/internal/cart"
	"github.com/strawfields/strawfields-backend/internal/catalog"
	pkgerrors "github.com/strawfields/strawfields-backend/pkg/errors"
	"github.com/strawfields/strawfields-backend/pkg/logger"
)

type productView struct {
	catalog.Product
	Colors       []catalog.Color   `json:"colors"`
	PreviewTiers []previewTierView `json:"preview_tiers"`
}

type previewTierView struct {
	MinQty         int    `json:"min_qty"`
	Discount       string `json:"discount"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// CatalogList returns the product registry with per-product preview
// pricing. The tiers shown here come from the promotional schedule;
// the cart applies its own schedule when lines are priced.
func CatalogList() http.HandlerFunc {
	colors := catalog.Colors()
	views := make([]productView, 0, len(catalog.All()))
	for _, product := range catalog.All() {
		tiers := make([]previewTierView, 0, len(cart.ScheduleB))
		for _, tier := range cart.ScheduleB {
			tiers = append(tiers, previewTierView{
				MinQty:         tier.MinQty,
				Discount:       tier.Discount.String(),
				UnitPriceCents: cart.ScheduleB.UnitPriceCents(product.BasePriceCents, tier.MinQty),
			})
		}
		views = append(views, productView{Product: product, Colors: colors, PreviewTiers: tiers})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"products": views})
	}
}

// CatalogPreview quotes a promotional unit price for one product at a
// requested quantity. Illustrative only; cart pricing is authoritative.
func CatalogPreview(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, ok := catalog.ByID(chi.URLParam(r, "productID"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "unknown product"))
			return
		}

		qty, err := validators.ParseQueryInt(r, "qty", cart.DefaultStepQty, 1, 10000000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"product_id":       product.ID,
			"quantity":         qty,
			"discount":         cart.ScheduleB.DiscountFor(qty).String(),
			"unit_price":       cart.ScheduleB.UnitPrice(product.BasePriceCents, qty).String(),
			"unit_price_cents": cart.ScheduleB.UnitPriceCents(product.BasePriceCents, qty),
			"preview":          true,
		})
	}
}
