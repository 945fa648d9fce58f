package leads

import (
	"net/http"

	"github.com/strawfields/strawfields-backend/api/middleware"
	"github.com/strawfields/strawfields-backend/api/responses"
	"github.com/strawfields/strawfields-backend/api/validators"
	cartsvc "github.com/strawfields/strawfields-backend/internal/cart"
	leadsvc "github.com/strawfields/strawfields-backend/internal/leads"
	pkgerrors "github.com/strawfields/strawfields-backend/pkg/errors"
	"github.com/strawfields/strawfields-backend/pkg/logger"
)

// SubmitRequest is the order form payload. IncludeCart attaches the
// session's cart so sales sees what the visitor priced up.
type SubmitRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Company     string `json:"company" validate:"max=160"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=32"`
	Country     string `json:"country" validate:"max=80"`
	Message     string `json:"message" validate:"max=2000"`
	Source      string `json:"source" validate:"omitempty,oneof=order_form chat_widget product_card"`
	IncludeCart bool   `json:"include_cart"`
}

// LeadSubmit accepts an order form submission and reports which
// delivery path landed it.
func LeadSubmit(svc leadsvc.Service, carts cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		sessID := middleware.SessionIDFromContext(r.Context())
		if sessID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session context missing"))
			return
		}

		var payload SubmitRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lead := leadsvc.Lead{
			SessionID: sessID,
			Name:      validators.SanitizeString(payload.Name, 120),
			Company:   validators.SanitizeString(payload.Company, 160),
			Email:     validators.SanitizeString(payload.Email, 254),
			Phone:     validators.SanitizeString(payload.Phone, 32),
			Country:   validators.SanitizeString(payload.Country, 80),
			Message:   validators.SanitizeString(payload.Message, 2000),
			Source:    payload.Source,
		}

		if payload.IncludeCart && carts != nil {
			if record, err := carts.Get(r.Context(), sessID); err == nil && len(record.Items) > 0 {
				snap := record.ToSnapshot()
				lead.Cart = &snap
			}
		}

		result, err := svc.Submit(r.Context(), lead)
		if err != nil {
			// Total delivery failure: the lead reached nobody.
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lead delivery failed"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, result)
	}
}

// WhatsAppLink builds the wa.me deep link for the session's cart so the
// widget can hand the conversation to sales without a form submission.
func WhatsAppLink(carts cartsvc.Service, whatsappNumber string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessID := middleware.SessionIDFromContext(r.Context())
		if sessID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session context missing"))
			return
		}

		lead := leadsvc.Lead{
			SessionID: sessID,
			Name:      validators.SanitizeString(r.URL.Query().Get("name"), 120),
			Message:   validators.SanitizeString(r.URL.Query().Get("message"), 500),
		}

		if carts != nil {
			if record, err := carts.Get(r.Context(), sessID); err == nil && len(record.Items) > 0 {
				snap := record.ToSnapshot()
				lead.Cart = &snap
			}
		}

		link := leadsvc.WhatsAppURL(whatsappNumber, lead)
		if link == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "whatsapp channel not configured"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"whatsapp_url": link})
	}
}
