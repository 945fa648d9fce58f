package leads

import (
	"time"

	"github.com/strawfields/strawfields-backend/internal/cart"
)

// Status classifies the outcome of one lead submission.
const (
	StatusSuccess               = "success"
	StatusWebhookErrorCSVBackup = "webhook_error_csv_success"
	StatusError                 = "error"
)

// Lead is one inbound sales contact, optionally carrying the cart the
// visitor built before reaching out.
type Lead struct {
	SessionID string         `json:"session_id"`
	Name      string         `json:"name" validate:"required,max=120"`
	Company   string         `json:"company" validate:"max=160"`
	Email     string         `json:"email" validate:"required,email"`
	Phone     string         `json:"phone" validate:"max=32"`
	Country   string         `json:"country" validate:"max=80"`
	Message   string         `json:"message" validate:"max=2000"`
	Source    string         `json:"source" validate:"max=64"`
	Cart      *cart.Snapshot `json:"cart,omitempty"`
}

// SubmitResult is what the caller gets back regardless of which
// delivery path succeeded.
type SubmitResult struct {
	Status      string `json:"status"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// webhookPayload is the wire shape forwarded to the CRM webhook.
type webhookPayload struct {
	Lead        Lead      `json:"lead"`
	SubmittedAt time.Time `json:"submitted_at"`
}
