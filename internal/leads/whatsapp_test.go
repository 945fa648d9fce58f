package leads

import (
	"net/url"
	"strings"
	"testing"

	"github.com/strawfields/strawfields-backend/internal/cart"
)

func TestWhatsAppURLStripsNonDigits(t *testing.T) {
	t.Parallel()

	link := WhatsAppURL("+84 (90) 123-4567", sampleLead())
	if !strings.HasPrefix(link, "https://wa.me/84901234567?text=") {
		t.Fatalf("link = %q", link)
	}
}

func TestWhatsAppURLIncludesCartSummary(t *testing.T) {
	t.Parallel()

	lead := sampleLead()
	lead.Cart = &cart.Snapshot{
		Items: []cart.SnapshotItem{
			{ID: "straw-10mm", Name: "10mm Smoothie", Price: 0.054, Quantity: 20000, Color: "green"},
		},
	}

	link := WhatsAppURL("84901234567", lead)
	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parsing link: %v", err)
	}
	text := parsed.Query().Get("text")
	if !strings.Contains(text, "Maya Tran") {
		t.Fatalf("text = %q, want lead name", text)
	}
	if !strings.Contains(text, "10mm Smoothie x20000 (green)") {
		t.Fatalf("text = %q, want cart line", text)
	}
}

func TestWhatsAppURLEmptyNumber(t *testing.T) {
	t.Parallel()

	if link := WhatsAppURL("n/a", sampleLead()); link != "" {
		t.Fatalf("link = %q, want empty", link)
	}
}
