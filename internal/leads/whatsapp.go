package leads

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppURL builds a wa.me deep link prefilled with the lead's
// inquiry and a short cart summary, so the conversation can continue
// off-site with full context.
func WhatsAppURL(number string, lead Lead) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if digits == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Hi StrawFields!")
	if lead.Name != "" {
		sb.WriteString(" I'm ")
		sb.WriteString(lead.Name)
		if lead.Company != "" {
			sb.WriteString(" from ")
			sb.WriteString(lead.Company)
		}
		sb.WriteString(".")
	}
	if lead.Cart != nil && len(lead.Cart.Items) > 0 {
		sb.WriteString(" I'd like a quote for:")
		for _, item := range lead.Cart.Items {
			sb.WriteString(fmt.Sprintf(" %s x%d (%s);", item.Name, item.Quantity, item.Color))
		}
	}
	if lead.Message != "" {
		sb.WriteString(" ")
		sb.WriteString(lead.Message)
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(sb.String()))
}
