package chat

// Intent is a stable internal token for one top-level conversation
// goal. Quick-reply labels map onto intents; the emoji-laden label
// text never drives control flow on its own.
type Intent string

const (
	IntentOrder   Intent = "order_now"
	IntentBrowse  Intent = "browse_products"
	IntentPricing Intent = "pricing"
	IntentExpert  Intent = "talk_expert"
	IntentSample  Intent = "request_sample"
	IntentFAQ     Intent = "faq"
	IntentUnknown Intent = "unknown"
)

type intentRule struct {
	Intent   Intent
	Keywords []string
}

// intentRules is evaluated in order; the first rule with any keyword
// substring in the lowercased input wins.
var intentRules = []intentRule{
	{Intent: IntentOrder, Keywords: []string{string(IntentOrder), "place an order", "order now", "buy", "purchase", "🛒"}},
	{Intent: IntentBrowse, Keywords: []string{string(IntentBrowse), "browse", "product", "catalog", "sizes", "what do you sell", "🥤"}},
	{Intent: IntentPricing, Keywords: []string{string(IntentPricing), "price", "cost", "how much", "quote", "discount", "💰"}},
	{Intent: IntentExpert, Keywords: []string{string(IntentExpert), "expert", "human", "someone", "representative", "sales team", "📞"}},
	{Intent: IntentSample, Keywords: []string{string(IntentSample), "sample", "try before", "trial pack", "🧪"}},
}

func classifyIntent(normalized string) Intent {
	for _, rule := range intentRules {
		for _, kw := range rule.Keywords {
			if containsFold(normalized, kw) {
				return rule.Intent
			}
		}
	}
	return IntentUnknown
}

// standardQuickReplies covers every top-level intent; it is the reply
// set offered after the fallback and most terminal answers.
func standardQuickReplies() []QuickReply {
	return []QuickReply{
		{Token: string(IntentOrder), Label: "🛒 Order now"},
		{Token: string(IntentBrowse), Label: "🥤 Browse straws"},
		{Token: string(IntentPricing), Label: "💰 Bulk pricing"},
		{Token: string(IntentSample), Label: "🧪 Request a sample"},
		{Token: string(IntentExpert), Label: "📞 Talk to an expert"},
		{Token: string(IntentFAQ), Label: "❓ FAQs"},
	}
}
