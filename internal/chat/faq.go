package chat

// FAQEntry is one canned question/answer pair. Keywords are lowercase
// substrings matched against the visitor's input; Question doubles as
// the exact-match trigger and the quick-reply label.
type FAQEntry struct {
	Question string
	Answer   string
	Keywords []string
}

// faqEntries is ordered: lookup is first-match-wins with no ranking by
// specificity, so narrower entries sit above broader ones.
var faqEntries = []FAQEntry{
	{
		Question: "What is the minimum order quantity?",
		Answer:   "Our minimum order is 1,000 straws per size and color. Bulk discounts start at 50,000 units.",
		Keywords: []string{"minimum order", "moq", "smallest order", "minimum quantity"},
	},
	{
		Question: "How long do rice straws last in a drink?",
		Answer:   "StrawFields straws hold their shape for 2-3 hours in cold drinks and about 40 minutes in hot drinks, without getting soggy.",
		Keywords: []string{"last in", "soggy", "how long do", "dissolve"},
	},
	{
		Question: "What are the straws made of?",
		Answer:   "Rice flour and tapioca starch, nothing else. They are 100% edible, gluten-free, and fully biodegrade within 90 days.",
		Keywords: []string{"made of", "ingredient", "biodegrad", "edible", "gluten"},
	},
	{
		Question: "Do you ship internationally?",
		Answer:   "Yes. We ship worldwide by sea freight for bulk orders and air freight for urgent ones. Delivery takes 2-6 weeks depending on destination.",
		Keywords: []string{"ship", "delivery", "international", "freight", "how long until"},
	},
	{
		Question: "Can I get custom branding or packaging?",
		Answer:   "Custom printed packaging is available from 100,000 units. The straws themselves cannot be printed, but wrappers and boxes can carry your brand.",
		Keywords: []string{"custom", "branding", "logo", "packaging", "print"},
	},
	{
		Question: "What is the shelf life?",
		Answer:   "18 months from production when stored sealed in a cool, dry place.",
		Keywords: []string{"shelf life", "expire", "storage", "store them"},
	},
	{
		Question: "Do you have food safety certifications?",
		Answer:   "Our production is HACCP and ISO 22000 certified, and every batch ships with a certificate of analysis.",
		Keywords: []string{"certif", "haccp", "iso", "food safety", "fda"},
	},
	{
		Question: "What payment terms do you offer?",
		Answer:   "30% deposit on order confirmation, balance before shipment. Established partners can apply for net-30 terms.",
		Keywords: []string{"payment", "deposit", "invoice", "net-30", "net 30"},
	},
}

// FAQs returns the fixed FAQ list in presentation order.
func FAQs() []FAQEntry {
	out := make([]FAQEntry, len(faqEntries))
	copy(out, faqEntries)
	return out
}
