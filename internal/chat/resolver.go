package chat

import (
	"fmt"
	"strings"
)

// DefaultPageSize is the fixed FAQ page size.
const DefaultPageSize = 3

const (
	tokenFAQNext = "faq_next"
	tokenFAQPrev = "faq_prev"
)

// Resolver maps one visitor input plus the current FAQ cursor to a
// deterministic response. It never errors: unmatched input terminates
// in the fallback response.
type Resolver struct {
	pageSize int
}

// NewResolver builds a resolver with the given FAQ page size.
func NewResolver(pageSize int) *Resolver {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Resolver{pageSize: pageSize}
}

// Resolve applies the resolution order: pagination command, general
// FAQ trigger, FAQ lookup, intent match, fallback. Every non-pagination
// resolution resets the cursor to zero.
func (r *Resolver) Resolve(input string, cursor int) Response {
	normalized := strings.ToLower(strings.TrimSpace(input))

	if delta, ok := parsePagination(normalized); ok {
		return r.paginate(cursor, delta)
	}

	if isFAQTrigger(normalized) {
		return r.faqPage(cursor)
	}

	if entry := matchFAQ(normalized); entry != nil {
		return Response{
			Text:         entry.Answer,
			QuickReplies: standardQuickReplies(),
			NextCursor:   0,
		}
	}

	if intent := classifyIntent(normalized); intent != IntentUnknown {
		return intentResponse(intent)
	}

	return Response{
		Text:         "Sorry, I didn't quite get that. Here's what I can help with:",
		QuickReplies: standardQuickReplies(),
		NextCursor:   0,
	}
}

// parsePagination recognizes the nav tokens and their labels. The
// token may carry a page hint ("faq_next:2"); the hint is advisory
// only, the cursor always moves by one and clamps.
func parsePagination(normalized string) (delta int, ok bool) {
	switch {
	case strings.HasPrefix(normalized, tokenFAQNext), strings.Contains(normalized, "more faqs"), strings.Contains(normalized, "next ➡"):
		return 1, true
	case strings.HasPrefix(normalized, tokenFAQPrev), strings.Contains(normalized, "previous faqs"), strings.Contains(normalized, "⬅ previous"), strings.Contains(normalized, "⬅️ previous"):
		return -1, true
	}
	return 0, false
}

func isFAQTrigger(normalized string) bool {
	for _, kw := range []string{string(IntentFAQ), "frequently asked", "common questions", "❓"} {
		if containsFold(normalized, kw) {
			return true
		}
	}
	return false
}

func matchFAQ(normalized string) *FAQEntry {
	for i := range faqEntries {
		entry := &faqEntries[i]
		if normalized == strings.ToLower(entry.Question) {
			return entry
		}
		for _, kw := range entry.Keywords {
			if containsFold(normalized, kw) {
				return entry
			}
		}
	}
	return nil
}

// paginate moves the cursor by one page, clamped to the valid range.
// Paging forward past the last page returns a terminal message and
// leaves the cursor at the clamped maximum; paging back from page zero
// stays on page zero.
func (r *Resolver) paginate(cursor, delta int) Response {
	maxPage := r.maxPage()
	target := cursor + delta
	if delta > 0 && target > maxPage {
		return Response{
			Text: "That's all of our FAQs! Anything else I can help with?",
			QuickReplies: append(
				[]QuickReply{{Token: fmt.Sprintf("%s:%d", tokenFAQPrev, maxPage-1), Label: "⬅️ Previous"}},
				standardQuickReplies()...,
			),
			NextCursor: maxPage,
		}
	}
	return r.faqPage(clamp(target, 0, maxPage))
}

// faqPage renders the page at cursor. Nav controls are contextual: no
// "previous" on page zero, no "next" when nothing remains.
func (r *Resolver) faqPage(cursor int) Response {
	maxPage := r.maxPage()
	cursor = clamp(cursor, 0, maxPage)

	start := cursor * r.pageSize
	end := start + r.pageSize
	if end > len(faqEntries) {
		end = len(faqEntries)
	}
	page := faqEntries[start:end]

	replies := make([]QuickReply, 0, len(page)+2)
	for _, entry := range page {
		replies = append(replies, QuickReply{Token: entry.Question, Label: entry.Question})
	}
	if cursor > 0 {
		replies = append(replies, QuickReply{Token: fmt.Sprintf("%s:%d", tokenFAQPrev, cursor-1), Label: "⬅️ Previous"})
	}
	if end < len(faqEntries) {
		replies = append(replies, QuickReply{Token: fmt.Sprintf("%s:%d", tokenFAQNext, cursor+1), Label: "Next ➡️"})
	}

	return Response{
		Text:         fmt.Sprintf("Here are some frequently asked questions (page %d of %d). Tap one:", cursor+1, maxPage+1),
		QuickReplies: replies,
		NextCursor:   cursor,
	}
}

func intentResponse(intent Intent) Response {
	switch intent {
	case IntentOrder:
		return Response{
			Text:         "Great, let's get you set up! Pick a straw size and quantity below and I'll prepare a quote.",
			Component:    ComponentProductSelector,
			QuickReplies: []QuickReply{{Token: string(IntentExpert), Label: "📞 Talk to an expert"}},
			NextCursor:   0,
		}
	case IntentBrowse:
		return Response{
			Text:         "We make rice straws in four sizes: 6.5mm cocktail, 8mm standard, 10mm smoothie, and 12mm bubble tea — each in white, orange, green, black, and red.",
			Component:    ComponentProductSelector,
			QuickReplies: standardQuickReplies(),
			NextCursor:   0,
		}
	case IntentPricing:
		return Response{
			Text:         "Pricing starts at $0.04 per straw and drops with volume: 10% off from 5,000 units, 15% from 10,000, and 20% from 25,000 on quote previews. Final tiers are confirmed on your cart.",
			QuickReplies: []QuickReply{{Token: string(IntentOrder), Label: "🛒 Order now"}, {Token: string(IntentExpert), Label: "📞 Talk to an expert"}},
			NextCursor:   0,
		}
	case IntentExpert:
		return Response{
			Text:         "I'll connect you with our sales team on WhatsApp — they usually reply within the hour. You can also leave your details and we'll call you back.",
			Component:    ComponentOrderForm,
			QuickReplies: []QuickReply{{Token: string(IntentSample), Label: "🧪 Request a sample"}},
			NextCursor:   0,
		}
	case IntentSample:
		return Response{
			Text:         "Happy to send you a sample pack! Fill in your details below and we'll ship one out.",
			Component:    ComponentOrderForm,
			QuickReplies: []QuickReply{{Token: string(IntentExpert), Label: "📞 Talk to an expert"}},
			NextCursor:   0,
		}
	}
	return Response{
		Text:         "Sorry, I didn't quite get that. Here's what I can help with:",
		QuickReplies: standardQuickReplies(),
		NextCursor:   0,
	}
}

func (r *Resolver) maxPage() int {
	if len(faqEntries) == 0 {
		return 0
	}
	return (len(faqEntries) - 1) / r.pageSize
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func containsFold(normalized, keyword string) bool {
	return strings.Contains(normalized, strings.ToLower(keyword))
}
