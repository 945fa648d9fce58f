package chat

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is one entry in a conversation log. Entries are append-only.
type Message struct {
	Role Role      `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// QuickReply is a one-click canned input. Token is the stable internal
// identifier the resolver matches on; Label is presentation only and
// may carry emoji.
type QuickReply struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

// Component directs the widget to render an embedded UI element
// alongside the bot text.
type Component string

const (
	ComponentNone            Component = ""
	ComponentProductSelector Component = "product_selector"
	ComponentOrderForm       Component = "order_form"
)

// Response is the structured output of one resolution step.
type Response struct {
	Text         string       `json:"text"`
	QuickReplies []QuickReply `json:"quick_replies,omitempty"`
	Component    Component    `json:"component,omitempty"`
	NextCursor   int          `json:"-"`
}

// ConversationState is the session-scoped chat state. Messages never
// shrink; FAQCursor is reset to zero by any non-pagination input.
type ConversationState struct {
	Messages  []Message `json:"messages"`
	FAQCursor int       `json:"faq_cursor"`
}
