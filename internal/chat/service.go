package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/strawfields/strawfields-backend/pkg/logger"
)

// StateStore is the storage port for per-session conversation state.
type StateStore interface {
	Get(ctx context.Context, sessionID string) (raw []byte, found bool, err error)
	Set(ctx context.Context, sessionID string, raw []byte) error
	Del(ctx context.Context, sessionID string) error
}

// Service resolves chat inputs for a session, maintaining the
// append-only message log and the FAQ cursor.
type Service interface {
	HandleMessage(ctx context.Context, sessionID, input string) (Response, error)
	History(ctx context.Context, sessionID string) ([]Message, error)
}

type service struct {
	store    StateStore
	resolver *Resolver
	logg     *logger.Logger
	now      func() time.Time
}

// NewService builds a chat service backed by the provided state store.
func NewService(store StateStore, resolver *Resolver, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("state store required")
	}
	if resolver == nil {
		resolver = NewResolver(DefaultPageSize)
	}
	return &service{store: store, resolver: resolver, logg: logg, now: time.Now}, nil
}

func (s *service) HandleMessage(ctx context.Context, sessionID, input string) (Response, error) {
	input = strings.TrimSpace(input)
	state := s.load(ctx, sessionID)

	state.Messages = append(state.Messages, Message{Role: RoleUser, Text: input, At: s.now()})

	resp := s.resolver.Resolve(input, state.FAQCursor)
	state.FAQCursor = resp.NextCursor
	state.Messages = append(state.Messages, Message{Role: RoleBot, Text: resp.Text, At: s.now()})

	s.persist(ctx, sessionID, state)
	return resp, nil
}

// History returns the session's message log. A fresh session yields an
// empty slice, never nil, so the wire shape is a stable JSON array.
func (s *service) History(ctx context.Context, sessionID string) ([]Message, error) {
	msgs := s.load(ctx, sessionID).Messages
	if msgs == nil {
		msgs = []Message{}
	}
	return msgs, nil
}

// load restores the session's conversation. Missing or corrupt state
// yields a fresh conversation; corruption is logged, never surfaced.
func (s *service) load(ctx context.Context, sessionID string) *ConversationState {
	raw, found, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "chat.state_read_failed")
		}
		return &ConversationState{}
	}
	if !found {
		return &ConversationState{}
	}
	var state ConversationState
	if err := json.Unmarshal(raw, &state); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "chat.state_corrupt_discarded")
		}
		return &ConversationState{}
	}
	return &state
}

func (s *service) persist(ctx context.Context, sessionID string, state *ConversationState) {
	raw, err := json.Marshal(state)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "chat.state_encode_failed", err)
		}
		return
	}
	if err := s.store.Set(ctx, sessionID, raw); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "chat.state_write_failed")
	}
}
