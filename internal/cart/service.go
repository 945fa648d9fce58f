package cart

import (
	"context"
	"fmt"

	"github.com/strawfields/strawfields-backend/internal/catalog"
	pkgerrors "github.com/strawfields/strawfields-backend/pkg/errors"
	"github.com/strawfields/strawfields-backend/pkg/logger"
)

// SnapshotStore is the storage port behind the cart engine. The
// production implementation sits on Redis; tests inject an in-memory
// stub. The engine is the only writer of its keys.
type SnapshotStore interface {
	Get(ctx context.Context, sessionID string) (raw []byte, found bool, err error)
	Set(ctx context.Context, sessionID string, raw []byte) error
	Del(ctx context.Context, sessionID string) error
}

// AddInput carries one Add action.
type AddInput struct {
	ProductID string
	Color     catalog.Color
	Quantity  int
}

// Options are the operator-tunable cart quantities. Zero values take
// the package defaults.
type Options struct {
	MinAddQty   int
	DefaultStep int
}

func (o Options) withDefaults() Options {
	if o.MinAddQty <= 0 {
		o.MinAddQty = MinAddQty
	}
	if o.DefaultStep <= 0 {
		o.DefaultStep = DefaultStepQty
	}
	return o
}

// Service applies cart actions for a session, persisting a snapshot
// after every mutation.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Add(ctx context.Context, sessionID string, input AddInput) (*Cart, error)
	SetQuantity(ctx context.Context, sessionID string, key Key, qty int) (*Cart, error)
	Remove(ctx context.Context, sessionID string, key Key) (*Cart, error)
	Clear(ctx context.Context, sessionID string) (*Cart, error)
}

type service struct {
	store SnapshotStore
	opts  Options
	logg  *logger.Logger
}

// NewService builds a cart service backed by the provided snapshot store.
func NewService(store SnapshotStore, opts Options, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	return &service{store: store, opts: opts.withDefaults(), logg: logg}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	return s.load(ctx, sessionID), nil
}

func (s *service) Add(ctx context.Context, sessionID string, input AddInput) (*Cart, error) {
	product, ok := catalog.ByID(input.ProductID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown product")
	}
	if !catalog.ValidColor(input.Color) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown color variant")
	}
	if input.Quantity == 0 {
		input.Quantity = s.opts.DefaultStep
	}
	if input.Quantity < s.opts.MinAddQty {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity below minimum order").
			WithDetails(map[string]any{"min_qty": s.opts.MinAddQty})
	}

	c := s.load(ctx, sessionID)
	c.Add(product, input.Color, input.Quantity)
	s.persist(ctx, sessionID, c)
	return c, nil
}

func (s *service) SetQuantity(ctx context.Context, sessionID string, key Key, qty int) (*Cart, error) {
	c := s.load(ctx, sessionID)
	c.SetQuantity(key, qty)
	s.persist(ctx, sessionID, c)
	return c, nil
}

func (s *service) Remove(ctx context.Context, sessionID string, key Key) (*Cart, error) {
	c := s.load(ctx, sessionID)
	c.Remove(key)
	s.persist(ctx, sessionID, c)
	return c, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) (*Cart, error) {
	c := NewCart()
	if err := s.store.Del(ctx, sessionID); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart.clear_snapshot_failed")
	}
	return c, nil
}

// load restores the session's cart. A missing or corrupt snapshot
// yields a fresh empty cart; corruption is logged, never surfaced.
func (s *service) load(ctx context.Context, sessionID string) *Cart {
	raw, found, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart.snapshot_read_failed")
		}
		return NewCart()
	}
	if !found {
		return NewCart()
	}
	c, err := DecodeSnapshot(raw)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart.snapshot_corrupt_discarded")
		}
		return NewCart()
	}
	return c
}

// persist writes the snapshot best-effort. A failed write is logged
// and the mutated cart is still returned to the caller.
func (s *service) persist(ctx context.Context, sessionID string, c *Cart) {
	raw, err := EncodeSnapshot(c)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "cart.snapshot_encode_failed", err)
		}
		return
	}
	if err := s.store.Set(ctx, sessionID, raw); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart.snapshot_write_failed")
	}
}
