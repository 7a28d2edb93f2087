package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/rental-cart/internal/cache"
	"github.com/TemirB/rental-cart/internal/cart"
	"github.com/TemirB/rental-cart/internal/domain"
	"github.com/TemirB/rental-cart/internal/observability"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type Storage interface {
	Get(ctx context.Context, session, key string) ([]byte, error)
	Set(ctx context.Context, session, key string, value []byte) error
}

type Publisher interface {
	PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error
}

type SessionLister interface {
	RecentSessions(ctx context.Context, limit int) ([]string, error)
}

type Options struct {
	CheckoutURL string
	SessionCap  int
}

type Service struct {
	storage     Storage
	publisher   Publisher
	sessions    *cache.Cache[*cart.Store]
	locks       *sessionLocks
	checkoutURL string
	logger      *zap.Logger
	metrics     observability.Metrics
	now         func() time.Time
}

func NewService(storage Storage, publisher Publisher, opts Options, logger *zap.Logger, metrics observability.Metrics) (*Service, error) {
	s := &Service{
		storage:     storage,
		publisher:   publisher,
		checkoutURL: opts.CheckoutURL,
		logger:      logger,
		metrics:     metrics,
		locks:       newSessionLocks(),
		now:         time.Now,
	}

	sessions, err := cache.New(opts.SessionCap, s.open)
	if err != nil {
		return nil, err
	}
	s.sessions = sessions
	return s, nil
}

func (s *Service) open(ctx context.Context, id string) *cart.Store {
	store := cart.New(id, s.storage, s.checkoutURL, s.logger)
	store.Load(ctx)
	s.logger.Debug("Session opened", zap.String("session", id))
	return store
}

// Warm opens the most recently active sessions ahead of their first request.
func (s *Service) Warm(ctx context.Context, lister SessionLister) {
	n := s.sessions.Warm(ctx, lister)
	s.logger.Info("Sessions warmed", zap.Int("count", n))
}

// Close tears the store of a session down; the next request reloads it from storage.
func (s *Service) Close(id string) {
	if s.sessions.Remove(id) {
		s.logger.Debug("Session closed", zap.String("session", id))
	}
}

// Result is the outcome of an action: the fresh view and, after a successful checkout,
// where the visitor goes next.
type Result struct {
	View     cart.View
	Redirect string
}

func (s *Service) View(ctx context.Context, id string) (cart.View, error) {
	res, err := s.do(ctx, id, "view", func(*cart.Store) error { return nil })
	return res.View, err
}

func (s *Service) AddItem(ctx context.Context, id string, item domain.CartItem) (cart.View, error) {
	res, err := s.do(ctx, id, "add", func(st *cart.Store) error {
		return st.AddItem(ctx, item)
	})
	return res.View, err
}

func (s *Service) ToggleSelect(ctx context.Context, id, itemID string, on bool) (cart.View, error) {
	res, err := s.do(ctx, id, "toggle", func(st *cart.Store) error {
		return st.ToggleSelect(ctx, itemID, on)
	})
	return res.View, err
}

func (s *Service) ChangeQuantity(ctx context.Context, id, itemID string, delta int) (cart.View, error) {
	res, err := s.do(ctx, id, "quantity", func(st *cart.Store) error {
		return st.ChangeQuantity(ctx, itemID, delta)
	})
	return res.View, err
}

func (s *Service) RemoveItem(ctx context.Context, id, itemID string) (cart.View, error) {
	res, err := s.do(ctx, id, "remove", func(st *cart.Store) error {
		return st.RemoveItem(ctx, itemID)
	})
	return res.View, err
}

func (s *Service) ClearCart(ctx context.Context, id string, confirmed bool) (cart.View, error) {
	res, err := s.do(ctx, id, "clear", func(st *cart.Store) error {
		return st.ClearCart(ctx, confirmed)
	})
	return res.View, err
}

func (s *Service) SelectAll(ctx context.Context, id string, on bool) (cart.View, error) {
	res, err := s.do(ctx, id, "select_all", func(st *cart.Store) error {
		return st.SelectAll(ctx, on)
	})
	return res.View, err
}

// Checkout hands the selection over to the checkout view. With nothing selected the
// result carries the notification and no redirect.
func (s *Service) Checkout(ctx context.Context, id string) (Result, error) {
	var (
		redirect string
		event    domain.CheckoutEvent
	)

	res, err := s.do(ctx, id, "checkout", func(st *cart.Store) error {
		target, ok, err := st.ProceedToCheckout(ctx)
		if err != nil || !ok {
			return err
		}
		redirect = target
		event = domain.CheckoutEvent{
			SessionID: id,
			ItemIDs:   st.Selected(),
			Subtotal:  st.Subtotal(),
			Total:     st.Total(),
			At:        s.now().UTC(),
		}
		return nil
	})
	if err != nil || redirect == "" {
		return res, err
	}

	res.Redirect = redirect
	s.metrics.ObserveCheckout(len(event.ItemIDs), event.Total)
	s.publish(ctx, event)
	s.Close(id)
	return res, nil
}

func (s *Service) publish(ctx context.Context, event domain.CheckoutEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishCheckout(ctx, event); err != nil {
		s.logger.Error("Failed to publish checkout event",
			zap.String("session", event.SessionID),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("Checkout event published",
		zap.String("session", event.SessionID),
		zap.Int("items", len(event.ItemIDs)),
		zap.Int64("total", event.Total),
	)
}

// do runs fn on the session's store under the session lock. A store taken from the cache
// is refreshed first so writes from other processes and the wishlist are visible; a store
// that was evicted or closed while a request held the lock is reopened only after that
// request has persisted.
func (s *Service) do(ctx context.Context, id, action string, fn func(*cart.Store) error) (Result, error) {
	t0 := time.Now()

	unlock := s.locks.lock(id)
	defer unlock()

	st, hit := s.sessions.Acquire(ctx, id)
	if hit {
		if err := st.Refresh(ctx); err != nil {
			s.logger.Warn("Session refresh failed, using open state",
				zap.String("session", id),
				zap.String("action", action),
				zap.Error(err),
			)
		}
	}

	err := fn(st)
	ms := convertToMs(t0)
	s.metrics.ObserveAction(action, ms, err == nil)

	if err != nil {
		log := s.logger.Error
		if errors.Is(err, domain.ErrInvalidItem) {
			log = s.logger.Warn
		}
		log("Cart action failed",
			zap.String("session", id),
			zap.String("action", action),
			zap.Error(err),
		)
		return Result{View: st.Render()}, err
	}

	s.logger.Debug("Cart action applied",
		zap.String("session", id),
		zap.String("action", action),
		zap.Float64("ms", ms),
	)
	return Result{View: st.Render()}, nil
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
