package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/rental-cart/internal/cart"
	"github.com/TemirB/rental-cart/internal/config"
	"github.com/TemirB/rental-cart/internal/domain"
	"github.com/TemirB/rental-cart/internal/kafka"
	"github.com/TemirB/rental-cart/internal/pkg/retry"
)

//go:generate mockgen -source internal/application/handler/handler.go -destination=internal/application/handler/handler_mock_test.go -package=handler

var (
	ErrBadEvent    = errors.New("bad item event")
	ErrAddItem     = errors.New("add item failed")
	ErrCircuitOpen = errors.New("circuit breaker open")
)

type Service interface {
	AddItem(ctx context.Context, session string, item domain.CartItem) (cart.View, error)
}

type brk interface {
	Allow() error
	Success()
	Failure()
}

type Handler struct {
	service     Service
	breaker     brk
	logger      *zap.Logger
	retryPolicy config.Retry
}

func NewHandler(service Service, breaker brk, retryPolicy config.Retry, logger *zap.Logger) *Handler {
	return &Handler{
		service:     service,
		breaker:     breaker,
		logger:      logger,
		retryPolicy: retryPolicy,
	}
}

// Handle adds the item carried by one "item added" message to its session's cart.
// Undecodable or invalid events are reported as kafka.ErrPoison before the breaker is
// consulted, so they never take a half-open trial.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	event, err := decode(message.Value)
	if err != nil {
		h.logger.Error("bad item event",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %w", kafka.ErrPoison, err)
	}

	if err := h.breaker.Allow(); err != nil {
		h.logger.Warn("circuit breaker is open",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	if err := retry.Do(ctx, h.retryPolicy, func() error {
		_, err := h.service.AddItem(ctx, event.SessionID, event.Item)
		if errors.Is(err, domain.ErrInvalidItem) {
			return retry.Permanent(err)
		}
		return err
	}); err != nil {
		h.logger.Error("add item failed after retries",
			zap.String("session", event.SessionID),
			zap.String("item_id", event.Item.ID),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return fmt.Errorf("%w: %v", ErrAddItem, err)
	}

	h.breaker.Success()
	h.logger.Info("item added to cart",
		zap.String("session", event.SessionID),
		zap.String("item_id", event.Item.ID),
		zap.Int("partition", message.Partition),
		zap.Int64("offset", message.Offset),
		zap.Int("value_bytes", len(message.Value)),
	)
	return nil
}

func decode(value []byte) (domain.ItemAddedEvent, error) {
	var event domain.ItemAddedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return event, fmt.Errorf("%w: %v", ErrBadEvent, err)
	}
	if strings.TrimSpace(event.SessionID) == "" {
		return event, fmt.Errorf("%w: missing session_id", ErrBadEvent)
	}
	if err := event.Item.Validate(); err != nil {
		return event, fmt.Errorf("%w: %w", ErrBadEvent, err)
	}
	return event, nil
}
