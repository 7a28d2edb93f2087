package storage

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/TemirB/rental-cart/internal/config"
	"github.com/TemirB/rental-cart/internal/domain"
	"github.com/TemirB/rental-cart/internal/pkg/retry"
)

type breaker interface {
	Allow() error
	Success()
	Failure()
}

// Resilient guards a remote KV with a circuit breaker and retries with backoff.
// A missing key is a successful call and is never retried.
type Resilient struct {
	next    KV
	breaker breaker
	policy  config.Retry
	logger  *zap.Logger
}

func NewResilient(next KV, brk breaker, policy config.Retry, logger *zap.Logger) *Resilient {
	return &Resilient{
		next:    next,
		breaker: brk,
		policy:  policy,
		logger:  logger,
	}
}

func (r *Resilient) Get(ctx context.Context, session, key string) ([]byte, error) {
	var out []byte
	err := r.do(ctx, "get", session, key, func() error {
		v, err := r.next.Get(ctx, session, key)
		if errors.Is(err, domain.ErrNotFound) {
			return retry.Permanent(err)
		}
		out = v
		return err
	})
	return out, err
}

func (r *Resilient) Set(ctx context.Context, session, key string, value []byte) error {
	return r.do(ctx, "set", session, key, func() error {
		return r.next.Set(ctx, session, key, value)
	})
}

func (r *Resilient) do(ctx context.Context, op, session, key string, fn func() error) error {
	if err := r.breaker.Allow(); err != nil {
		r.logger.Warn("storage circuit is open",
			zap.String("op", op),
			zap.String("session", session),
			zap.String("key", key),
		)
		return err
	}

	err := retry.Do(ctx, r.policy, fn)
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		r.breaker.Success()
		return err
	}

	r.breaker.Failure()
	r.logger.Error("storage call failed after retries",
		zap.String("op", op),
		zap.String("session", session),
		zap.String("key", key),
		zap.Error(err),
	)
	return err
}
