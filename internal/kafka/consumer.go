package kafka

import (
	"context"
	"errors"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/rental-cart/internal/config"
	"github.com/TemirB/rental-cart/internal/observability"
)

//go:generate mockgen -source internal/kafka/consumer.go -destination=internal/kafka/consumer_mock_test.go -package=kafka

// ErrPoison marks a message that can never be processed. The consumer commits it so the
// partition moves on.
var ErrPoison = errors.New("poison message")

type MessageHandler interface {
	Handle(ctx context.Context, msg kafkago.Message) error
}

type Reader interface {
	Config() kafkago.ReaderConfig
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Consumer struct {
	handler MessageHandler
	reader  Reader
	zlogger *zap.Logger
	metrics observability.Metrics

	workers int
	backoff time.Duration
}

func NewReader(cfg config.Kafka) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.Group,
		Topic:          cfg.ItemsTopic,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        time.Second,
		CommitInterval: 0,
	})
}

func NewConsumer(handler MessageHandler, reader Reader, workers int, logger *zap.Logger, metrics observability.Metrics) *Consumer {
	if workers < 1 {
		workers = 1
	}
	return &Consumer{
		handler: handler,
		reader:  reader,
		zlogger: logger,
		metrics: metrics,
		workers: workers,
		backoff: 200 * time.Millisecond,
	}
}

// Start fetches until ctx is cancelled. Each message is handed to the pool and settled
// before the next fetch, so offsets are committed in the order they were received and a
// failed message is never skipped.
func (c *Consumer) Start(ctx context.Context) {
	rc := c.reader.Config()
	c.zlogger.Info("Starting Kafka consumer",
		zap.Strings("brokers", rc.Brokers),
		zap.String("group", rc.GroupID),
		zap.String("topic", rc.Topic),
		zap.Int("workers", c.workers),
	)

	pool := NewPool(c.workers)
	defer func() {
		pool.Close()
		pool.Wait()
	}()

	for {
		if ctx.Err() != nil {
			return
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			if isBenignFetchTimeout(err) {
				c.zlogger.Debug("fetch timeout (idle), backing off", zap.Error(err))
				sleepWithContext(ctx, 10*time.Second)
				continue
			}
			c.zlogger.Warn("FetchMessage error, backing off", zap.Error(err))
			sleepWithContext(ctx, 500*time.Millisecond)
			continue
		}

		if !c.settle(ctx, pool, msg) {
			return
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.zlogger.Warn(
				"commit failed",
				zap.Error(err),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			sleepWithContext(ctx, c.backoff)
			continue
		}
		c.zlogger.Debug("message committed",
			zap.String("topic", msg.Topic), zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))
	}
}

// settle runs the handler on msg until it succeeds or reports ErrPoison. Any other failure
// is retried after the backoff. It returns false when ctx ends first; msg is then left
// uncommitted for the next member of the group.
func (c *Consumer) settle(ctx context.Context, pool *Pool, msg kafkago.Message) bool {
	for attempt := 1; ; attempt++ {
		done := make(chan error, 1)
		if !pool.Submit(ctx, func() { done <- c.process(ctx, msg) }) {
			return false
		}

		var err error
		select {
		case err = <-done:
		case <-ctx.Done():
			return false
		}
		if err == nil || errors.Is(err, ErrPoison) {
			return true
		}

		c.zlogger.Warn("handler failed; retrying message",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		)
		sleepWithContext(ctx, c.backoff)
		if ctx.Err() != nil {
			return false
		}
	}
}

func (c *Consumer) process(ctx context.Context, msg kafkago.Message) error {
	start := time.Now()
	err := c.handler.Handle(ctx, msg)
	elapsed := time.Since(start)
	c.metrics.ObserveKafka(float64(elapsed.Microseconds())/1000.0, err == nil)

	if err != nil {
		level := c.zlogger.Error
		if errors.Is(err, ErrPoison) {
			level = c.zlogger.Warn
		}
		level("message handling failed",
			zap.Error(err),
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.Duration("elapsed", elapsed),
		)
		return err
	}

	c.zlogger.Debug("message handled",
		zap.String("topic", msg.Topic),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
		zap.Int("value_bytes", len(msg.Value)),
		zap.Duration("elapsed", elapsed),
	)
	return nil
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func isBenignFetchTimeout(err error) bool {
	s := err.Error()
	return strings.Contains(s, "Request Timed Out") ||
		strings.Contains(s, "no messages received from kafka within the allocated time")
}
