package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/TemirB/rental-cart/internal/config"
	"github.com/TemirB/rental-cart/internal/domain"
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher sends checkout events keyed by session, so one session always lands on the
// same partition.
type Publisher struct {
	writer Writer
}

func NewWriter(cfg config.Kafka) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.CheckoutTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
}

func NewPublisher(w Writer) *Publisher {
	return &Publisher{writer: w}
}

func (p *Publisher) PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode checkout event: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(event.SessionID),
		Value: value,
		Time:  event.At,
	}); err != nil {
		return fmt.Errorf("write checkout event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
