package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/pkg/clock"
	"travel-loyalty-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// KafkaPublisher keys messages by booking id so one booking's events stay ordered.
type KafkaPublisher struct {
	writer MessageWriter
	clock  clock.Clock
	logger *slog.Logger
}

func NewKafkaPublisher(writer MessageWriter, clk clock.Clock, logger *slog.Logger) *KafkaPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaPublisher{writer: writer, clock: clk, logger: logger}
}

func (p *KafkaPublisher) PublishCancellationExecuted(ctx context.Context, result *cancellation.Result) error {
	data := NewCancellationExecutedEvent(result)
	envelope := CloudEvent{
		SpecVersion:     specVersion,
		ID:              uuid.NewString(),
		Source:          eventSource,
		Type:            EventTypeCancellationExecuted,
		Subject:         data.BookingID,
		Time:            p.clock.Now(),
		DataContentType: "application/json",
		Data:            data,
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return errs.Wrap(err, "failed to encode cancellation event")
	}

	msg := kafka.Message{
		Key:   []byte(data.BookingID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "ce_type", Value: []byte(envelope.Type)},
			{Key: "ce_id", Value: []byte(envelope.ID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "failed to publish %s", envelope.Type)
	}

	p.logger.DebugContext(ctx, "cancellation event published",
		"event_id", envelope.ID,
		"booking_id", data.BookingID,
		"outcome", data.Outcome)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishCancellationExecuted(context.Context, *cancellation.Result) error {
	return nil
}
