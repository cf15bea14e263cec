package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"mentormatch/internal/logger"
	"mentormatch/internal/metrics"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	BookingCreated          = "booking_created"
	BookingCanceledByMentor = "booking_canceled_by_mentor"
	BookingCanceledByMentee = "booking_canceled_by_mentee"
	PaymentConfirmed        = "payment_confirmed"
)

var ErrPublisherClosed = errors.New("publisher is closed")

// Event is the envelope written to the booking topic.
type Event struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	BookingID  int                    `json:"booking_id"`
	UserID     int                    `json:"user_id"`
	OccurredAt time.Time              `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}

func New(eventType string, bookingID, userID int, payload map[string]interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		BookingID:  bookingID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
	mu     sync.RWMutex
	closed bool
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Completion:   reportDelivery,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger:  kafka.LoggerFunc(logger.Errorf),
	}

	return &KafkaPublisher{writer: writer, topic: topic}, nil
}

// reportDelivery receives the outcome of async batches. Publish returns as
// soon as the message is buffered, so broker errors only surface here.
func reportDelivery(msgs []kafka.Message, err error) {
	if err == nil {
		return
	}
	metrics.RecordSideChannelFailure("event")
	logger.Error("event delivery failed", "messages", len(msgs), "error", err)
}

// Publish keys messages by booking id so every event of one booking lands
// on the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(e.BookingID)),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(e.Type)},
			{Key: "event-id", Value: []byte(e.ID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s to %s: %w", e.Type, p.topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
