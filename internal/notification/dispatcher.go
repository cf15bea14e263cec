package notification

import (
	"context"
	"encoding/json"

	"mentormatch/internal/email"
	"mentormatch/internal/events"
	"mentormatch/internal/logger"
	"mentormatch/internal/metrics"
)

const (
	channelNotification = "notification"
	channelEvent        = "event"
	channelEmail        = "email"
)

// Mailer is the subset of the email service the dispatcher needs.
type Mailer interface {
	Send(ctx context.Context, to, name, subject, body string) error
}

// Dispatcher fans a booking event out to the in-app feed, the event bus and
// email. Every method swallows its failures: callers have already committed.
type Dispatcher struct {
	repo      Repository
	publisher events.Publisher
	mailer    Mailer
}

func NewDispatcher(repo Repository, publisher events.Publisher, mailer Mailer) *Dispatcher {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Dispatcher{repo: repo, publisher: publisher, mailer: mailer}
}

func (d *Dispatcher) Notify(ctx context.Context, userID int, eventType string, bookingID int, payload map[string]interface{}) {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	payload["booking_id"] = bookingID

	raw, err := json.Marshal(payload)
	if err != nil {
		d.fail(channelNotification, err, "user_id", userID, "type", eventType)
		return
	}

	if _, err := d.repo.Insert(ctx, userID, eventType, raw); err != nil {
		d.fail(channelNotification, err, "user_id", userID, "type", eventType)
	}

	if err := d.publisher.Publish(ctx, events.New(eventType, bookingID, userID, payload)); err != nil {
		d.fail(channelEvent, err, "booking_id", bookingID, "type", eventType)
	}
}

func (d *Dispatcher) EmailNotify(ctx context.Context, to, name string, msg email.Message) {
	if d.mailer == nil || to == "" {
		return
	}
	if err := d.mailer.Send(ctx, to, name, msg.Subject, msg.Body); err != nil {
		d.fail(channelEmail, err, "subject", msg.Subject)
	}
}

func (d *Dispatcher) fail(channel string, err error, args ...any) {
	metrics.RecordSideChannelFailure(channel)
	logger.Error("side channel delivery failed", append([]any{"channel", channel, "error", err}, args...)...)
}
