package payment

import (
	"context"
	"net/http"
	"sync"
	"time"

	"mentormatch/internal/apperr"
	"mentormatch/internal/booking"
	"mentormatch/internal/logger"
	"mentormatch/internal/metrics"
)

var (
	ErrNotPending = apperr.InvalidState("BOOKING_NOT_PENDING", "booking is not awaiting payment")
	ErrShutdown   = apperr.New(apperr.KindInternal, "PAYMENTS_UNAVAILABLE", "payments are not accepted while shutting down", http.StatusServiceUnavailable)
)

// Bookings is what the simulator needs from the booking core.
type Bookings interface {
	GetForMentee(ctx context.Context, bookingID, menteeID int) (*booking.Booking, error)
	ConfirmIfPending(ctx context.Context, bookingID int) (bool, error)
}

// Simulator stands in for a payment gateway. A payment is accepted at once
// and confirmed later by a timer that only flips bookings still pending.
type Simulator struct {
	bookings Bookings
	delay    time.Duration
	after    func(d time.Duration, f func()) stopper

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

type stopper interface {
	Stop() bool
}

func NewSimulator(bookings Bookings, delay time.Duration) *Simulator {
	return &Simulator{
		bookings: bookings,
		delay:    delay,
		after: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// MockPay validates the booking synchronously and schedules its confirmation.
func (s *Simulator) MockPay(ctx context.Context, bookingID, menteeID int) error {
	b, err := s.bookings.GetForMentee(ctx, bookingID, menteeID)
	if err != nil {
		return err
	}
	if b.Status != booking.StatusPending {
		return ErrNotPending
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrShutdown
	}

	s.inflight.Add(1)
	metrics.PaymentsInFlight.Inc()
	s.after(s.delay, func() { s.confirm(bookingID) })

	logger.Info("mock payment accepted", "booking_id", bookingID, "mentee_id", menteeID, "delay", s.delay.String())
	return nil
}

func (s *Simulator) confirm(bookingID int) {
	defer s.inflight.Done()
	defer metrics.PaymentsInFlight.Dec()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ok, err := s.bookings.ConfirmIfPending(ctx, bookingID)
	switch {
	case err != nil:
		metrics.RecordPayment(metrics.PaymentError)
		logger.Error("payment confirmation failed", "booking_id", bookingID, "error", err)
	case !ok:
		metrics.RecordPayment(metrics.PaymentNoop)
		logger.Info("payment confirmation skipped, booking no longer pending", "booking_id", bookingID)
	default:
		metrics.RecordPayment(metrics.PaymentConfirmed)
	}
}

// Shutdown stops accepting payments and waits for scheduled confirmations to
// run, or for ctx to expire.
func (s *Simulator) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
