package payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mentormatch/internal/booking"
	"mentormatch/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookings struct {
	mu         sync.Mutex
	booking    *booking.Booking
	getErr     error
	confirmed  bool
	confirmErr error
	confirms   []int
}

func (f *fakeBookings) GetForMentee(_ context.Context, _, _ int) (*booking.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookings) ConfirmIfPending(_ context.Context, id int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirms = append(f.confirms, id)
	return f.confirmed, f.confirmErr
}

type manualTimer struct{}

func (manualTimer) Stop() bool { return false }

// newManualSimulator returns a simulator whose timers fire only when the test
// calls the returned function.
func newManualSimulator(b Bookings) (*Simulator, func()) {
	sim := NewSimulator(b, time.Minute)
	var pending []func()
	sim.after = func(_ time.Duration, f func()) stopper {
		pending = append(pending, f)
		return manualTimer{}
	}
	fire := func() {
		for _, f := range pending {
			f()
		}
		pending = nil
	}
	return sim, fire
}

func TestMockPay_ConfirmsAfterDelay(t *testing.T) {
	metrics.PaymentOutcomesTotal.Reset()
	fb := &fakeBookings{booking: &booking.Booking{ID: 7, Status: booking.StatusPending}, confirmed: true}
	sim, fire := newManualSimulator(fb)

	require.NoError(t, sim.MockPay(context.Background(), 7, 5))
	assert.Empty(t, fb.confirms, "confirmation must not run synchronously")

	fire()

	assert.Equal(t, []int{7}, fb.confirms)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.PaymentOutcomesTotal.WithLabelValues(metrics.PaymentConfirmed)))
}

func TestMockPay_CanceledBeforeTimerIsNoop(t *testing.T) {
	metrics.PaymentOutcomesTotal.Reset()
	fb := &fakeBookings{booking: &booking.Booking{ID: 7, Status: booking.StatusPending}, confirmed: false}
	sim, fire := newManualSimulator(fb)

	require.NoError(t, sim.MockPay(context.Background(), 7, 5))
	fire()

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.PaymentOutcomesTotal.WithLabelValues(metrics.PaymentNoop)))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.PaymentOutcomesTotal.WithLabelValues(metrics.PaymentConfirmed)))
}

func TestMockPay_ConfirmErrorIsRecorded(t *testing.T) {
	metrics.PaymentOutcomesTotal.Reset()
	fb := &fakeBookings{booking: &booking.Booking{ID: 7, Status: booking.StatusPending}, confirmErr: errors.New("db down")}
	sim, fire := newManualSimulator(fb)

	require.NoError(t, sim.MockPay(context.Background(), 7, 5))
	fire()

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.PaymentOutcomesTotal.WithLabelValues(metrics.PaymentError)))
}

func TestMockPay_Rejections(t *testing.T) {
	tests := []struct {
		name string
		fb   *fakeBookings
		want error
	}{
		{"not found", &fakeBookings{getErr: booking.ErrNotFound}, booking.ErrNotFound},
		{"already confirmed", &fakeBookings{booking: &booking.Booking{ID: 7, Status: booking.StatusConfirmed}}, ErrNotPending},
		{"canceled", &fakeBookings{booking: &booking.Booking{ID: 7, Status: booking.StatusCanceled}}, ErrNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, fire := newManualSimulator(tt.fb)

			err := sim.MockPay(context.Background(), 7, 5)
			fire()

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, tt.fb.confirms)
		})
	}
}

func TestShutdown_WaitsForScheduledConfirmations(t *testing.T) {
	fb := &fakeBookings{booking: &booking.Booking{ID: 7, Status: booking.StatusPending}, confirmed: true}
	sim := NewSimulator(fb, 10*time.Millisecond)

	require.NoError(t, sim.MockPay(context.Background(), 7, 5))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sim.Shutdown(ctx))

	fb.mu.Lock()
	assert.Equal(t, []int{7}, fb.confirms)
	fb.mu.Unlock()

	assert.ErrorIs(t, sim.MockPay(context.Background(), 7, 5), ErrShutdown)
}

func TestShutdown_HonorsContext(t *testing.T) {
	fb := &fakeBookings{booking: &booking.Booking{ID: 7, Status: booking.StatusPending}}
	sim, _ := newManualSimulator(fb)

	require.NoError(t, sim.MockPay(context.Background(), 7, 5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sim.Shutdown(ctx), context.Canceled)
}
