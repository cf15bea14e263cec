package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/bookings", "201", 0.02)
	RecordHTTPRequest("POST", "/bookings", "201", 0.03)
	RecordHTTPRequest("POST", "/bookings", "400", 0.01)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bookings", "201")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bookings", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordBooking(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("pending")
	RecordBooking("pending")
	RecordBooking("confirmed")

	assert.Equal(t, float64(2), testutil.ToFloat64(BookingsTotal.WithLabelValues("pending")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BookingsTotal.WithLabelValues("confirmed")))
}

func TestRecordClaimConflict(t *testing.T) {
	before := testutil.ToFloat64(BookingClaimConflictsTotal)
	RecordClaimConflict()
	assert.Equal(t, before+1, testutil.ToFloat64(BookingClaimConflictsTotal))
}

func TestRecordBookingCancellation(t *testing.T) {
	BookingCancellationsTotal.Reset()

	RecordBookingCancellation("mentor")
	RecordBookingCancellation("mentee")
	RecordBookingCancellation("mentee")

	assert.Equal(t, float64(1), testutil.ToFloat64(BookingCancellationsTotal.WithLabelValues("mentor")))
	assert.Equal(t, float64(2), testutil.ToFloat64(BookingCancellationsTotal.WithLabelValues("mentee")))
}

func TestRecordPayment(t *testing.T) {
	PaymentOutcomesTotal.Reset()

	RecordPayment(PaymentConfirmed)
	RecordPayment(PaymentNoop)

	assert.Equal(t, float64(1), testutil.ToFloat64(PaymentOutcomesTotal.WithLabelValues(PaymentConfirmed)))
	assert.Equal(t, float64(1), testutil.ToFloat64(PaymentOutcomesTotal.WithLabelValues(PaymentNoop)))
	assert.Equal(t, float64(0), testutil.ToFloat64(PaymentOutcomesTotal.WithLabelValues(PaymentError)))
}

func TestRecordSideChannelFailure(t *testing.T) {
	SideChannelFailuresTotal.Reset()

	RecordSideChannelFailure("email")

	assert.Equal(t, float64(1), testutil.ToFloat64(SideChannelFailuresTotal.WithLabelValues("email")))
}

func TestRecordReviewAndEmail(t *testing.T) {
	EmailsSentTotal.Reset()
	before := testutil.ToFloat64(ReviewsTotal)

	RecordReview()
	RecordEmail("sent")

	assert.Equal(t, before+1, testutil.ToFloat64(ReviewsTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("sent")))
}
