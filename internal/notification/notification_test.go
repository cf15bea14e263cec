package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"mentormatch/internal/auth"
	"mentormatch/internal/email"
	"mentormatch/internal/events"
	"mentormatch/internal/metrics"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var notificationColumns = []string{"id", "user_id", "type", "payload", "is_read", "created_at"}

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return NewRepository(sqlxDB), mock
}

type recordingPublisher struct {
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type recordingMailer struct {
	subjects []string
	err      error
}

func (m *recordingMailer) Send(_ context.Context, _, _, subject, _ string) error {
	m.subjects = append(m.subjects, subject)
	return m.err
}

func TestDispatcher_Notify(t *testing.T) {
	repo, mock := setupMock(t)
	pub := &recordingPublisher{}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications (user_id, type, payload)")).
		WithArgs(4, events.BookingCreated, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(notificationColumns).AddRow(1, 4, events.BookingCreated, []byte(`{}`), false, time.Now()))

	d := NewDispatcher(repo, pub, nil)
	d.Notify(context.Background(), 4, events.BookingCreated, 10, map[string]interface{}{"mentee_id": 5})

	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, pub.events, 1)
	assert.Equal(t, 10, pub.events[0].BookingID)
	assert.Equal(t, 4, pub.events[0].UserID)
	assert.Equal(t, 10, pub.events[0].Payload["booking_id"])
}

func TestDispatcher_NotifySwallowsFailures(t *testing.T) {
	metrics.SideChannelFailuresTotal.Reset()
	repo, mock := setupMock(t)
	pub := &recordingPublisher{err: assert.AnError}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).WillReturnError(assert.AnError)

	d := NewDispatcher(repo, pub, nil)
	assert.NotPanics(t, func() {
		d.Notify(context.Background(), 4, events.PaymentConfirmed, 10, nil)
	})

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.SideChannelFailuresTotal.WithLabelValues(channelNotification)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.SideChannelFailuresTotal.WithLabelValues(channelEvent)))
}

func TestDispatcher_EmailNotify(t *testing.T) {
	metrics.SideChannelFailuresTotal.Reset()
	mailer := &recordingMailer{}
	d := NewDispatcher(nil, nil, mailer)

	d.EmailNotify(context.Background(), "m@example.com", "Maria", email.Message{Subject: "hello"})
	d.EmailNotify(context.Background(), "", "Nobody", email.Message{Subject: "skipped"})
	assert.Equal(t, []string{"hello"}, mailer.subjects)

	mailer.err = assert.AnError
	d.EmailNotify(context.Background(), "m@example.com", "Maria", email.Message{Subject: "again"})
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.SideChannelFailuresTotal.WithLabelValues(channelEmail)))
}

func newRouter(svc *Service, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetPrincipal(c, userID, "u@example.com", auth.RoleMentee)
		c.Next()
	})
	h := NewHandler(svc)
	r.GET("/notifications", h.List)
	r.PUT("/notifications/read-all", h.MarkAllRead)
	r.PUT("/notifications/:id/read", h.MarkRead)
	return r
}

func TestHandler_List(t *testing.T) {
	repo, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM notifications")).
		WithArgs(7, listLimit).
		WillReturnRows(sqlmock.NewRows(notificationColumns).
			AddRow(2, 7, events.BookingCanceledByMentor, []byte(`{"booking_id":3}`), false, time.Now()))

	w := httptest.NewRecorder()
	newRouter(NewService(repo), 7).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.JSONEq(t, `{"booking_id":3}`, string(list[0].Payload))
}

func TestHandler_MarkRead(t *testing.T) {
	repo, mock := setupMock(t)
	r := newRouter(NewService(repo), 7)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2")).
		WithArgs(2, 7).WillReturnResult(sqlmock.NewResult(0, 1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/notifications/2/read", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2")).
		WithArgs(3, 7).WillReturnResult(sqlmock.NewResult(0, 0))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/notifications/3/read", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/notifications/abc/read", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE")).
		WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 4))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/notifications/read-all", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated":4`)

	require.NoError(t, mock.ExpectationsWereMet())
}
