package dashboard

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mentormatch/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func getDashboard(repo Repository, userID int, role string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	h := NewHandler(newTestService(repo))

	r := gin.New()
	r.GET("/dashboard", func(c *gin.Context) {
		auth.SetPrincipal(c, userID, "user@example.com", role)
		h.Get(c)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	return w
}

func TestHandler_Mentor(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CountUpcomingConfirmed", mock.Anything, 2, fixedNow).Return(1, nil)
	repo.On("MentorRating", mock.Anything, 2).Return(&rating{Average: 5, Count: 1}, nil)
	repo.On("RecentReviews", mock.Anything, 2, RecentReviewLimit).
		Return([]RecentReview{{Rating: 5, MenteeName: "Luca"}}, nil)

	w := getDashboard(repo, 2, auth.RoleMentor)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["upcoming_bookings"])
	assert.EqualValues(t, 5, body["avg_rating"])
	assert.EqualValues(t, 1, body["review_count"])
	assert.Len(t, body["recent_reviews"], 1)
	repo.AssertNotCalled(t, "NextBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Mentee(t *testing.T) {
	repo := new(MockRepository)
	repo.On("NextBooking", mock.Anything, 5, fixedNow).
		Return(&NextBooking{ID: 10, Status: "confirmed", StartTime: fixedNow.Add(time.Hour), MentorName: "Anna"}, nil)

	w := getDashboard(repo, 5, auth.RoleMentee)

	require.Equal(t, http.StatusOK, w.Code)
	var stats MenteeStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.NotNil(t, stats.NextBooking)
	assert.Equal(t, "Anna", stats.NextBooking.MentorName)
}

func TestHandler_MenteeWithNothingScheduled(t *testing.T) {
	repo := new(MockRepository)
	repo.On("NextBooking", mock.Anything, 5, fixedNow).Return(nil, sql.ErrNoRows)

	w := getDashboard(repo, 5, auth.RoleMentee)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"next_booking":null}`, w.Body.String())
}

func TestHandler_Failure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("NextBooking", mock.Anything, 5, fixedNow).Return(nil, errors.New("connection reset"))

	w := getDashboard(repo, 5, auth.RoleMentee)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}
