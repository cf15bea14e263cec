package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mentormatch/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockService) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockService) GetByID(ctx context.Context, userID int) (*User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockService) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*User), args.Error(2)
}

func (m *MockService) UpdateHourlyRate(ctx context.Context, userID int, rate float64) (*User, error) {
	args := m.Called(ctx, userID, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func newRouter(h *Handler, userID int, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	authed := r.Group("/")
	authed.Use(func(c *gin.Context) {
		auth.SetPrincipal(c, userID, "me@example.com", role)
		c.Next()
	})
	authed.GET("/me", h.GetMe)
	authed.PUT("/me/rate", h.UpdateRate)
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Register(t *testing.T) {
	svc := new(MockService)
	svc.On("Register", mock.Anything, mock.MatchedBy(func(r RegisterRequest) bool { return r.Email == "new@example.com" })).
		Return(&User{ID: 5, Email: "new@example.com", Role: auth.RoleMentee}, "access", "refresh", nil)
	svc.On("Register", mock.Anything, mock.MatchedBy(func(r RegisterRequest) bool { return r.Email == "dup@example.com" })).
		Return(nil, "", "", ErrEmailExists)

	r := newRouter(NewHandler(svc), 0, "")

	w := doJSON(r, http.MethodPost, "/auth/register", map[string]interface{}{
		"name": "New", "email": "new@example.com", "password": "password123", "role": "mentee",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "access", resp.AccessToken)
	assert.Equal(t, 5, resp.User.ID)
	assert.NotContains(t, w.Body.String(), "password_hash")

	w = doJSON(r, http.MethodPost, "/auth/register", map[string]interface{}{
		"name": "Dup", "email": "dup@example.com", "password": "password123", "role": "mentee",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "EMAIL_EXISTS")

	w = doJSON(r, http.MethodPost, "/auth/register", map[string]interface{}{
		"name": "Bad", "email": "bad@example.com", "password": "password123", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	svc := new(MockService)
	svc.On("Login", mock.Anything, LoginRequest{Email: "a@example.com", Password: "wrong"}).
		Return(nil, "", "", ErrInvalidCredentials)

	w := doJSON(newRouter(NewHandler(svc), 0, ""), http.MethodPost, "/auth/login",
		LoginRequest{Email: "a@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetMeAndRate(t *testing.T) {
	svc := new(MockService)
	svc.On("GetByID", mock.Anything, 3).Return(&User{ID: 3, Role: auth.RoleMentor}, nil)
	svc.On("UpdateHourlyRate", mock.Anything, 3, 40.0).Return(&User{ID: 3, HourlyRate: ratePtr(40)}, nil)

	r := newRouter(NewHandler(svc), 3, auth.RoleMentor)

	w := doJSON(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPut, "/me/rate", map[string]float64{"hourly_rate": 40})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hourly_rate":40`)

	w = doJSON(r, http.MethodPut, "/me/rate", map[string]float64{"hourly_rate": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertExpectations(t)
}
