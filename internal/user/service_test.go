package user

import (
	"context"
	"database/sql"
	"testing"

	"mentormatch/internal/auth"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) (*User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) UpdateHourlyRate(ctx context.Context, id int, rate float64) (*User, error) {
	args := m.Called(ctx, id, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func ratePtr(v float64) *float64 { return &v }

func TestService_Register(t *testing.T) {
	tests := []struct {
		name          string
		req           RegisterRequest
		setupMock     func(*MockRepository)
		expectedError error
	}{
		{
			name: "mentor with rate",
			req: RegisterRequest{
				Name: "Maria", Email: "Maria@Example.com", Password: "password123",
				Role: auth.RoleMentor, HourlyRate: ratePtr(50),
			},
			setupMock: func(m *MockRepository) {
				m.On("EmailExists", mock.Anything, "maria@example.com").Return(false, nil)
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
					return u.Email == "maria@example.com" && u.Role == auth.RoleMentor &&
						u.HourlyRate != nil && *u.HourlyRate == 50 && u.PasswordHash != "password123"
				})).Return(&User{ID: 1, Email: "maria@example.com", Role: auth.RoleMentor}, nil)
			},
		},
		{
			name: "mentee rate is dropped",
			req: RegisterRequest{
				Name: "Luca", Email: "luca@example.com", Password: "password123",
				Role: auth.RoleMentee, HourlyRate: ratePtr(30),
			},
			setupMock: func(m *MockRepository) {
				m.On("EmailExists", mock.Anything, "luca@example.com").Return(false, nil)
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
					return u.HourlyRate == nil
				})).Return(&User{ID: 2, Email: "luca@example.com", Role: auth.RoleMentee}, nil)
			},
		},
		{
			name:          "invalid role",
			req:           RegisterRequest{Name: "X", Email: "x@example.com", Password: "password123", Role: "admin"},
			setupMock:     func(m *MockRepository) {},
			expectedError: ErrInvalidRole,
		},
		{
			name: "email already exists",
			req:  RegisterRequest{Name: "X", Email: "existing@example.com", Password: "password123", Role: auth.RoleMentee},
			setupMock: func(m *MockRepository) {
				m.On("EmailExists", mock.Anything, "existing@example.com").Return(true, nil)
			},
			expectedError: ErrEmailExists,
		},
		{
			name: "unique violation on insert",
			req:  RegisterRequest{Name: "X", Email: "race@example.com", Password: "password123", Role: auth.RoleMentee},
			setupMock: func(m *MockRepository) {
				m.On("EmailExists", mock.Anything, "race@example.com").Return(false, nil)
				m.On("Create", mock.Anything, mock.Anything).Return(nil, &pq.Error{Code: "23505"})
			},
			expectedError: ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			service := NewService(mockRepo, "test-secret")
			u, accessToken, refreshToken, err := service.Register(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, u)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, u)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Login(t *testing.T) {
	passwordHash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	tests := []struct {
		name          string
		req           LoginRequest
		setupMock     func(*MockRepository)
		expectedError error
	}{
		{
			name: "successful login",
			req:  LoginRequest{Email: "test@example.com", Password: "password123"},
			setupMock: func(m *MockRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&User{
					ID: 1, Email: "test@example.com", PasswordHash: passwordHash, Role: auth.RoleMentee,
				}, nil)
			},
		},
		{
			name: "wrong password",
			req:  LoginRequest{Email: "test@example.com", Password: "nope"},
			setupMock: func(m *MockRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&User{
					ID: 1, Email: "test@example.com", PasswordHash: passwordHash, Role: auth.RoleMentee,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "user not found",
			req:  LoginRequest{Email: "notfound@example.com", Password: "password123"},
			setupMock: func(m *MockRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, sql.ErrNoRows)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			service := NewService(mockRepo, "test-secret")
			u, accessToken, _, err := service.Login(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, u)
			} else {
				assert.NoError(t, err)
				claims, err := auth.ValidateToken(accessToken, "test-secret")
				require.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
				assert.Equal(t, auth.RoleMentee, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_GetByID(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("FindByID", mock.Anything, 1).Return(&User{ID: 1, Role: auth.RoleMentor}, nil)
	mockRepo.On("FindByID", mock.Anything, 2).Return(nil, sql.ErrNoRows)

	service := NewService(mockRepo, "test-secret")

	u, err := service.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	_, err = service.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_RefreshToken(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("FindByID", mock.Anything, 7).Return(&User{ID: 7, Email: "m@example.com", Role: auth.RoleMentor}, nil)

	_, refresh, err := auth.GenerateTokens(7, "m@example.com", auth.RoleMentor, "test-secret")
	require.NoError(t, err)

	service := NewService(mockRepo, "test-secret")

	access, u, err := service.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.Equal(t, 7, u.ID)

	_, _, err = service.RefreshToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestService_UpdateHourlyRate(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("UpdateHourlyRate", mock.Anything, 3, 75.0).Return(&User{ID: 3, HourlyRate: ratePtr(75)}, nil)

	service := NewService(mockRepo, "test-secret")

	u, err := service.UpdateHourlyRate(context.Background(), 3, 75)
	require.NoError(t, err)
	assert.Equal(t, 75.0, *u.HourlyRate)

	_, err = service.UpdateHourlyRate(context.Background(), 3, -1)
	assert.ErrorIs(t, err, ErrNegativeRate)
	mockRepo.AssertExpectations(t)
}
