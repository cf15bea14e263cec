package user

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"mentormatch/internal/apperr"
	"mentormatch/internal/auth"
	"mentormatch/internal/db"
	"mentormatch/internal/logger"
)

var (
	ErrEmailExists        = apperr.Conflict("EMAIL_EXISTS", "email already registered").WithStatus(http.StatusConflict)
	ErrInvalidCredentials = apperr.New(apperr.KindValidation, "INVALID_CREDENTIALS", "invalid email or password", http.StatusUnauthorized)
	ErrInvalidRefresh     = apperr.New(apperr.KindValidation, "INVALID_REFRESH_TOKEN", "invalid or expired refresh token", http.StatusUnauthorized)
	ErrUserNotFound       = apperr.NotFound("USER_NOT_FOUND", "user not found")
	ErrInvalidRole        = apperr.Validation("INVALID_ROLE", "role must be mentor or mentee")
	ErrNegativeRate       = apperr.Validation("INVALID_RATE", "hourly rate must not be negative")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	UpdateHourlyRate(ctx context.Context, userID int, rate float64) (*User, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{repo: repo, jwtSecret: jwtSecret}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	if !auth.ValidRole(req.Role) {
		return nil, "", "", ErrInvalidRole
	}
	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		return nil, "", "", ErrNegativeRate
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	// Mentees never carry a rate.
	rate := req.HourlyRate
	if req.Role != auth.RoleMentor {
		rate = nil
	}

	u, err := s.repo.Create(ctx, &User{
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         req.Role,
		HourlyRate:   rate,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, "", "", ErrEmailExists
		}
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	logger.Info("user registered", "user_id", u.ID, "role", u.Role)
	return u, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return u, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, ErrInvalidRefresh
	}

	u, err := s.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, err
	}

	// Reissue from the stored row so a stale role in the old token is dropped.
	accessToken, err := auth.GenerateAccessToken(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return accessToken, u, nil
}

func (s *service) UpdateHourlyRate(ctx context.Context, userID int, rate float64) (*User, error) {
	if rate < 0 {
		return nil, ErrNegativeRate
	}

	u, err := s.repo.UpdateHourlyRate(ctx, userID, rate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
