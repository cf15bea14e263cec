package user

import "time"

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Surname      string    `db:"surname" json:"surname"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	HourlyRate   *float64  `db:"hourly_rate" json:"hourly_rate"`
	AvgRating    float64   `db:"avg_rating" json:"avg_rating"`
	ReviewCount  int       `db:"review_count" json:"review_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type RegisterRequest struct {
	Name       string   `json:"name" validate:"required,max=100"`
	Surname    string   `json:"surname" validate:"max=100"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=8"`
	Role       string   `json:"role" validate:"required,oneof=mentor mentee"`
	HourlyRate *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UpdateRateRequest struct {
	HourlyRate *float64 `json:"hourly_rate" validate:"required,gte=0"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
