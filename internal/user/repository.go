package user

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateHourlyRate(ctx context.Context, id int, rate float64) (*User, error)
}

const userColumns = `id, name, surname, email, password_hash, role, hourly_rate, avg_rating, review_count, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) (*User, error) {
	query := `
		INSERT INTO users (name, surname, email, password_hash, role, hourly_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	var created User
	if err := r.db.GetContext(ctx, &created, query,
		u.Name, u.Surname, u.Email, u.PasswordHash, u.Role, u.HourlyRate,
	); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE email = $1`, email); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	var u User
	if err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	return exists, err
}

func (r *repository) UpdateHourlyRate(ctx context.Context, id int, rate float64) (*User, error) {
	query := `UPDATE users SET hourly_rate = $1 WHERE id = $2 RETURNING ` + userColumns

	var u User
	if err := r.db.GetContext(ctx, &u, query, rate, id); err != nil {
		return nil, err
	}
	return &u, nil
}
