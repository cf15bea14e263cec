package notification

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
)

type Repository interface {
	Insert(ctx context.Context, userID int, eventType string, payload types.JSONText) (*Notification, error)
	ListByUser(ctx context.Context, userID, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID int) (bool, error)
	MarkAllRead(ctx context.Context, userID int) (int64, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, userID int, eventType string, payload types.JSONText) (*Notification, error) {
	query := `
		INSERT INTO notifications (user_id, type, payload)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, type, payload, is_read, created_at
	`

	var n Notification
	if err := r.db.GetContext(ctx, &n, query, userID, eventType, payload); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) ListByUser(ctx context.Context, userID, limit int) ([]Notification, error) {
	query := `
		SELECT id, user_id, type, payload, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	list := []Notification{}
	if err := r.db.SelectContext(ctx, &list, query, userID, limit); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) MarkRead(ctx context.Context, id, userID int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *repository) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
