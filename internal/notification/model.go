package notification

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

type Notification struct {
	ID        int            `db:"id" json:"id"`
	UserID    int            `db:"user_id" json:"user_id"`
	Type      string         `db:"type" json:"type"`
	Payload   types.JSONText `db:"payload" json:"payload"`
	IsRead    bool           `db:"is_read" json:"is_read"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}
