package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mentormatch/internal/logger"

	"github.com/jmoiron/sqlx"
)

// TxManager runs a unit of work inside one database transaction. Repositories
// built from the *sqlx.Tx passed to fn share that transaction.
type TxManager struct {
	db *sqlx.DB
}

func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// WithTx commits when fn returns nil and rolls back otherwise, including when
// fn panics. Row locks taken with SELECT ... FOR UPDATE inside fn are held
// until that point. fn's error is returned as is so callers can match it.
func (m *TxManager) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := m.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Error("rollback failed", "cause", err, "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// DB exposes the pool for reads that need no locking.
func (m *TxManager) DB() *sqlx.DB {
	return m.db
}
