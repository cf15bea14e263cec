package notification

import (
	"context"

	"mentormatch/internal/apperr"
)

const listLimit = 50

var ErrNotFound = apperr.NotFound("NOTIFICATION_NOT_FOUND", "notification not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID int) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID, listLimit)
}

// MarkRead answers NotFound for rows owned by someone else.
func (s *Service) MarkRead(ctx context.Context, id, userID int) error {
	ok, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}
