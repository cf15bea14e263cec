package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mentormatch/internal/api"
	"mentormatch/internal/apperr"
	"mentormatch/internal/db"
	"mentormatch/internal/logger"
	"mentormatch/internal/metrics"
)

var (
	ErrInvalidRating = apperr.Validation("INVALID_RATING", "rating must be between 1 and 5")

	// ErrNotFound covers a missing booking, someone else's booking and a
	// booking that is not confirmed. Callers cannot tell them apart.
	ErrNotFound = apperr.NotFound("BOOKING_NOT_REVIEWABLE", "booking not found or not eligible for review")

	ErrTooEarly        = apperr.InvalidState("REVIEW_TOO_EARLY", "you can review a session only after it has ended")
	ErrDuplicateReview = apperr.Conflict("DUPLICATE_REVIEW", "this booking has already been reviewed")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateReview attaches a review to a confirmed booking whose session is over.
// The mentor's aggregate rating is maintained by a database trigger.
func (s *Service) CreateReview(ctx context.Context, menteeID, bookingID, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	b, err := s.repo.FindEligible(ctx, bookingID, menteeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find reviewable booking %d: %w", bookingID, err)
	}

	if b.EndTime.After(s.now()) {
		return nil, ErrTooEarly
	}

	created, err := s.repo.Insert(ctx, &Review{
		BookingID: bookingID,
		MenteeID:  menteeID,
		MentorID:  b.MentorID,
		Rating:    rating,
		Comment:   comment,
	})
	if db.IsUniqueViolation(err) {
		return nil, ErrDuplicateReview
	}
	if err != nil {
		return nil, fmt.Errorf("insert review for booking %d: %w", bookingID, err)
	}

	metrics.RecordReview()
	logger.Info("review created", "review_id", created.ID, "booking_id", bookingID, "mentor_id", b.MentorID, "rating", rating)
	return created, nil
}

type Page struct {
	Data       []Listed       `json:"data"`
	Pagination api.Pagination `json:"pagination"`
}

func (s *Service) ListForMentor(ctx context.Context, mentorID, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	reviews, total, err := s.repo.ListForMentor(ctx, mentorID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list reviews for mentor %d: %w", mentorID, err)
	}

	return &Page{
		Data: reviews,
		Pagination: api.Pagination{
			CurrentPage:  page,
			TotalPages:   (total + limit - 1) / limit,
			TotalReviews: total,
		},
	}, nil
}
