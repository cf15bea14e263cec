package dashboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// ForMentor gathers the mentor's counters in parallel.
func (s *Service) ForMentor(ctx context.Context, mentorID int) (*MentorStats, error) {
	now := s.now()
	stats := &MentorStats{RecentReviews: []RecentReview{}}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.repo.CountUpcomingConfirmed(ctx, mentorID, now)
		if err != nil {
			return fmt.Errorf("count upcoming bookings: %w", err)
		}
		stats.UpcomingBookings = n
		return nil
	})
	g.Go(func() error {
		rt, err := s.repo.MentorRating(ctx, mentorID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load rating: %w", err)
		}
		stats.AverageRating = rt.Average
		stats.ReviewCount = rt.Count
		return nil
	})
	g.Go(func() error {
		reviews, err := s.repo.RecentReviews(ctx, mentorID, RecentReviewLimit)
		if err != nil {
			return fmt.Errorf("load recent reviews: %w", err)
		}
		if reviews != nil {
			stats.RecentReviews = reviews
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// ForMentee returns the next pending or confirmed session, or nil when there
// is none.
func (s *Service) ForMentee(ctx context.Context, menteeID int) (*MenteeStats, error) {
	nb, err := s.repo.NextBooking(ctx, menteeID, s.now())
	if errors.Is(err, sql.ErrNoRows) {
		return &MenteeStats{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load next booking: %w", err)
	}
	return &MenteeStats{NextBooking: nb}, nil
}
