package dashboard

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	CountUpcomingConfirmed(ctx context.Context, mentorID int, now time.Time) (int, error)
	MentorRating(ctx context.Context, mentorID int) (*rating, error)
	RecentReviews(ctx context.Context, mentorID, limit int) ([]RecentReview, error)
	NextBooking(ctx context.Context, menteeID int, now time.Time) (*NextBooking, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountUpcomingConfirmed(ctx context.Context, mentorID int, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN availabilities a ON a.id = b.slot_id
		WHERE b.mentor_id = $1 AND b.status = 'confirmed' AND a.start_ts > $2
	`

	var n int
	err := r.db.GetContext(ctx, &n, query, mentorID, now)
	return n, err
}

// MentorRating reads the aggregate kept current by the reviews trigger.
func (r *repository) MentorRating(ctx context.Context, mentorID int) (*rating, error) {
	var rt rating
	err := r.db.GetContext(ctx, &rt, `SELECT avg_rating, review_count FROM users WHERE id = $1`, mentorID)
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *repository) RecentReviews(ctx context.Context, mentorID, limit int) ([]RecentReview, error) {
	query := `
		SELECT r.rating, r.comment, u.name AS mentee_name, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.mentee_id
		WHERE r.mentor_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2
	`

	reviews := []RecentReview{}
	if err := r.db.SelectContext(ctx, &reviews, query, mentorID, limit); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *repository) NextBooking(ctx context.Context, menteeID int, now time.Time) (*NextBooking, error) {
	query := `
		SELECT b.id, b.status, b.price, a.start_ts, b.meeting_link,
		       u.name AS mentor_name, u.surname AS mentor_surname
		FROM bookings b
		JOIN availabilities a ON a.id = b.slot_id
		JOIN users u ON u.id = b.mentor_id
		WHERE b.mentee_id = $1 AND b.status IN ('pending', 'confirmed') AND a.start_ts > $2
		ORDER BY a.start_ts ASC
		LIMIT 1
	`

	var nb NextBooking
	if err := r.db.GetContext(ctx, &nb, query, menteeID, now); err != nil {
		return nil, err
	}
	return &nb, nil
}
