package review

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	FindEligible(ctx context.Context, bookingID, menteeID int) (*eligibility, error)
	Insert(ctx context.Context, r *Review) (*Review, error)
	ListForMentor(ctx context.Context, mentorID, limit, offset int) ([]Listed, int, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// FindEligible returns the booking only when it belongs to menteeID and is
// confirmed. Anything else is sql.ErrNoRows.
func (r *repository) FindEligible(ctx context.Context, bookingID, menteeID int) (*eligibility, error) {
	query := `
		SELECT b.id AS booking_id, b.mentor_id, a.end_ts
		FROM bookings b
		JOIN availabilities a ON a.id = b.slot_id
		WHERE b.id = $1 AND b.mentee_id = $2 AND b.status = 'confirmed'
	`

	var e eligibility
	if err := r.db.GetContext(ctx, &e, query, bookingID, menteeID); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Insert(ctx context.Context, rv *Review) (*Review, error) {
	query := `
		INSERT INTO reviews (booking_id, mentee_id, mentor_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, booking_id, mentee_id, mentor_id, rating, comment, created_at
	`

	var created Review
	if err := r.db.GetContext(ctx, &created, query,
		rv.BookingID, rv.MenteeID, rv.MentorID, rv.Rating, rv.Comment,
	); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) ListForMentor(ctx context.Context, mentorID, limit, offset int) ([]Listed, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM reviews WHERE mentor_id = $1`, mentorID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT r.id, r.booking_id, r.mentee_id, r.mentor_id, r.rating, r.comment, r.created_at,
		       u.name AS mentee_name, u.surname AS mentee_surname
		FROM reviews r
		JOIN users u ON u.id = r.mentee_id
		WHERE r.mentor_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`

	reviews := []Listed{}
	if err := r.db.SelectContext(ctx, &reviews, query, mentorID, limit, offset); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}
