package availability

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Insert(ctx context.Context, s *Slot) (*Slot, error)
	OverlapExists(ctx context.Context, mentorID int, start, end time.Time) (bool, error)
	DeleteFree(ctx context.Context, id, mentorID int) (bool, error)
	ListUpcomingForMentor(ctx context.Context, mentorID int, now time.Time) ([]Slot, error)
	ListPublicUpcoming(ctx context.Context, mentorID int, now time.Time) ([]Slot, error)
}

const slotColumns = `id, mentor_id, start_ts, end_ts, duration_minutes, meeting_link, is_booked, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, s *Slot) (*Slot, error) {
	query := `
		INSERT INTO availabilities (mentor_id, start_ts, end_ts, duration_minutes, meeting_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + slotColumns

	var created Slot
	if err := r.db.GetContext(ctx, &created, query,
		s.MentorID, s.StartTime, s.EndTime, s.DurationMinutes, s.MeetingLink,
	); err != nil {
		return nil, err
	}
	return &created, nil
}

// OverlapExists checks half-open intervals, so back-to-back slots do not collide.
func (r *repository) OverlapExists(ctx context.Context, mentorID int, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM availabilities
			WHERE mentor_id = $1 AND start_ts < $3 AND end_ts > $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, mentorID, start, end)
	return exists, err
}

// DeleteFree removes the slot only when it is owned by mentorID, free, and
// has never carried a booking.
func (r *repository) DeleteFree(ctx context.Context, id, mentorID int) (bool, error) {
	query := `
		DELETE FROM availabilities a
		WHERE a.id = $1 AND a.mentor_id = $2 AND a.is_booked = FALSE
		  AND NOT EXISTS (SELECT 1 FROM bookings b WHERE b.slot_id = a.id)
	`

	res, err := r.db.ExecContext(ctx, query, id, mentorID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *repository) ListUpcomingForMentor(ctx context.Context, mentorID int, now time.Time) ([]Slot, error) {
	query := `SELECT ` + slotColumns + `
		FROM availabilities
		WHERE mentor_id = $1 AND start_ts > $2
		ORDER BY start_ts ASC`

	slots := []Slot{}
	if err := r.db.SelectContext(ctx, &slots, query, mentorID, now); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *repository) ListPublicUpcoming(ctx context.Context, mentorID int, now time.Time) ([]Slot, error) {
	query := `SELECT ` + slotColumns + `
		FROM availabilities
		WHERE mentor_id = $1 AND start_ts > $2 AND is_booked = FALSE
		ORDER BY start_ts ASC`

	slots := []Slot{}
	if err := r.db.SelectContext(ctx, &slots, query, mentorID, now); err != nil {
		return nil, err
	}
	return slots, nil
}
