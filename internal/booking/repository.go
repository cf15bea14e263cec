package booking

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const bookingColumns = `id, slot_id, mentor_id, mentee_id, status, price, meeting_link, created_at, updated_at`

const viewSelect = `
	SELECT
		b.id, b.slot_id, b.mentor_id, b.mentee_id, b.status, b.price, b.meeting_link,
		b.created_at, b.updated_at,
		a.start_ts, a.end_ts,
		mentor.name AS mentor_name, mentor.surname AS mentor_surname,
		mentee.name AS mentee_name, mentee.surname AS mentee_surname,
		EXISTS(SELECT 1 FROM reviews r WHERE r.booking_id = b.id) AS has_review
	FROM bookings b
	JOIN availabilities a ON a.id = b.slot_id
	JOIN users mentor ON mentor.id = b.mentor_id
	JOIN users mentee ON mentee.id = b.mentee_id`

// Repository methods take the executor explicitly so the coordinators can run
// them inside one transaction.
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// LockSlot reads the slot with a row lock held until the transaction ends.
func (r *Repository) LockSlot(ctx context.Context, q sqlx.QueryerContext, slotID int) (*slotSnapshot, error) {
	query := `
		SELECT id, mentor_id, start_ts, is_booked, meeting_link
		FROM availabilities
		WHERE id = $1
		FOR UPDATE
	`

	var s slotSnapshot
	if err := sqlx.GetContext(ctx, q, &s, query, slotID); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) SetSlotBooked(ctx context.Context, e sqlx.ExecerContext, slotID int, booked bool) error {
	_, err := e.ExecContext(ctx, `UPDATE availabilities SET is_booked = $1 WHERE id = $2`, booked, slotID)
	return err
}

func (r *Repository) HourlyRate(ctx context.Context, q sqlx.QueryerContext, mentorID int) (*float64, error) {
	var rate *float64
	if err := sqlx.GetContext(ctx, q, &rate, `SELECT hourly_rate FROM users WHERE id = $1`, mentorID); err != nil {
		return nil, err
	}
	return rate, nil
}

func (r *Repository) Insert(ctx context.Context, q sqlx.QueryerContext, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (slot_id, mentor_id, mentee_id, status, price, meeting_link)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + bookingColumns

	var created Booking
	if err := sqlx.GetContext(ctx, q, &created, query,
		b.SlotID, b.MentorID, b.MenteeID, b.Status, b.Price, b.MeetingLink,
	); err != nil {
		return nil, err
	}
	return &created, nil
}

// LockWithSlot locks the booking and its slot together.
func (r *Repository) LockWithSlot(ctx context.Context, q sqlx.QueryerContext, bookingID int) (*lockedBooking, error) {
	query := `
		SELECT b.id, b.slot_id, b.mentor_id, b.mentee_id, b.status, a.start_ts, a.end_ts
		FROM bookings b
		JOIN availabilities a ON a.id = b.slot_id
		WHERE b.id = $1
		FOR UPDATE OF b, a
	`

	var lb lockedBooking
	if err := sqlx.GetContext(ctx, q, &lb, query, bookingID); err != nil {
		return nil, err
	}
	return &lb, nil
}

func (r *Repository) SetStatus(ctx context.Context, q sqlx.QueryerContext, bookingID int, status Status) (*Booking, error) {
	query := `
		UPDATE bookings SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + bookingColumns

	var b Booking
	if err := sqlx.GetContext(ctx, q, &b, query, status, bookingID); err != nil {
		return nil, err
	}
	return &b, nil
}

// ConfirmIfPending is a compare-and-swap: it reports false when the booking
// has already left pending.
func (r *Repository) ConfirmIfPending(ctx context.Context, e sqlx.ExecerContext, bookingID int) (bool, error) {
	res, err := e.ExecContext(ctx, `
		UPDATE bookings SET status = 'confirmed', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`, bookingID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

func (r *Repository) GetForMentee(ctx context.Context, q sqlx.QueryerContext, bookingID, menteeID int) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND mentee_id = $2`

	var b Booking
	if err := sqlx.GetContext(ctx, q, &b, query, bookingID, menteeID); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) GetView(ctx context.Context, q sqlx.QueryerContext, bookingID int) (*View, error) {
	var v View
	if err := sqlx.GetContext(ctx, q, &v, viewSelect+`
	WHERE b.id = $1`, bookingID); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) GetVisible(ctx context.Context, q sqlx.QueryerContext, bookingID, userID int) (*View, error) {
	query := viewSelect + `
	WHERE b.id = $1 AND (b.mentee_id = $2 OR b.mentor_id = $2)`

	var v View
	if err := sqlx.GetContext(ctx, q, &v, query, bookingID, userID); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) ListForUser(ctx context.Context, q sqlx.QueryerContext, userID int) ([]View, error) {
	query := viewSelect + `
	WHERE b.mentee_id = $1 OR b.mentor_id = $1
	ORDER BY a.start_ts DESC, b.id DESC`

	views := []View{}
	if err := sqlx.SelectContext(ctx, q, &views, query, userID); err != nil {
		return nil, err
	}
	return views, nil
}

// ListConfirmedStartingBetween returns confirmed bookings whose slot starts
// in [from, to).
func (r *Repository) ListConfirmedStartingBetween(ctx context.Context, q sqlx.QueryerContext, from, to time.Time) ([]View, error) {
	query := viewSelect + `
	WHERE b.status = 'confirmed' AND a.start_ts >= $1 AND a.start_ts < $2
	ORDER BY a.start_ts ASC`

	views := []View{}
	if err := sqlx.SelectContext(ctx, q, &views, query, from, to); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *Repository) Parties(ctx context.Context, q sqlx.QueryerContext, ids ...int) (map[int]Party, error) {
	var rows []Party
	if err := sqlx.SelectContext(ctx, q, &rows,
		`SELECT id, name, surname, email FROM users WHERE id = ANY($1)`, pq.Array(ids),
	); err != nil {
		return nil, err
	}

	out := make(map[int]Party, len(rows))
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}
