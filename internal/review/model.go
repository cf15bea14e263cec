package review

import "time"

const (
	DefaultPageSize = 5
	MaxPageSize     = 50
)

type Review struct {
	ID        int       `db:"id" json:"id"`
	BookingID int       `db:"booking_id" json:"booking_id"`
	MenteeID  int       `db:"mentee_id" json:"mentee_id"`
	MentorID  int       `db:"mentor_id" json:"mentor_id"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Listed is a review as shown on a mentor's public page.
type Listed struct {
	Review
	MenteeName    string `db:"mentee_name" json:"mentee_name"`
	MenteeSurname string `db:"mentee_surname" json:"mentee_surname"`
}

// eligibility is the booking row a review is checked against.
type eligibility struct {
	BookingID int       `db:"booking_id"`
	MentorID  int       `db:"mentor_id"`
	EndTime   time.Time `db:"end_ts"`
}

type CreateReviewRequest struct {
	BookingID int    `json:"booking_id" validate:"required,gt=0"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment" validate:"max=2000"`
}
