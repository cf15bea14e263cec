package booking

import (
	"strings"
	"time"
)

type Booking struct {
	ID          int       `db:"id" json:"id"`
	SlotID      int       `db:"slot_id" json:"slot_id"`
	MentorID    int       `db:"mentor_id" json:"mentor_id"`
	MenteeID    int       `db:"mentee_id" json:"mentee_id"`
	Status      Status    `db:"status" json:"status"`
	Price       float64   `db:"price" json:"price"`
	MeetingLink string    `db:"meeting_link" json:"meeting_link"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// View is a booking joined with its slot window and both parties.
type View struct {
	Booking
	StartTime     time.Time `db:"start_ts" json:"start_time"`
	EndTime       time.Time `db:"end_ts" json:"end_time"`
	MentorName    string    `db:"mentor_name" json:"mentor_name"`
	MentorSurname string    `db:"mentor_surname" json:"mentor_surname"`
	MenteeName    string    `db:"mentee_name" json:"mentee_name"`
	MenteeSurname string    `db:"mentee_surname" json:"mentee_surname"`
	HasReview     bool      `db:"has_review" json:"has_review"`
	DisplayStatus Status    `db:"-" json:"display_status"`
}

type slotSnapshot struct {
	ID          int       `db:"id"`
	MentorID    int       `db:"mentor_id"`
	StartTime   time.Time `db:"start_ts"`
	IsBooked    bool      `db:"is_booked"`
	MeetingLink *string   `db:"meeting_link"`
}

type lockedBooking struct {
	ID        int       `db:"id"`
	SlotID    int       `db:"slot_id"`
	MentorID  int       `db:"mentor_id"`
	MenteeID  int       `db:"mentee_id"`
	Status    Status    `db:"status"`
	StartTime time.Time `db:"start_ts"`
	EndTime   time.Time `db:"end_ts"`
}

type Party struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	Surname string `db:"surname"`
	Email   string `db:"email"`
}

func (p Party) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}

// Reminder carries what the reminder job needs to mail both parties.
type Reminder struct {
	BookingID   int
	StartTime   time.Time
	MeetingLink string
	Mentor      Party
	Mentee      Party
}

type CreateBookingRequest struct {
	AvailabilityID int `json:"availability_id" validate:"required,gt=0"`
}

type CancelResponse struct {
	Message string   `json:"message" example:"booking canceled"`
	Booking *Booking `json:"booking"`
}
