package availability

import "time"

const DefaultDurationMinutes = 60

// Slot is a mentor-declared bookable window [StartTime, EndTime).
type Slot struct {
	ID              int       `db:"id" json:"id"`
	MentorID        int       `db:"mentor_id" json:"mentor_id"`
	StartTime       time.Time `db:"start_ts" json:"start_time"`
	EndTime         time.Time `db:"end_ts" json:"end_time"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	MeetingLink     *string   `db:"meeting_link" json:"meeting_link"`
	IsBooked        bool      `db:"is_booked" json:"is_booked"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type CreateSlotRequest struct {
	StartTime   time.Time `json:"start_time" validate:"required"`
	Duration    *int      `json:"duration"`
	MeetingLink string    `json:"meeting_link"`
}
