package dashboard

import "time"

// RecentReviewLimit is how many reviews the mentor dashboard shows.
const RecentReviewLimit = 2

type MentorStats struct {
	UpcomingBookings int            `json:"upcoming_bookings"`
	AverageRating    float64        `json:"avg_rating"`
	ReviewCount      int            `json:"review_count"`
	RecentReviews    []RecentReview `json:"recent_reviews"`
}

type RecentReview struct {
	Rating     int       `db:"rating" json:"rating"`
	Comment    string    `db:"comment" json:"comment"`
	MenteeName string    `db:"mentee_name" json:"mentee_name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type MenteeStats struct {
	NextBooking *NextBooking `json:"next_booking"`
}

// NextBooking is the mentee's soonest live booking that has not started.
type NextBooking struct {
	ID            int       `db:"id" json:"id"`
	Status        string    `db:"status" json:"status"`
	Price         float64   `db:"price" json:"price"`
	StartTime     time.Time `db:"start_ts" json:"start_time"`
	MeetingLink   string    `db:"meeting_link" json:"meeting_link"`
	MentorName    string    `db:"mentor_name" json:"mentor_name"`
	MentorSurname string    `db:"mentor_surname" json:"mentor_surname"`
}

type rating struct {
	Average float64 `db:"avg_rating"`
	Count   int     `db:"review_count"`
}
