package availability

import (
	"context"
	"net/http"
	"time"

	"mentormatch/internal/apperr"
	"mentormatch/internal/db"
	"mentormatch/internal/logger"

	"github.com/go-playground/validator/v10"
)

const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 24 * 60
)

var (
	ErrStartInPast        = apperr.Validation("START_IN_PAST", "start_time must be in the future")
	ErrDurationTooShort   = apperr.Validation("DURATION_TOO_SHORT", "duration must be at least 15 minutes")
	ErrDurationTooLong    = apperr.Validation("DURATION_TOO_LONG", "duration must be at most 24 hours")
	ErrInvalidMeetingLink = apperr.Validation("INVALID_MEETING_LINK", "meeting_link must be an http(s) URL")
	ErrOverlap            = apperr.Conflict("SLOT_OVERLAP", "slot overlaps an existing slot")

	// ErrNotFoundOrForbidden deliberately covers missing, foreign and booked
	// slots alike so callers cannot tell which one it was.
	ErrNotFoundOrForbidden = apperr.New(apperr.KindNotFound, "SLOT_NOT_DELETABLE",
		"slot cannot be deleted: it may be booked or may not exist", http.StatusBadRequest)
)

type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New(), now: time.Now}
}

func (s *Service) CreateSlot(ctx context.Context, mentorID int, start time.Time, durationMinutes int, meetingLink string) (*Slot, error) {
	if !start.After(s.now()) {
		return nil, ErrStartInPast
	}
	if durationMinutes < MinDurationMinutes {
		return nil, ErrDurationTooShort
	}
	if durationMinutes > MaxDurationMinutes {
		return nil, ErrDurationTooLong
	}

	var link *string
	if meetingLink != "" {
		if err := s.validate.Var(meetingLink, "http_url"); err != nil {
			return nil, ErrInvalidMeetingLink
		}
		link = &meetingLink
	}

	start = start.UTC()
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	// Fast path only; the exclusion constraint decides under concurrency.
	overlaps, err := s.repo.OverlapExists(ctx, mentorID, start, end)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, ErrOverlap
	}

	slot, err := s.repo.Insert(ctx, &Slot{
		MentorID:        mentorID,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: durationMinutes,
		MeetingLink:     link,
	})
	if err != nil {
		if db.IsExclusionViolation(err) {
			return nil, ErrOverlap
		}
		return nil, err
	}

	logger.Info("slot created", "slot_id", slot.ID, "mentor_id", mentorID, "start", slot.StartTime)
	return slot, nil
}

func (s *Service) DeleteSlot(ctx context.Context, slotID, mentorID int) error {
	deleted, err := s.repo.DeleteFree(ctx, slotID, mentorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFoundOrForbidden
	}

	logger.Info("slot deleted", "slot_id", slotID, "mentor_id", mentorID)
	return nil
}

func (s *Service) ListUpcomingForMentor(ctx context.Context, mentorID int) ([]Slot, error) {
	return s.repo.ListUpcomingForMentor(ctx, mentorID, s.now())
}

func (s *Service) ListPublicUpcoming(ctx context.Context, mentorID int) ([]Slot, error) {
	return s.repo.ListPublicUpcoming(ctx, mentorID, s.now())
}
