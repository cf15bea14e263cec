package booking

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"mentormatch/internal/apperr"
	"mentormatch/internal/auth"
	"mentormatch/internal/db"
	"mentormatch/internal/email"
	"mentormatch/internal/events"
	"mentormatch/internal/logger"
	"mentormatch/internal/metrics"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrForbiddenRole = apperr.New(apperr.KindForbidden, "ONLY_MENTEES_CAN_BOOK", "only mentees can book a session", http.StatusBadRequest)
	ErrSlotNotFound  = apperr.NotFound("SLOT_NOT_FOUND", "availability slot not found")
	ErrAlreadyBooked = apperr.Conflict("SLOT_ALREADY_BOOKED", "this slot has already been booked")
	ErrSelfBooking   = apperr.Validation("SELF_BOOKING", "you cannot book a session with yourself")
	ErrSlotStarted   = apperr.InvalidState("SLOT_STARTED", "this slot has already started")

	ErrNotFound     = apperr.NotFound("BOOKING_NOT_FOUND", "booking not found")
	ErrForbidden    = apperr.Forbidden("BOOKING_FORBIDDEN", "not allowed to cancel this booking")
	ErrInvalidState = apperr.InvalidState("BOOKING_NOT_CANCELABLE", "this booking can no longer be canceled")
)

// Notifier is the best-effort side channel. Implementations must not fail.
type Notifier interface {
	Notify(ctx context.Context, userID int, eventType string, bookingID int, payload map[string]interface{})
	EmailNotify(ctx context.Context, to, name string, msg email.Message)
}

type Service struct {
	txm            *db.TxManager
	repo           *Repository
	notifier       Notifier
	meetingBaseURL string
	now            func() time.Time
}

func NewService(txm *db.TxManager, repo *Repository, notifier Notifier, meetingBaseURL string) *Service {
	return &Service{
		txm:            txm,
		repo:           repo,
		notifier:       notifier,
		meetingBaseURL: strings.TrimRight(meetingBaseURL, "/"),
		now:            time.Now,
	}
}

// CreateBooking claims slotID for the mentee. The slot row lock totally
// orders concurrent claims: the first one flips is_booked and every later one
// sees it set and fails with ErrAlreadyBooked.
func (s *Service) CreateBooking(ctx context.Context, p auth.Principal, slotID int) (*Booking, error) {
	if p.Role != auth.RoleMentee {
		return nil, ErrForbiddenRole
	}

	var (
		created *Booking
		slot    *slotSnapshot
	)
	err := s.txm.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		slot, err = s.repo.LockSlot(ctx, tx, slotID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSlotNotFound
		}
		if err != nil {
			return err
		}

		if slot.IsBooked {
			return ErrAlreadyBooked
		}
		if slot.MentorID == p.ID {
			return ErrSelfBooking
		}
		if !slot.StartTime.After(s.now()) {
			return ErrSlotStarted
		}

		if err := s.repo.SetSlotBooked(ctx, tx, slot.ID, true); err != nil {
			return err
		}

		rate, err := s.repo.HourlyRate(ctx, tx, slot.MentorID)
		if err != nil {
			return err
		}
		price := 0.0
		if rate != nil {
			price = *rate
		}

		created, err = s.repo.Insert(ctx, tx, &Booking{
			SlotID:      slot.ID,
			MentorID:    slot.MentorID,
			MenteeID:    p.ID,
			Status:      InitialStatus(price),
			Price:       price,
			MeetingLink: s.meetingLink(slot.MeetingLink),
		})
		if db.IsUniqueViolation(err) {
			return ErrAlreadyBooked
		}
		return err
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyBooked) {
			metrics.RecordClaimConflict()
		}
		return nil, err
	}

	metrics.RecordBooking(string(created.Status))
	logger.Info("booking created",
		"booking_id", created.ID,
		"slot_id", created.SlotID,
		"mentee_id", created.MenteeID,
		"status", created.Status,
	)

	s.notifyCreated(ctx, created, slot.StartTime)
	return created, nil
}

func (s *Service) meetingLink(slotLink *string) string {
	if slotLink != nil && *slotLink != "" {
		return *slotLink
	}
	return s.meetingBaseURL + "/mock-" + uuid.NewString()
}

// CancelBooking moves a live booking to canceled and frees the same slot row
// so it can be claimed again by a fresh booking.
func (s *Service) CancelBooking(ctx context.Context, requesterID, bookingID int) (*Booking, error) {
	var (
		updated *Booking
		locked  *lockedBooking
	)
	err := s.txm.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		locked, err = s.repo.LockWithSlot(ctx, tx, bookingID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if requesterID != locked.MentorID && requesterID != locked.MenteeID {
			return ErrForbidden
		}
		if IsDone(locked.Status, locked.EndTime, s.now()) || !CanTransition(locked.Status, StatusCanceled) {
			return ErrInvalidState
		}

		updated, err = s.repo.SetStatus(ctx, tx, bookingID, StatusCanceled)
		if err != nil {
			return err
		}
		return s.repo.SetSlotBooked(ctx, tx, locked.SlotID, false)
	})
	if err != nil {
		return nil, err
	}

	actor := auth.RoleMentee
	if requesterID == locked.MentorID {
		actor = auth.RoleMentor
	}
	metrics.RecordBookingCancellation(actor)
	logger.Info("booking canceled", "booking_id", bookingID, "slot_id", locked.SlotID, "by", actor)

	s.notifyCanceled(ctx, locked, requesterID)
	return updated, nil
}

// ConfirmIfPending applies a deferred payment. It never overrides a booking
// that has left pending in the meantime.
func (s *Service) ConfirmIfPending(ctx context.Context, bookingID int) (bool, error) {
	ok, err := s.repo.ConfirmIfPending(ctx, s.txm.DB(), bookingID)
	if err != nil || !ok {
		return ok, err
	}

	logger.Info("booking confirmed by payment", "booking_id", bookingID)
	s.notifyPaid(ctx, bookingID)
	return true, nil
}

func (s *Service) GetForMentee(ctx context.Context, bookingID, menteeID int) (*Booking, error) {
	b, err := s.repo.GetForMentee(ctx, s.txm.DB(), bookingID, menteeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *Service) Get(ctx context.Context, bookingID, userID int) (*View, error) {
	v, err := s.repo.GetVisible(ctx, s.txm.DB(), bookingID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	v.DisplayStatus = DisplayStatus(v.Status, v.EndTime, s.now())
	return v, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int) ([]View, error) {
	views, err := s.repo.ListForUser(ctx, s.txm.DB(), userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range views {
		views[i].DisplayStatus = DisplayStatus(views[i].Status, views[i].EndTime, now)
	}
	return views, nil
}

// UpcomingReminders lists confirmed sessions starting in [from, to).
func (s *Service) UpcomingReminders(ctx context.Context, from, to time.Time) ([]Reminder, error) {
	views, err := s.repo.ListConfirmedStartingBetween(ctx, s.txm.DB(), from, to)
	if err != nil || len(views) == 0 {
		return nil, err
	}

	ids := make([]int, 0, len(views)*2)
	for _, v := range views {
		ids = append(ids, v.MentorID, v.MenteeID)
	}
	parties, err := s.repo.Parties(ctx, s.txm.DB(), ids...)
	if err != nil {
		return nil, err
	}

	out := make([]Reminder, 0, len(views))
	for _, v := range views {
		out = append(out, Reminder{
			BookingID:   v.ID,
			StartTime:   v.StartTime,
			MeetingLink: v.MeetingLink,
			Mentor:      parties[v.MentorID],
			Mentee:      parties[v.MenteeID],
		})
	}
	return out, nil
}

func (s *Service) parties(ctx context.Context, ids ...int) map[int]Party {
	parties, err := s.repo.Parties(ctx, s.txm.DB(), ids...)
	if err != nil {
		metrics.RecordSideChannelFailure("lookup")
		logger.Warn("could not load booking parties", "error", err)
		return map[int]Party{}
	}
	return parties
}

func (s *Service) notifyCreated(ctx context.Context, b *Booking, start time.Time) {
	parties := s.parties(ctx, b.MentorID, b.MenteeID)
	mentor, mentee := parties[b.MentorID], parties[b.MenteeID]

	s.notifier.Notify(ctx, b.MentorID, events.BookingCreated, b.ID, map[string]interface{}{
		"mentee_name": mentee.FullName(),
		"start_time":  start,
		"status":      b.Status,
	})
	s.notifier.EmailNotify(ctx, mentor.Email, mentor.Name,
		email.NewBookingMessage(mentor.Name, mentee.FullName(), start))
}

func (s *Service) notifyCanceled(ctx context.Context, lb *lockedBooking, requesterID int) {
	parties := s.parties(ctx, lb.MentorID, lb.MenteeID)

	targetID, eventType, nameKey := lb.MentorID, events.BookingCanceledByMentee, "mentee_name"
	if requesterID == lb.MentorID {
		targetID, eventType, nameKey = lb.MenteeID, events.BookingCanceledByMentor, "mentor_name"
	}
	target, canceler := parties[targetID], parties[requesterID]

	s.notifier.Notify(ctx, targetID, eventType, lb.ID, map[string]interface{}{
		nameKey:      canceler.FullName(),
		"start_time": lb.StartTime,
	})
	s.notifier.EmailNotify(ctx, target.Email, target.Name,
		email.CancellationMessage(target.Name, canceler.FullName(), lb.StartTime))
}

func (s *Service) notifyPaid(ctx context.Context, bookingID int) {
	v, err := s.repo.GetView(ctx, s.txm.DB(), bookingID)
	if err != nil {
		metrics.RecordSideChannelFailure("lookup")
		logger.Warn("could not load confirmed booking", "booking_id", bookingID, "error", err)
		return
	}

	mentee := s.parties(ctx, v.MenteeID)[v.MenteeID]
	s.notifier.Notify(ctx, v.MenteeID, events.PaymentConfirmed, v.ID, map[string]interface{}{
		"price":      v.Price,
		"start_time": v.StartTime,
	})
	s.notifier.EmailNotify(ctx, mentee.Email, mentee.Name,
		email.PaymentConfirmedMessage(mentee.Name, v.StartTime, v.MeetingLink))
}
