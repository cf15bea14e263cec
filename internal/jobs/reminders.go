package jobs

import (
	"context"
	"time"

	"mentormatch/internal/booking"
	"mentormatch/internal/email"
	"mentormatch/internal/logger"
)

const (
	ReminderLead   = 60 * time.Minute
	ReminderWindow = 5 * time.Minute
)

type ReminderSource interface {
	UpcomingReminders(ctx context.Context, from, to time.Time) ([]booking.Reminder, error)
}

type Mailer interface {
	EmailNotify(ctx context.Context, to, name string, msg email.Message)
}

// Reminders mails both parties of every confirmed session starting about an
// hour from now. Each run covers [now+lead, now+lead+window), so with the
// schedule firing once per window every session is picked up once.
type Reminders struct {
	source ReminderSource
	mailer Mailer
	now    func() time.Time
}

func NewReminders(source ReminderSource, mailer Mailer) *Reminders {
	return &Reminders{source: source, mailer: mailer, now: time.Now}
}

func (r *Reminders) Run(ctx context.Context) int {
	from := r.now().Add(ReminderLead)
	to := from.Add(ReminderWindow)

	reminders, err := r.source.UpcomingReminders(ctx, from, to)
	if err != nil {
		logger.Error("reminder lookup failed", "from", from, "to", to, "error", err)
		return 0
	}

	for _, rem := range reminders {
		for _, p := range []booking.Party{rem.Mentor, rem.Mentee} {
			r.mailer.EmailNotify(ctx, p.Email, p.Name, email.ReminderMessage(p.Name, rem.StartTime, rem.MeetingLink))
		}
	}

	if len(reminders) > 0 {
		logger.Info("session reminders queued", "sessions", len(reminders))
	}
	return len(reminders)
}
