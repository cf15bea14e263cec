package booking

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"

	// StatusDone is never stored. It is how a confirmed booking whose slot
	// has ended is shown.
	StatusDone Status = "done"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCanceled},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsDone(status Status, slotEnd, now time.Time) bool {
	return status == StatusConfirmed && !slotEnd.After(now)
}

func DisplayStatus(status Status, slotEnd, now time.Time) Status {
	if IsDone(status, slotEnd, now) {
		return StatusDone
	}
	return status
}

// InitialStatus is pending when there is something to pay.
func InitialStatus(price float64) Status {
	if price > 0 {
		return StatusPending
	}
	return StatusConfirmed
}
