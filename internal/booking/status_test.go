package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCanceled, true},
		{StatusConfirmed, StatusCanceled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCanceled, StatusConfirmed, false},
		{StatusCanceled, StatusPending, false},
		{StatusCanceled, StatusCanceled, false},
		{StatusDone, StatusCanceled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusDone, DisplayStatus(StatusConfirmed, now, now))
	assert.Equal(t, StatusDone, DisplayStatus(StatusConfirmed, now.Add(-time.Minute), now))
	assert.Equal(t, StatusConfirmed, DisplayStatus(StatusConfirmed, now.Add(time.Minute), now))
	assert.Equal(t, StatusPending, DisplayStatus(StatusPending, now.Add(-time.Hour), now))
	assert.Equal(t, StatusCanceled, DisplayStatus(StatusCanceled, now.Add(-time.Hour), now))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(50))
	assert.Equal(t, StatusConfirmed, InitialStatus(0))
}
