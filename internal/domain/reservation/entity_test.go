//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"projector-reservation/internal/domain/reservation"
	"projector-reservation/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationOwnership(t *testing.T) {
	owner := uuid.New()
	date, err := reservation.NewDate("2026-03-10")
	require.NoError(t, err)

	res := reservation.NewReservation(date, mustSlotSet(t, 1), owner, uuid.New())

	assert.True(t, res.IsOwnedBy(owner))
	assert.False(t, res.IsOwnedBy(uuid.New()))
}

func TestHasExpired(t *testing.T) {
	loc := schedule.Location()
	date, err := reservation.NewDate("2026-03-10")
	require.NoError(t, err)

	// Slots 1 and 3; slot 3 ends 10:20, so expiry follows the last slot.
	res := reservation.NewReservation(date, mustSlotSet(t, 1, 3), uuid.New(), uuid.New())

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{name: "before the first slot", now: time.Date(2026, 3, 10, 7, 0, 0, 0, loc)},
		{name: "between slots", now: time.Date(2026, 3, 10, 9, 0, 0, 0, loc)},
		{name: "exactly at the last slot end", now: time.Date(2026, 3, 10, 10, 20, 0, 0, loc)},
		{name: "one minute after the last slot", now: time.Date(2026, 3, 10, 10, 21, 0, 0, loc), expired: true},
		{name: "next day", now: time.Date(2026, 3, 11, 7, 0, 0, 0, loc), expired: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expired, res.HasExpired(tc.now, loc))
		})
	}
}
