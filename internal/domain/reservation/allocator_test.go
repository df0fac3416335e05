//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"projector-reservation/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlotSet(t *testing.T, ids ...int) reservation.SlotSet {
	t.Helper()
	set, err := reservation.NewSlotSet(ids)
	require.NoError(t, err)
	return set
}

func dayReservation(t *testing.T, userID, projectorID uuid.UUID, slots ...int) reservation.DayReservation {
	t.Helper()
	return reservation.DayReservation{
		ID:          uuid.New(),
		UserID:      userID,
		ProjectorID: projectorID,
		Slots:       mustSlotSet(t, slots...),
	}
}

func TestAllocate(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()

	t.Run("picks the oldest free projector", func(t *testing.T) {
		p1 := reservation.Candidate{ID: uuid.New(), Name: "P1", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
		p2 := reservation.Candidate{ID: uuid.New(), Name: "P2", CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

		chosen, err := reservation.Allocate(mustSlotSet(t, 2), userA, []reservation.Candidate{p2, p1}, nil)
		require.NoError(t, err)
		assert.Equal(t, p1.ID, chosen.ID)
	})

	t.Run("skips a projector busy in the requested slot", func(t *testing.T) {
		p1 := reservation.Candidate{ID: uuid.New(), Name: "P1", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
		p2 := reservation.Candidate{ID: uuid.New(), Name: "P2", CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
		existing := []reservation.DayReservation{
			dayReservation(t, userA, p1.ID, 2),
		}

		chosen, err := reservation.Allocate(mustSlotSet(t, 2), userB, []reservation.Candidate{p1, p2}, existing)
		require.NoError(t, err)
		assert.Equal(t, p2.ID, chosen.ID)
	})

	t.Run("multi slot request needs one projector free across all slots", func(t *testing.T) {
		p1 := reservation.Candidate{ID: uuid.New(), Name: "P1", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
		p2 := reservation.Candidate{ID: uuid.New(), Name: "P2", CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
		existing := []reservation.DayReservation{
			dayReservation(t, userA, p1.ID, 2), // P1 partially busy
		}

		chosen, err := reservation.Allocate(mustSlotSet(t, 1, 2, 3), userB, []reservation.Candidate{p1, p2}, existing)
		require.NoError(t, err)
		assert.Equal(t, p2.ID, chosen.ID, "a projector busy in any requested slot is disqualified")
	})

	t.Run("no projector free across the whole request", func(t *testing.T) {
		p1 := reservation.Candidate{ID: uuid.New(), Name: "P1"}
		existing := []reservation.DayReservation{
			dayReservation(t, userA, p1.ID, 2),
		}

		_, err := reservation.Allocate(mustSlotSet(t, 1, 2), userB, []reservation.Candidate{p1}, existing)
		require.Error(t, err)

		var noProj *reservation.NoProjectorError
		require.ErrorAs(t, err, &noProj)
		assert.Equal(t, []int{1, 2}, noProj.Requested)
		assert.Contains(t, err.Error(), "separately", "message should suggest splitting the request")
	})

	t.Run("self conflict wins over availability and names the slots", func(t *testing.T) {
		p1 := reservation.Candidate{ID: uuid.New(), Name: "P1"}
		p2 := reservation.Candidate{ID: uuid.New(), Name: "P2"}
		existing := []reservation.DayReservation{
			dayReservation(t, userB, p1.ID, 3, 4),
		}

		// P2 is completely free, but the user already holds slot 3.
		_, err := reservation.Allocate(mustSlotSet(t, 3), userB, []reservation.Candidate{p1, p2}, existing)
		require.Error(t, err)

		var conflict *reservation.SelfConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, []int{3}, conflict.Slots)
		assert.Contains(t, err.Error(), "3")
	})

	t.Run("other users reservations never self conflict", func(t *testing.T) {
		p1 := reservation.Candidate{ID: uuid.New(), Name: "P1"}
		p2 := reservation.Candidate{ID: uuid.New(), Name: "P2"}
		existing := []reservation.DayReservation{
			dayReservation(t, userA, p1.ID, 3),
		}

		chosen, err := reservation.Allocate(mustSlotSet(t, 3), userB, []reservation.Candidate{p1, p2}, existing)
		require.NoError(t, err)
		assert.Equal(t, p2.ID, chosen.ID)
	})

	t.Run("zero created_at sorts as oldest", func(t *testing.T) {
		legacy := reservation.Candidate{ID: uuid.New(), Name: "Legacy"}
		newer := reservation.Candidate{ID: uuid.New(), Name: "Newer", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

		chosen, err := reservation.Allocate(mustSlotSet(t, 1), userA, []reservation.Candidate{newer, legacy}, nil)
		require.NoError(t, err)
		assert.Equal(t, legacy.ID, chosen.ID)
	})

	t.Run("equal created_at keeps input order", func(t *testing.T) {
		ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		first := reservation.Candidate{ID: uuid.New(), Name: "First", CreatedAt: ts}
		second := reservation.Candidate{ID: uuid.New(), Name: "Second", CreatedAt: ts}

		// Deterministic across repeated runs: stable sort must not swap ties.
		for range 10 {
			chosen, err := reservation.Allocate(mustSlotSet(t, 1), userA, []reservation.Candidate{first, second}, nil)
			require.NoError(t, err)
			assert.Equal(t, first.ID, chosen.ID)
		}
	})

	t.Run("no candidates at all", func(t *testing.T) {
		_, err := reservation.Allocate(mustSlotSet(t, 1), userA, nil, nil)
		require.Error(t, err)

		var noProj *reservation.NoProjectorError
		assert.ErrorAs(t, err, &noProj)
	})

	t.Run("error strings never expose internal ids", func(t *testing.T) {
		p1 := reservation.Candidate{ID: uuid.New(), Name: "P1"}
		existing := []reservation.DayReservation{
			dayReservation(t, userA, p1.ID, 1),
		}
		_, err := reservation.Allocate(mustSlotSet(t, 1), userB, []reservation.Candidate{p1}, existing)
		require.Error(t, err)
		assert.False(t, strings.Contains(err.Error(), p1.ID.String()))
	})
}
