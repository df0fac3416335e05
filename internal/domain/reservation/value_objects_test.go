//go:build unit

package reservation_test

import (
	"testing"

	"projector-reservation/internal/domain/reservation"
	"projector-reservation/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "canonical form", input: "2026-03-10"},
		{name: "leap day", input: "2024-02-29"},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong separator", input: "2026/03/10", wantErr: true},
		{name: "not zero padded", input: "2026-3-1", wantErr: true},
		{name: "impossible day", input: "2026-02-30", wantErr: true},
		{name: "garbage", input: "not-a-date", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := reservation.NewDate(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, reservation.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, d.String())
		})
	}
}

func TestNewSlotSet(t *testing.T) {
	t.Run("normalizes order and duplicates", func(t *testing.T) {
		set, err := reservation.NewSlotSet([]int{5, 3, 3, 1, 5})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3, 5}, set.IDs())
		assert.Equal(t, 3, set.Len())
	})

	t.Run("idempotent on already normalized input", func(t *testing.T) {
		first, err := reservation.NewSlotSet([]int{2, 4, 6})
		require.NoError(t, err)
		second, err := reservation.NewSlotSet(first.IDs())
		require.NoError(t, err)
		assert.Equal(t, first.IDs(), second.IDs())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := reservation.NewSlotSet(nil)
		assert.ErrorIs(t, err, reservation.ErrEmptySlotSet)
	})

	t.Run("rejects ids outside the catalog", func(t *testing.T) {
		for _, ids := range [][]int{{0}, {10}, {1, 2, 99}, {-3}} {
			_, err := reservation.NewSlotSet(ids)
			assert.ErrorIs(t, err, schedule.ErrUnknownSlot, "ids %v", ids)
		}
	})
}

func TestSlotSetIntersect(t *testing.T) {
	a, err := reservation.NewSlotSet([]int{1, 2, 3})
	require.NoError(t, err)
	b, err := reservation.NewSlotSet([]int{3, 4})
	require.NoError(t, err)
	c, err := reservation.NewSlotSet([]int{7, 8})
	require.NoError(t, err)

	assert.Equal(t, []int{3}, a.Intersect(b))
	assert.True(t, a.Overlaps(b))

	assert.Empty(t, a.Intersect(c))
	assert.False(t, a.Overlaps(c))

	assert.True(t, a.Contains(2))
	assert.False(t, a.Contains(4))
	assert.Equal(t, 1, a.First())
	assert.Equal(t, 3, a.Last())
}

func TestReconstructSlotSet(t *testing.T) {
	// Persisted data skips validation but still gets sorted.
	set := reservation.ReconstructSlotSet([]int{9, 1, 5})
	assert.Equal(t, []int{1, 5, 9}, set.IDs())
}
