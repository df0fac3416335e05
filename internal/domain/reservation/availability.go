package reservation

import (
	"time"

	"projector-reservation/internal/domain/schedule"

	"github.com/google/uuid"
)

// DayReservation is the request-scoped projection of one persisted
// reservation used by the availability calculator and the allocator. The
// display fields are populated only when the caller asked for details.
type DayReservation struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ProjectorID   uuid.UUID
	Slots         SlotSet
	CreatedAt     time.Time
	UserName      string
	UserArea      string
	ProjectorName string
}

type SlotReservationDetail struct {
	UserName      string
	UserArea      string
	ProjectorName string
}

type SlotAvailability struct {
	Slot            schedule.Slot
	ReservedCount   int
	AvailableCount  int
	TotalProjectors int
	ReservedByUser  bool
	Details         []SlotReservationDetail
}

// ComputeAvailability derives per-slot occupancy for one day. Output has one
// entry per catalog slot, in catalog order; AvailableCount is clamped at
// zero. Pure function of its inputs.
func ComputeAvailability(
	requestingUserID uuid.UUID,
	totalActiveProjectors int,
	reservationsOnDate []DayReservation,
	includeDetails bool,
) []SlotAvailability {
	out := make([]SlotAvailability, 0, schedule.Len())

	for _, slot := range schedule.Slots() {
		entry := SlotAvailability{
			Slot:            slot,
			TotalProjectors: totalActiveProjectors,
		}

		for _, res := range reservationsOnDate {
			if !res.Slots.Contains(slot.ID) {
				continue
			}
			entry.ReservedCount++
			if res.UserID == requestingUserID {
				entry.ReservedByUser = true
			}
			if includeDetails {
				entry.Details = append(entry.Details, SlotReservationDetail{
					UserName:      res.UserName,
					UserArea:      res.UserArea,
					ProjectorName: res.ProjectorName,
				})
			}
		}

		entry.AvailableCount = totalActiveProjectors - entry.ReservedCount
		if entry.AvailableCount < 0 {
			entry.AvailableCount = 0
		}

		out = append(out, entry)
	}

	return out
}
