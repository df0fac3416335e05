package reservation

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Candidate is an active projector eligible for allocation. A zero
// CreatedAt sorts as oldest, so legacy rows without a timestamp keep their
// FIFO priority.
type Candidate struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// SelfConflictError reports that the requesting user already holds an
// overlapping reservation that day. Slots carries the conflicting ids so the
// message can surface them.
type SelfConflictError struct {
	Slots []int
}

func (e *SelfConflictError) Error() string {
	return fmt.Sprintf("user already holds a conflicting reservation for slots %v on this day", e.Slots)
}

// NoProjectorError means no single projector is free across the whole
// requested slot set.
type NoProjectorError struct {
	Requested []int
}

func (e *NoProjectorError) Error() string {
	return fmt.Sprintf("no single projector is free for all of slots %v; try reserving the slots separately", e.Requested)
}

// Allocate decides which projector serves a request for requestedSlots on
// one day. Candidates are preferred FIFO by CreatedAt (ties by input order);
// the chosen projector must be free for every requested slot. Pure decision
// logic; the caller is responsible for running it against a consistent
// snapshot and persisting the result atomically.
func Allocate(
	requestedSlots SlotSet,
	userID uuid.UUID,
	candidates []Candidate,
	reservationsOnDate []DayReservation,
) (Candidate, error) {
	// Self-conflict first: the user may not hold two intersecting
	// reservations on the same day, regardless of projector.
	for _, res := range reservationsOnDate {
		if res.UserID != userID {
			continue
		}
		if conflict := res.Slots.Intersect(requestedSlots); len(conflict) > 0 {
			return Candidate{}, &SelfConflictError{Slots: conflict}
		}
	}

	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	// projector id -> slots already booked on it that day
	occupancy := make(map[uuid.UUID]map[int]bool)
	for _, res := range reservationsOnDate {
		booked := occupancy[res.ProjectorID]
		if booked == nil {
			booked = make(map[int]bool)
			occupancy[res.ProjectorID] = booked
		}
		for _, id := range res.Slots.IDs() {
			booked[id] = true
		}
	}

	for _, cand := range ordered {
		booked := occupancy[cand.ID]
		if booked == nil {
			return cand, nil
		}
		free := true
		for _, id := range requestedSlots.IDs() {
			if booked[id] {
				free = false
				break
			}
		}
		if free {
			return cand, nil
		}
	}

	return Candidate{}, &NoProjectorError{Requested: requestedSlots.IDs()}
}
