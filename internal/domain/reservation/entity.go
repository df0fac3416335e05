package reservation

import (
	"time"

	"projector-reservation/internal/domain/schedule"

	"github.com/google/uuid"
)

// Reservation binds one user to one projector for a set of slots on one day.
// Records are never auto-expired; HasExpired is derived at read time.
type Reservation struct {
	id          uuid.UUID
	date        Date
	slots       SlotSet
	userID      uuid.UUID
	projectorID uuid.UUID
	createdAt   time.Time
}

func NewReservation(date Date, slots SlotSet, userID, projectorID uuid.UUID) *Reservation {
	return &Reservation{
		id:          uuid.New(),
		date:        date,
		slots:       slots,
		userID:      userID,
		projectorID: projectorID,
	}
}

func ReconstructReservation(
	id uuid.UUID,
	date Date,
	slots SlotSet,
	userID, projectorID uuid.UUID,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		date:        date,
		slots:       slots,
		userID:      userID,
		projectorID: projectorID,
		createdAt:   createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) Date() Date             { return r.date }
func (r *Reservation) Slots() SlotSet         { return r.slots }
func (r *Reservation) UserID() uuid.UUID      { return r.userID }
func (r *Reservation) ProjectorID() uuid.UUID { return r.projectorID }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// HasExpired reports whether the end of the reservation's last slot is in
// the past, anchored to the schedule's wall-clock zone.
func (r *Reservation) HasExpired(now time.Time, loc *time.Location) bool {
	last, err := schedule.ByID(r.slots.Last())
	if err != nil {
		return false
	}
	return now.After(last.EndOn(r.date.Day(loc), loc))
}
