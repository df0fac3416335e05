package queries

import (
	"context"
	"time"

	"projector-reservation/internal/domain/reservation"
	"projector-reservation/internal/domain/schedule"
	"projector-reservation/internal/pkg/clock"
	"projector-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserReservationReader interface {
	ListByUserFrom(ctx context.Context, userID uuid.UUID, fromDate reservation.Date) ([]*ReservationView, error)
}

type ReservationQueries interface {
	ListUserReservations(ctx context.Context, userID uuid.UUID, from string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservationRepo UserReservationReader
	clock           clock.Clock
}

func NewReservationQueries(reservationRepo UserReservationReader, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{
		reservationRepo: reservationRepo,
		clock:           clk,
	}
}

// ListUserReservations returns the user's reservations from the given date
// onward, defaulting to today. Expiry is derived at read time from the end
// of each reservation's last slot.
func (r *reservationQueriesImpl) ListUserReservations(
	ctx context.Context,
	userID uuid.UUID,
	from string,
) ([]*ReservationView, error) {
	loc := schedule.Location()
	now := r.clock.Now().In(loc)

	var fromDate reservation.Date
	if from == "" {
		fromDate = reservation.DateOf(now)
	} else {
		var err error
		fromDate, err = reservation.NewDate(from)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
	}

	views, err := r.reservationRepo.ListByUserFrom(ctx, userID, fromDate)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	for _, v := range views {
		v.Expired = isExpired(v, now, loc)
	}
	return views, nil
}

func isExpired(v *ReservationView, now time.Time, loc *time.Location) bool {
	if len(v.Slots) == 0 {
		return false
	}
	date, err := reservation.NewDate(v.Date)
	if err != nil {
		return false
	}
	last := v.Slots[len(v.Slots)-1]
	slot, err := schedule.ByID(last)
	if err != nil {
		return false
	}
	return now.After(slot.EndOn(date.Day(loc), loc))
}
