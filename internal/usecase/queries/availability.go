package queries

import (
	"context"

	"projector-reservation/internal/domain/projector"
	"projector-reservation/internal/domain/reservation"
	"projector-reservation/internal/infra/db"
	"projector-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DayReservationReader interface {
	ListByDate(ctx context.Context, q db.DBTX, date reservation.Date) ([]reservation.DayReservation, error)
}

type ActiveProjectorReader interface {
	FindActive(ctx context.Context, q db.DBTX) ([]*projector.Projector, error)
}

type AvailabilityQueries interface {
	DayAvailability(ctx context.Context, userID uuid.UUID, date string, includeDetails bool) ([]SlotAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	reservationRepo DayReservationReader
	projectorRepo   ActiveProjectorReader
	pool            *pgxpool.Pool
}

func NewAvailabilityQueries(
	reservationRepo DayReservationReader,
	projectorRepo ActiveProjectorReader,
	pool *pgxpool.Pool,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		reservationRepo: reservationRepo,
		projectorRepo:   projectorRepo,
		pool:            pool,
	}
}

// DayAvailability reports per-slot occupancy for one day. The result always
// covers the full catalog in schedule order, even for a day with no
// reservations.
func (a *availabilityQueriesImpl) DayAvailability(
	ctx context.Context,
	userID uuid.UUID,
	date string,
	includeDetails bool,
) ([]SlotAvailabilityView, error) {
	day, err := reservation.NewDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	active, err := a.projectorRepo.FindActive(ctx, a.pool)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	onDate, err := a.reservationRepo.ListByDate(ctx, a.pool, day)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	slots := reservation.ComputeAvailability(userID, len(active), onDate, includeDetails)

	out := make([]SlotAvailabilityView, 0, len(slots))
	for _, s := range slots {
		view := SlotAvailabilityView{
			Slot:             s.Slot.ID,
			Label:            s.Slot.Label,
			StartTime:        s.Slot.StartTime,
			EndTime:          s.Slot.EndTime,
			Period:           string(s.Slot.Period),
			ReservedCount:    s.ReservedCount,
			AvailableCount:   s.AvailableCount,
			TotalProjectors:  s.TotalProjectors,
			IsReservedByUser: s.ReservedByUser,
		}
		for _, d := range s.Details {
			view.Reservations = append(view.Reservations, SlotReservationView{
				UserName:      d.UserName,
				UserArea:      d.UserArea,
				ProjectorName: d.ProjectorName,
			})
		}
		out = append(out, view)
	}
	return out, nil
}
