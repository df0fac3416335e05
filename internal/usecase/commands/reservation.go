package commands

import (
	"context"
	"errors"

	"projector-reservation/internal/domain/projector"
	"projector-reservation/internal/domain/reservation"
	"projector-reservation/internal/domain/user"
	"projector-reservation/internal/infra"
	"projector-reservation/internal/infra/db"
	"projector-reservation/internal/pkg/clock"
	"projector-reservation/internal/pkg/errs"
	"projector-reservation/internal/usecase/queries"
	"projector-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrValidation           = errs.New("validation error")
	ErrSelfConflict         = errs.New("conflicting reservation for the same user")
	ErrNoProjectorAvailable = errs.New("no projector available")
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrForbidden            = errs.New("operation not permitted")
	ErrDatabaseOperation    = errs.New("database operation failed")
)

type CreateReservationParams struct {
	Date  string
	Slots []int
}

type ReservationRepository interface {
	AcquireDateLock(ctx context.Context, tx db.DBTX, date reservation.Date) error
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ListByDate(ctx context.Context, q db.DBTX, date reservation.Date) ([]reservation.DayReservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ActiveProjectorFinder interface {
	FindActive(ctx context.Context, q db.DBTX) ([]*projector.Projector, error)
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams, userID uuid.UUID) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id uuid.UUID, actingUserID uuid.UUID, actingRole user.Role) error
}

type reservationCommandsImpl struct {
	reservationRepo ReservationRepository
	projectorRepo   ActiveProjectorFinder
	pool            *pgxpool.Pool
	clock           clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	projectorRepo ActiveProjectorFinder,
	pool *pgxpool.Pool,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo: reservationRepo,
		projectorRepo:   projectorRepo,
		pool:            pool,
		clock:           clock,
	}
}

// CreateReservation runs the whole read-decide-write sequence inside one
// transaction holding an advisory lock on the date, so two concurrent
// requests for the same day cannot both observe the same projector as free.
func (c *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	params CreateReservationParams,
	userID uuid.UUID,
) (*queries.ReservationView, error) {
	date, err := reservation.NewDate(params.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	requested, err := reservation.NewSlotSet(params.Slots)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	return shared.RunInTxWithRetry(ctx, c.pool, 3, func(tx db.DBTX) (*queries.ReservationView, error) {
		if err := c.reservationRepo.AcquireDateLock(ctx, tx, date); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperation)
		}

		active, err := c.projectorRepo.FindActive(ctx, tx)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperation)
		}

		onDate, err := c.reservationRepo.ListByDate(ctx, tx, date)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperation)
		}

		candidates := make([]reservation.Candidate, len(active))
		for i, p := range active {
			candidates[i] = reservation.Candidate{
				ID:        p.ID(),
				Name:      p.Name(),
				CreatedAt: p.CreatedAt(),
			}
		}

		chosen, err := reservation.Allocate(requested, userID, candidates, onDate)
		if err != nil {
			var selfConflict *reservation.SelfConflictError
			if errors.As(err, &selfConflict) {
				return nil, errs.Mark(err, ErrSelfConflict)
			}
			var noProjector *reservation.NoProjectorError
			if errors.As(err, &noProjector) {
				return nil, errs.Mark(err, ErrNoProjectorAvailable)
			}
			return nil, err
		}

		entity := reservation.NewReservation(date, requested, userID, chosen.ID)
		if err := c.reservationRepo.Create(ctx, tx, entity); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperation)
		}

		return &queries.ReservationView{
			ID:            entity.ID(),
			Date:          date.String(),
			Slots:         requested.IDs(),
			UserID:        userID,
			ProjectorID:   chosen.ID,
			ProjectorName: chosen.Name,
			CreatedAt:     c.clock.Now(),
		}, nil
	})
}

// CancelReservation deletes a reservation when the caller owns it or is an
// admin. Occupancy is always recomputed, so nothing else needs cleanup.
func (c *reservationCommandsImpl) CancelReservation(
	ctx context.Context,
	id uuid.UUID,
	actingUserID uuid.UUID,
	actingRole user.Role,
) error {
	res, err := c.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	if !res.IsOwnedBy(actingUserID) && actingRole != user.RoleAdmin {
		return ErrForbidden
	}

	if err := c.reservationRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	return nil
}
