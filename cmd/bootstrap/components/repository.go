package components

import (
	"projector-reservation/internal/infra/db"
	"projector-reservation/internal/infra/repository"
	"projector-reservation/internal/usecase/commands"
	"projector-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		repository.NewUserRepository,
		repository.NewProjectorRepository,
		repository.NewReservationRepository,

		// Command-side interfaces
		func(r *repository.UserRepository) commands.UserRepository { return r },
		func(r *repository.ProjectorRepository) commands.ProjectorRepository { return r },
		func(r *repository.ProjectorRepository) commands.ActiveProjectorFinder { return r },
		func(r *repository.ReservationRepository) commands.ReservationRepository { return r },

		// Read-side interfaces
		func(r *repository.UserRepository) queries.UserReader { return r },
		func(r *repository.ProjectorRepository) queries.ProjectorReader { return r },
		func(r *repository.ProjectorRepository) queries.ActiveProjectorReader { return r },
		func(r *repository.ReservationRepository) queries.DayReservationReader { return r },
		func(r *repository.ReservationRepository) queries.UserReservationReader { return r },
		func(r *repository.ReservationRepository) queries.ReportReader { return r },
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
