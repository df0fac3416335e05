package commands

import (
	"context"
	"fmt"

	"projector-reservation/internal/domain/projector"
	"projector-reservation/internal/infra"
	"projector-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProjectorNotFound = errs.New("projector not found")
	ErrProjectorInUse    = errs.New("projector has reservations and cannot be deleted")
	ErrAlreadySeeded     = errs.New("projector inventory is not empty")
)

const seedProjectorCount = 5

type CreateProjectorParams struct {
	Name string
}

type UpdateProjectorParams struct {
	Name   string
	Status string
}

type ProjectorRepository interface {
	Create(ctx context.Context, p *projector.Projector) error
	Update(ctx context.Context, p *projector.Projector) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*projector.Projector, error)
	Count(ctx context.Context) (int, error)
}

type ProjectorCommands interface {
	CreateProjector(ctx context.Context, params CreateProjectorParams) (*projector.Projector, error)
	UpdateProjector(ctx context.Context, id uuid.UUID, params UpdateProjectorParams) (*projector.Projector, error)
	DeleteProjector(ctx context.Context, id uuid.UUID) error
	SeedProjectors(ctx context.Context) ([]*projector.Projector, error)
}

type projectorCommandsImpl struct {
	projectorRepo ProjectorRepository
}

func NewProjectorCommands(projectorRepo ProjectorRepository) ProjectorCommands {
	return &projectorCommandsImpl{projectorRepo: projectorRepo}
}

func (p *projectorCommandsImpl) CreateProjector(ctx context.Context, params CreateProjectorParams) (*projector.Projector, error) {
	entity, err := projector.NewProjector(params.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := p.projectorRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return entity, nil
}

func (p *projectorCommandsImpl) UpdateProjector(ctx context.Context, id uuid.UUID, params UpdateProjectorParams) (*projector.Projector, error) {
	entity, err := p.projectorRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProjectorNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	if params.Name != "" {
		if err := entity.Rename(params.Name); err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
	}
	if params.Status != "" {
		status, err := projector.NewStatus(params.Status)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
		if err := entity.SetStatus(status); err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
	}

	if err := p.projectorRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProjectorNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return entity, nil
}

func (p *projectorCommandsImpl) DeleteProjector(ctx context.Context, id uuid.UUID) error {
	if err := p.projectorRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrProjectorNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, ErrProjectorInUse)
		default:
			return errs.Mark(err, ErrDatabaseOperation)
		}
	}
	return nil
}

// SeedProjectors creates the initial inventory. It refuses to run when any
// projector already exists so a repeated call cannot duplicate units.
func (p *projectorCommandsImpl) SeedProjectors(ctx context.Context) ([]*projector.Projector, error) {
	count, err := p.projectorRepo.Count(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if count > 0 {
		return nil, ErrAlreadySeeded
	}

	seeded := make([]*projector.Projector, 0, seedProjectorCount)
	for i := 1; i <= seedProjectorCount; i++ {
		entity, err := projector.NewProjector(fmt.Sprintf("Projetor %02d", i))
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
		if err := p.projectorRepo.Create(ctx, entity); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperation)
		}
		seeded = append(seeded, entity)
	}
	return seeded, nil
}
