package queries

import (
	"context"

	"projector-reservation/internal/domain/projector"
	"projector-reservation/internal/pkg/errs"
)

type ProjectorReader interface {
	List(ctx context.Context) ([]*projector.Projector, error)
}

type ProjectorQueries interface {
	ListProjectors(ctx context.Context) ([]ProjectorView, error)
}

type projectorQueriesImpl struct {
	projectorRepo ProjectorReader
}

func NewProjectorQueries(projectorRepo ProjectorReader) ProjectorQueries {
	return &projectorQueriesImpl{projectorRepo: projectorRepo}
}

func (p *projectorQueriesImpl) ListProjectors(ctx context.Context) ([]ProjectorView, error) {
	projectors, err := p.projectorRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	out := make([]ProjectorView, 0, len(projectors))
	for _, pr := range projectors {
		out = append(out, ProjectorView{
			ID:        pr.ID(),
			Name:      pr.Name(),
			Status:    pr.Status().String(),
			CreatedAt: pr.CreatedAt(),
			UpdatedAt: pr.UpdatedAt(),
		})
	}
	return out, nil
}
