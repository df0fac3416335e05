package response

import (
	"projector-reservation/internal/domain/projector"
	"projector-reservation/internal/usecase/queries"
)

func ProjectorViewFrom(entity *projector.Projector) queries.ProjectorView {
	return queries.ProjectorView{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Status:    entity.Status().String(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func ProjectorViewsFrom(entities []*projector.Projector) []queries.ProjectorView {
	out := make([]queries.ProjectorView, 0, len(entities))
	for _, e := range entities {
		out = append(out, ProjectorViewFrom(e))
	}
	return out
}
