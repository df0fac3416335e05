package queries

import (
	"context"

	"projector-reservation/internal/domain/user"
	"projector-reservation/internal/infra"
	"projector-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
}

type UserQueries interface {
	GetUser(ctx context.Context, id uuid.UUID) (*UserView, error)
	ListUsers(ctx context.Context) ([]UserView, error)
}

type userQueriesImpl struct {
	userRepo UserReader
}

func NewUserQueries(userRepo UserReader) UserQueries {
	return &userQueriesImpl{userRepo: userRepo}
}

func (u *userQueriesImpl) GetUser(ctx context.Context, id uuid.UUID) (*UserView, error) {
	entity, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	view := toUserView(entity)
	return &view, nil
}

func (u *userQueriesImpl) ListUsers(ctx context.Context) ([]UserView, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	out := make([]UserView, 0, len(users))
	for _, entity := range users {
		out = append(out, toUserView(entity))
	}
	return out, nil
}

func toUserView(entity *user.User) UserView {
	return UserView{
		ID:    entity.ID(),
		Name:  entity.Name(),
		Email: entity.Email().Value(),
		Area:  entity.Area(),
		Role:  entity.Role().String(),
	}
}
