package response

import (
	"projector-reservation/internal/domain/user"
	"projector-reservation/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	User        queries.UserView `json:"user"`
}

type RegisterResponse struct {
	User queries.UserView `json:"user"`
}

func UserViewFrom(entity *user.User) queries.UserView {
	return queries.UserView{
		ID:    entity.ID(),
		Name:  entity.Name(),
		Email: entity.Email().Value(),
		Area:  entity.Area(),
		Role:  entity.Role().String(),
	}
}
