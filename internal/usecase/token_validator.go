package usecase

import (
	"projector-reservation/internal/domain/user"
	"projector-reservation/internal/pkg/errs"
	"projector-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidToken = errs.New("invalid or expired token")

// AuthInfo is the authenticated identity extracted from a request token.
type AuthInfo struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	Validate(token string) (AuthInfo, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) Validate(token string) (AuthInfo, error) {
	claims, err := t.jwtService.ValidateToken(token)
	if err != nil {
		return AuthInfo{}, errs.Mark(err, ErrInvalidToken)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return AuthInfo{}, errs.Mark(err, ErrInvalidToken)
	}

	return AuthInfo{UserID: claims.UserID, Role: role}, nil
}
