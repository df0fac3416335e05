package commands

import (
	"context"

	"projector-reservation/internal/domain/user"
	"projector-reservation/internal/infra"
	"projector-reservation/internal/pkg/errs"
	"projector-reservation/internal/pkg/jwt"
	"projector-reservation/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Area     string
}

type UpdateProfileParams struct {
	Name string
	Area string
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, area string) error
}

type AuthCommands interface {
	Register(ctx context.Context, params RegisterParams) (*user.User, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) error
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (*user.User, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	pw, err := user.NewPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	entity, err := user.NewUser(params.Name, email, hash, params.Area)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := a.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	return entity, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (string, *user.User, error) {
	entity, err := a.userRepo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, errs.Mark(err, ErrDatabaseOperation)
	}

	if !entity.IsActive() {
		return "", nil, ErrUserInactive
	}

	if err := password.ComparePassword(entity.PasswordHash(), credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, entity, nil
}

func (a *authCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) error {
	entity, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	name := params.Name
	if name == "" {
		return errs.Mark(user.ErrInvalidName, ErrValidation)
	}

	area := params.Area
	if area == "" {
		area = entity.Area()
	}

	if err := a.userRepo.UpdateProfile(ctx, userID, name, area); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	return nil
}
