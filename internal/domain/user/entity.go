package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User entity. Professors self-register; the admin role is assigned out of
// band (seed data or direct update).
type User struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	area         string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name string, email Email, passwordHash string, area string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		area:         strings.TrimSpace(area),
		role:         RoleProfessor,
		isActive:     true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	passwordHash string,
	area string,
	role Role,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		area:         area,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Area() string         { return u.area }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}
