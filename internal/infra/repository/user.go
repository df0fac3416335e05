package repository

import (
	"context"
	"errors"
	"time"

	"projector-reservation/internal/domain/user"
	"projector-reservation/internal/infra"
	"projector-reservation/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	pool db.DBTX
}

func NewUserRepository(pool db.DBTX) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, area, role, is_active, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, area, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Area(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, area string) error {
	query := `UPDATE users SET name = $2, area = $3, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, name, area)
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var out []*user.User
	for rows.Next() {
		u, err := r.scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return out, nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*user.User, error) {
	u, err := scanUserFrom(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan user", err)
	}
	return u, nil
}

func (r *UserRepository) scanUserRow(rows pgx.Rows) (*user.User, error) {
	u, err := scanUserFrom(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan user row", err)
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserFrom(s rowScanner) (*user.User, error) {
	var (
		rec struct {
			id           uuid.UUID
			name         string
			email        string
			passwordHash string
			area         string
			role         string
			isActive     bool
		}
		createdAt, updatedAt time.Time
	)
	if err := s.Scan(
		&rec.id, &rec.name, &rec.email, &rec.passwordHash, &rec.area, &rec.role, &rec.isActive,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	// Persisted rows bypassed domain constructors; validate at the boundary
	// once rather than ad hoc at each call site.
	email, err := user.NewEmail(rec.email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(rec.role)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(
		rec.id, rec.name, email, rec.passwordHash, rec.area, role, rec.isActive,
		createdAt, updatedAt,
	), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
