package repository

import (
	"context"
	"errors"
	"time"

	"projector-reservation/internal/domain/projector"
	"projector-reservation/internal/infra"
	"projector-reservation/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProjectorRepository struct {
	pool db.DBTX
}

func NewProjectorRepository(pool db.DBTX) *ProjectorRepository {
	return &ProjectorRepository{pool: pool}
}

const projectorColumns = `id, name, status, created_at, updated_at`

func (r *ProjectorRepository) Create(ctx context.Context, p *projector.Projector) error {
	query := `INSERT INTO projectors (id, name, status) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, p.ID(), p.Name(), p.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create projector", err)
	}
	return nil
}

func (r *ProjectorRepository) Update(ctx context.Context, p *projector.Projector) error {
	query := `UPDATE projectors SET name = $2, status = $3, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, p.ID(), p.Name(), p.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update projector", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("projector not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProjectorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projectors WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr interface{ SQLState() string }
		if errors.As(err, &pgErr) && pgErr.SQLState() == "23503" {
			return infra.WrapRepoErr("projector has reservations", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete projector", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("projector not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProjectorRepository) FindByID(ctx context.Context, id uuid.UUID) (*projector.Projector, error) {
	query := `SELECT ` + projectorColumns + ` FROM projectors WHERE id = $1`
	p, err := scanProjector(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("projector not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find projector by ID", err)
	}
	return p, nil
}

func (r *ProjectorRepository) List(ctx context.Context) ([]*projector.Projector, error) {
	query := `SELECT ` + projectorColumns + ` FROM projectors ORDER BY created_at, id`
	return r.queryProjectors(ctx, r.pool, query)
}

// FindActive returns available projectors in FIFO allocation order:
// oldest created_at first, id as the deterministic tie-break.
func (r *ProjectorRepository) FindActive(ctx context.Context, q db.DBTX) ([]*projector.Projector, error) {
	query := `SELECT ` + projectorColumns + ` FROM projectors WHERE status = 'available' ORDER BY created_at, id`
	return r.queryProjectors(ctx, q, query)
}

func (r *ProjectorRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM projectors`).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count projectors", err)
	}
	return count, nil
}

func (r *ProjectorRepository) queryProjectors(ctx context.Context, q db.DBTX, query string) ([]*projector.Projector, error) {
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list projectors", err)
	}
	defer rows.Close()

	var out []*projector.Projector
	for rows.Next() {
		p, err := scanProjector(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan projector row", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate projectors", err)
	}
	return out, nil
}

func scanProjector(s rowScanner) (*projector.Projector, error) {
	var (
		id                   uuid.UUID
		name, status         string
		createdAt, updatedAt time.Time
	)
	if err := s.Scan(&id, &name, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	st, err := projector.NewStatus(status)
	if err != nil {
		return nil, err
	}

	return projector.ReconstructProjector(id, name, st, createdAt, updatedAt), nil
}
