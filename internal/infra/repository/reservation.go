package repository

import (
	"context"
	"errors"
	"time"

	"projector-reservation/internal/domain/reservation"
	"projector-reservation/internal/infra"
	"projector-reservation/internal/infra/db"
	"projector-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	pool db.DBTX
}

func NewReservationRepository(pool db.DBTX) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// slotsExpr normalizes legacy single-slot rows into the array representation
// at the storage boundary, so nothing above this layer branches on it.
const slotsExpr = `COALESCE(r.slots, ARRAY[r.slot])`

// AcquireDateLock serializes allocation per calendar day. Must be called on
// a transaction; the lock is released at commit or rollback.
func (r *ReservationRepository) AcquireDateLock(ctx context.Context, tx db.DBTX, date reservation.Date) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, date.String())
	if err != nil {
		return infra.WrapRepoErr("failed to acquire date lock", err)
	}
	return nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	query := `
		INSERT INTO reservations (id, date, slots, user_id, projector_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	slots := toInt32s(res.Slots().IDs())
	_, err := tx.Exec(ctx, query, res.ID(), res.Date().String(), slots, res.UserID(), res.ProjectorID())
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query := `
		SELECT r.id, r.date, ` + slotsExpr + `, r.user_id, r.projector_id, r.created_at
		FROM reservations r
		WHERE r.id = $1
	`
	var (
		resID, userID, projectorID uuid.UUID
		date                       time.Time
		slots                      []int32
		createdAt                  time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(&resID, &date, &slots, &userID, &projectorID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return reservation.ReconstructReservation(
		resID,
		reservation.DateOf(date),
		reservation.ReconstructSlotSet(toInts(slots)),
		userID,
		projectorID,
		createdAt,
	), nil
}

// ListByDate returns every reservation on the given day, joined with the
// reserving user's and assigned projector's display fields.
func (r *ReservationRepository) ListByDate(ctx context.Context, q db.DBTX, date reservation.Date) ([]reservation.DayReservation, error) {
	query := `
		SELECT r.id, r.user_id, r.projector_id, ` + slotsExpr + `, r.created_at,
		       u.name, u.area, p.name
		FROM reservations r
		JOIN users u ON u.id = r.user_id
		JOIN projectors p ON p.id = r.projector_id
		WHERE r.date = $1
	`
	rows, err := q.Query(ctx, query, date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by date", err)
	}
	defer rows.Close()

	var out []reservation.DayReservation
	for rows.Next() {
		var (
			dr    reservation.DayReservation
			slots []int32
		)
		if err := rows.Scan(
			&dr.ID, &dr.UserID, &dr.ProjectorID, &slots, &dr.CreatedAt,
			&dr.UserName, &dr.UserArea, &dr.ProjectorName,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan day reservation", err)
		}
		dr.Slots = reservation.ReconstructSlotSet(toInts(slots))
		out = append(out, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate day reservations", err)
	}
	return out, nil
}

// ListByUserFrom returns the user's reservations dated fromDate or later,
// sorted by date then first slot id.
func (r *ReservationRepository) ListByUserFrom(ctx context.Context, userID uuid.UUID, fromDate reservation.Date) ([]*queries.ReservationView, error) {
	query := `
		SELECT r.id, r.date, ` + slotsExpr + `, r.user_id, r.projector_id, p.name, r.created_at
		FROM reservations r
		JOIN projectors p ON p.id = r.projector_id
		WHERE r.user_id = $1 AND r.date >= $2
		ORDER BY r.date, (` + slotsExpr + `)[1]
	`
	rows, err := r.pool.Query(ctx, query, userID, fromDate.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	defer rows.Close()

	var out []*queries.ReservationView
	for rows.Next() {
		var (
			v     queries.ReservationView
			date  time.Time
			slots []int32
		)
		if err := rows.Scan(&v.ID, &date, &slots, &v.UserID, &v.ProjectorID, &v.ProjectorName, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		v.Date = reservation.DateOf(date).String()
		v.Slots = toInts(slots)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation views", err)
	}
	return out, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// Report returns reservations within [start, end] joined with user and
// projector display fields. Area matches exactly; professor name is a
// case-insensitive substring match.
func (r *ReservationRepository) Report(ctx context.Context, filter queries.ReportFilter) ([]*queries.ReportRecord, error) {
	query := `
		SELECT r.id, r.date, ` + slotsExpr + `, u.name, u.area, u.email, p.name, r.created_at
		FROM reservations r
		JOIN users u ON u.id = r.user_id
		JOIN projectors p ON p.id = r.projector_id
		WHERE r.date BETWEEN $1 AND $2
		  AND ($3::text IS NULL OR u.area = $3)
		  AND ($4::text IS NULL OR u.name ILIKE '%' || $4 || '%')
		ORDER BY r.date, (` + slotsExpr + `)[1]
	`
	rows, err := r.pool.Query(ctx, query, filter.StartDate, filter.EndDate, filter.Area, filter.ProfessorName)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query report", err)
	}
	defer rows.Close()

	var out []*queries.ReportRecord
	for rows.Next() {
		var (
			rec   queries.ReportRecord
			date  time.Time
			slots []int32
		)
		if err := rows.Scan(&rec.ID, &date, &slots, &rec.UserName, &rec.UserArea, &rec.UserEmail, &rec.ProjectorName, &rec.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan report record", err)
		}
		rec.Date = reservation.DateOf(date).String()
		rec.Slots = toInts(slots)
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate report records", err)
	}
	return out, nil
}

func toInt32s(ids []int) []int32 {
	out := make([]int32, len(ids))
	for i, v := range ids {
		out[i] = int32(v)
	}
	return out
}

func toInts(ids []int32) []int {
	out := make([]int, len(ids))
	for i, v := range ids {
		out[i] = int(v)
	}
	return out
}
