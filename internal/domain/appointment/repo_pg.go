package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const apptCols = `id, owner_id, patient_name, specialty, doctor_name,
	scheduled_at, location, attended, created_at, updated_at`

func (r *repoPG) scan(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.OwnerID, &a.PatientName, &a.Specialty, &a.DoctorName,
		&a.ScheduledAt, &a.Location, &a.Attended, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointments (id, owner_id, patient_name, specialty, doctor_name,
			scheduled_at, location, attended)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.OwnerID, a.PatientName, a.Specialty, a.DoctorName,
		a.ScheduledAt, a.Location, a.Attended)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Appointment, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE id = $1 AND owner_id = $2`, id, ownerID))
}

func (r *repoPG) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE owner_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE owner_id = $1 ORDER BY scheduled_at ASC LIMIT $2 OFFSET $3`,
		ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, nil
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments SET patient_name=$3, specialty=$4, doctor_name=$5,
			scheduled_at=$6, location=$7, updated_at=NOW()
		WHERE id = $1 AND owner_id = $2`,
		a.ID, a.OwnerID, a.PatientName, a.Specialty, a.DoctorName,
		a.ScheduledAt, a.Location)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) SetAttendance(ctx context.Context, ownerID, id uuid.UUID, attended *bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments SET attended=$3, updated_at=NOW()
		WHERE id = $1 AND owner_id = $2`,
		id, ownerID, attended)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM appointments WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
