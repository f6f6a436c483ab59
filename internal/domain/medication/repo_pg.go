package medication

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

const medCols = `id, owner_id, name, dosage, frequency_text,
	start_time, end_date, created_at, updated_at`

func (r *repoPG) scan(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.OwnerID, &m.Name, &m.Dosage, &m.FrequencyText,
		&m.StartTime, &m.EndDate, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO medications (id, owner_id, name, dosage, frequency_text,
			start_time, end_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		m.ID, m.OwnerID, m.Name, m.Dosage, m.FrequencyText,
		m.StartTime, m.EndDate)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Medication, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+medCols+` FROM medications WHERE id = $1 AND owner_id = $2`, id, ownerID))
}

func (r *repoPG) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Medication, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM medications WHERE owner_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+medCols+` FROM medications WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Medication
	for rows.Next() {
		m, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, nil
}

func (r *repoPG) Update(ctx context.Context, m *Medication) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE medications SET name=$3, dosage=$4, frequency_text=$5,
			start_time=$6, end_date=$7, updated_at=NOW()
		WHERE id = $1 AND owner_id = $2`,
		m.ID, m.OwnerID, m.Name, m.Dosage, m.FrequencyText,
		m.StartTime, m.EndDate)
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
		`DELETE FROM medications WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
