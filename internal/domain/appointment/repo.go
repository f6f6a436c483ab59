package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound covers both a missing row and a row owned by someone else;
// callers cannot tell the two apart.
var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Appointment, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	Update(ctx context.Context, a *Appointment) error
	SetAttendance(ctx context.Context, ownerID, id uuid.UUID, attended *bool) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
