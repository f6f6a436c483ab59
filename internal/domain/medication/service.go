package medication

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	medications Repository
}

func NewService(medications Repository) *Service {
	return &Service{medications: medications}
}

func (s *Service) validate(m *Medication) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Dosage == "" {
		return fmt.Errorf("dosage is required")
	}
	if m.StartTime.IsZero() {
		return fmt.Errorf("start_time is required")
	}
	if m.EndDate != nil && m.EndDate.Before(m.StartTime) {
		return fmt.Errorf("end_date cannot precede start_time")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, m *Medication) error {
	if m.OwnerID == uuid.Nil {
		return fmt.Errorf("owner_id is required")
	}
	if err := s.validate(m); err != nil {
		return err
	}
	return s.medications.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Medication, error) {
	return s.medications.GetByID(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Medication, int, error) {
	return s.medications.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *Service) Update(ctx context.Context, m *Medication) error {
	if err := s.validate(m); err != nil {
		return err
	}
	return s.medications.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.medications.Delete(ctx, ownerID, id)
}
