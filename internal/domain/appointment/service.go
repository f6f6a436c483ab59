package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	appointments Repository
	now          func() time.Time
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments, now: time.Now}
}

// SetClock overrides the service clock, used by tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.OwnerID == uuid.Nil {
		return fmt.Errorf("owner_id is required")
	}
	if a.PatientName == "" {
		return fmt.Errorf("patient_name is required")
	}
	if a.Specialty == "" {
		return fmt.Errorf("specialty is required")
	}
	if a.ScheduledAt.IsZero() {
		return fmt.Errorf("scheduled_at is required")
	}
	// Attendance is recorded through SetAttendance after the fact, never at
	// creation time.
	a.Attended = nil
	return s.appointments.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *Service) Update(ctx context.Context, a *Appointment) error {
	if a.PatientName == "" {
		return fmt.Errorf("patient_name is required")
	}
	if a.Specialty == "" {
		return fmt.Errorf("specialty is required")
	}
	if a.ScheduledAt.IsZero() {
		return fmt.Errorf("scheduled_at is required")
	}
	return s.appointments.Update(ctx, a)
}

// SetAttendance records whether the user attended. The outcome only makes
// sense for appointments whose scheduled time has passed.
func (s *Service) SetAttendance(ctx context.Context, ownerID, id uuid.UUID, attended *bool) error {
	a, err := s.appointments.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if attended != nil && a.ScheduledAt.After(s.now()) {
		return fmt.Errorf("attendance cannot be recorded before the appointment")
	}
	return s.appointments.SetAttendance(ctx, ownerID, id, attended)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.appointments.Delete(ctx, ownerID, id)
}
