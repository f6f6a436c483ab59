package medication

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct{ store map[uuid.UUID]*Medication }

func newMockRepo() *mockRepo { return &mockRepo{store: make(map[uuid.UUID]*Medication)} }
func (m *mockRepo) Create(_ context.Context, med *Medication) error {
	med.ID = uuid.New(); m.store[med.ID] = med; return nil
}
func (m *mockRepo) GetByID(_ context.Context, ownerID, id uuid.UUID) (*Medication, error) {
	med, ok := m.store[id]; if !ok || med.OwnerID != ownerID { return nil, ErrNotFound }; return med, nil
}
func (m *mockRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]*Medication, int, error) {
	var r []*Medication; for _, med := range m.store { if med.OwnerID == ownerID { r = append(r, med) } }; return r, len(r), nil
}
func (m *mockRepo) Update(_ context.Context, med *Medication) error {
	old, ok := m.store[med.ID]; if !ok || old.OwnerID != med.OwnerID { return ErrNotFound }; m.store[med.ID] = med; return nil
}
func (m *mockRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	med, ok := m.store[id]; if !ok || med.OwnerID != ownerID { return ErrNotFound }; delete(m.store, id); return nil
}

func validMedication(owner uuid.UUID) *Medication {
	return &Medication{
		OwnerID:       owner,
		Name:          "Losartana",
		Dosage:        "50mg",
		FrequencyText: "De 12 em 12 horas",
		StartTime:     ts("2025-01-01T08:00:00Z"),
	}
}

func TestCreateMedication_Success(t *testing.T) {
	svc := NewService(newMockRepo())
	med := validMedication(uuid.New())
	if err := svc.Create(context.Background(), med); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if med.ID == uuid.Nil {
		t.Error("expected an assigned ID")
	}
}

func TestCreateMedication_Validation(t *testing.T) {
	svc := NewService(newMockRepo())
	owner := uuid.New()

	noName := validMedication(owner)
	noName.Name = ""
	if err := svc.Create(context.Background(), noName); err == nil {
		t.Error("expected error for missing name")
	}

	noDosage := validMedication(owner)
	noDosage.Dosage = ""
	if err := svc.Create(context.Background(), noDosage); err == nil {
		t.Error("expected error for missing dosage")
	}

	noStart := validMedication(owner)
	noStart.StartTime = time.Time{}
	if err := svc.Create(context.Background(), noStart); err == nil {
		t.Error("expected error for missing start_time")
	}

	badEnd := validMedication(owner)
	end := badEnd.StartTime.Add(-time.Hour)
	badEnd.EndDate = &end
	if err := svc.Create(context.Background(), badEnd); err == nil {
		t.Error("expected error for end_date before start_time")
	}
}

func TestGetMedication_WrongOwner(t *testing.T) {
	svc := NewService(newMockRepo())
	med := validMedication(uuid.New())
	if err := svc.Create(context.Background(), med); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), uuid.New(), med.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for another owner, got %v", err)
	}
}

func TestUpdateMedication_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	med := validMedication(uuid.New())
	med.ID = uuid.New()
	if err := svc.Update(context.Background(), med); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMedication(t *testing.T) {
	svc := NewService(newMockRepo())
	owner := uuid.New()
	med := validMedication(owner)
	if err := svc.Create(context.Background(), med); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), owner, med.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), owner, med.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
