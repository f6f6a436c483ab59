package account

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct{ store map[uuid.UUID]*User }

func newMockRepo() *mockRepo { return &mockRepo{store: make(map[uuid.UUID]*User)} }
func (m *mockRepo) Create(_ context.Context, u *User) error {
	u.ID = uuid.New(); m.store[u.ID] = u; return nil
}
func (m *mockRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.store { if u.Email == email { return u, nil } }; return nil, fmt.Errorf("not found")
}
func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.store[id]; if !ok { return nil, fmt.Errorf("not found") }; return u, nil
}

func newTestService() *Service {
	return NewService(newMockRepo(), "test-secret", time.Hour)
}

func TestRegister_Success(t *testing.T) {
	svc := newTestService()
	u, token, err := svc.Register(context.Background(), "ana@example.com", "segredo123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if u.PasswordHash == "segredo123" {
		t.Error("password must be stored hashed")
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	svc := newTestService()
	u, _, err := svc.Register(context.Background(), "  Ana@Example.COM ", "segredo123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "ana@example.com" {
		t.Errorf("email = %q, want lowercased and trimmed", u.Email)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService()
	if _, _, err := svc.Register(context.Background(), "ana@example.com", "segredo123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "ana@example.com", "outrasenha"); err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService()
	if _, _, err := svc.Register(context.Background(), "not-an-email", "segredo123"); err == nil {
		t.Error("expected error for invalid email")
	}
	if _, _, err := svc.Register(context.Background(), "ana@example.com", "curta"); err == nil {
		t.Error("expected error for short password")
	}
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService()
	if _, _, err := svc.Register(context.Background(), "ana@example.com", "segredo123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, token, err := svc.Login(context.Background(), "ana@example.com", "segredo123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService()
	if _, _, err := svc.Register(context.Background(), "ana@example.com", "segredo123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ana@example.com", "errada123"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService()
	if _, _, err := svc.Login(context.Background(), "ninguem@example.com", "segredo123"); err != ErrInvalidCredentials {
		t.Errorf("unknown email must look like bad credentials, got %v", err)
	}
}
