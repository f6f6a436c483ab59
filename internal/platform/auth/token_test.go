package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestIssueAndParseToken(t *testing.T) {
	userID := uuid.New()
	raw, err := IssueToken(userID, "ana@example.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken(raw, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("subject = %q, want %q", claims.Subject, userID.String())
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	raw, err := IssueToken(uuid.New(), "ana@example.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseToken(raw, "other-secret"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	raw, err := IssueToken(uuid.New(), "ana@example.com", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseToken(raw, "secret"); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("not-a-token", "secret"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "segredo123" {
		t.Error("hash must differ from the password")
	}
	if !CheckPassword(hash, "segredo123") {
		t.Error("correct password must verify")
	}
	if CheckPassword(hash, "errada") {
		t.Error("wrong password must not verify")
	}
}
