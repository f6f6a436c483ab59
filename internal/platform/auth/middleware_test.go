package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func callWithHeader(t *testing.T, header string) (uuid.UUID, error) {
	t.Helper()
	e := echo.New()
	var gotOwner uuid.UUID
	handler := Middleware("secret")(func(c echo.Context) error {
		gotOwner = OwnerIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return gotOwner, handler(c)
}

func TestMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	raw, err := IssueToken(userID, "ana@example.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	owner, err := callWithHeader(t, "Bearer "+raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner != userID {
		t.Errorf("owner = %v, want %v", owner, userID)
	}
}

func TestMiddleware_MissingHeader(t *testing.T) {
	_, err := callWithHeader(t, "")
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestMiddleware_BadScheme(t *testing.T) {
	raw, _ := IssueToken(uuid.New(), "ana@example.com", "secret", time.Hour)
	_, err := callWithHeader(t, "Basic "+raw)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestMiddleware_ForgedToken(t *testing.T) {
	raw, _ := IssueToken(uuid.New(), "ana@example.com", "another-secret", time.Hour)
	_, err := callWithHeader(t, "Bearer "+raw)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}
