package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	return NewHandler(newTestService()), echo.New()
}

func postJSON(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Register(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, `{"email":"ana@example.com","password":"segredo123"}`)
	if err := h.Register(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusCreated { t.Errorf("expected 201, got %d", rec.Code) }
	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil { t.Fatalf("bad body: %v", err) }
	if resp.Token == "" { t.Error("expected a token in the response") }
	if resp.Email != "ana@example.com" { t.Errorf("email = %q", resp.Email) }
}

func TestHandler_Register_Duplicate(t *testing.T) {
	h, e := newTestHandler()
	if _, _, err := h.svc.Register(context.Background(), "ana@example.com", "segredo123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, _ := postJSON(e, `{"email":"ana@example.com","password":"segredo123"}`)
	err := h.Register(c)
	if err == nil { t.Fatal("expected error") }
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestHandler_Login(t *testing.T) {
	h, e := newTestHandler()
	if _, _, err := h.svc.Register(context.Background(), "ana@example.com", "segredo123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, rec := postJSON(e, `{"email":"ana@example.com","password":"segredo123"}`)
	if err := h.Login(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusOK { t.Errorf("expected 200, got %d", rec.Code) }
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, `{"email":"ana@example.com","password":"errada"}`)
	err := h.Login(c)
	if err == nil { t.Fatal("expected error") }
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}
