package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

type stubAuthService struct {
	registerErr error
	loginToken  string
	loginUser   *domain.User
	loginErr    error

	registered []string
}

func (s *stubAuthService) Register(_ context.Context, username, email, password string) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	s.registered = append(s.registered, username)
	return &domain.User{Username: username, Email: email, Roles: []string{domain.RoleUser}}, nil
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.loginToken, s.loginUser, nil
}

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)
	c, rec := newAuthContext(t, `{"username":"carol","email":"carol@example.com","password":"s3cret!"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.registered) != 1 || svc.registered[0] != "carol" {
		t.Fatalf("unexpected registrations: %v", svc.registered)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	cases := map[string]string{
		"missing username": `{"email":"a@b.com","password":"secret1"}`,
		"short username":   `{"username":"ab","email":"a@b.com","password":"secret1"}`,
		"bad email":        `{"username":"carol","email":"not-an-email","password":"secret1"}`,
		"short password":   `{"username":"carol","email":"a@b.com","password":"pw"}`,
		"malformed json":   `{"username":`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{})
			c, rec := newAuthContext(t, body)

			if err := h.Register(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})
	c, rec := newAuthContext(t, `{"username":"carol","email":"carol@example.com","password":"s3cret!"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "username or email already taken" {
		t.Fatalf("unexpected error message %q", resp.Error)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginToken: "signed-token",
		loginUser:  &domain.User{Username: "carol", Roles: []string{domain.RoleUser, domain.RoleAdmin}},
	})
	c, rec := newAuthContext(t, `{"username":"carol","password":"s3cret!"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
	if resp.Username != "carol" {
		t.Fatalf("unexpected username %q", resp.Username)
	}
	if len(resp.Roles) != 2 {
		t.Fatalf("unexpected roles %v", resp.Roles)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, rec := newAuthContext(t, `{"username":"carol","password":"wrong"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: &domain.ThrottledError{RetryAfterSeconds: 37}})
	c, rec := newAuthContext(t, `{"username":"carol","password":"s3cret!"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "37" {
		t.Fatalf("expected Retry-After 37, got %q", got)
	}
}

func TestAuthHandler_Login_ThrottledWithoutWindow(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrTooManyAttempts})
	c, rec := newAuthContext(t, `{"username":"carol","password":"s3cret!"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "" {
		t.Fatalf("expected no Retry-After header, got %q", got)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, `{"username":"carol"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
