package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vibank/account-system/internal/core/domain"
	"github.com/vibank/account-system/internal/core/ports"
)

type stubAccountService struct {
	registerFn    func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn       func(ctx context.Context, email, password string) (*domain.User, error)
	loginByNameFn func(ctx context.Context, name string) (*domain.User, error)
}

func (s *stubAccountService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAccountService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAccountService) LoginByName(ctx context.Context, name string) (*domain.User, error) {
	return s.loginByNameFn(ctx, name)
}

func newAuthContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Name != "Alice" || in.Email != "alice@example.com" || in.Role != "" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{Name: in.Name, Email: in.Email, PasswordHash: "$2a$10$x", Role: domain.RoleCustomer}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user envelope, got %v", resp)
	}
	if user["name"] != "Alice" || user["email"] != "alice@example.com" || user["role"] != "customer" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	// The hash must never be echoed back, under any key.
	if strings.Contains(rec.Body.String(), "$2a$10$x") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/register",
		`{"name":"Bob","email":"bob@example.com","password":"x"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["msg"] != "User already exists" {
		t.Fatalf("unexpected msg: %v", resp["msg"])
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/register", `{"name":"Bob","password":"x"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/register", "not-json")
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{Name: "Alice", Email: email, Role: domain.RoleCustomer}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Alice" || user["role"] != "customer" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/login",
		`{"email":"alice@example.com","password":"bad"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["msg"] != "Invalid Credentials" {
		t.Fatalf("unexpected msg: %v", resp["msg"])
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrMissingCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/login", `{"email":"","password":""}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["msg"] != "Please provide both email and password" {
		t.Fatalf("unexpected msg: %v", resp["msg"])
	}
}

func TestAuthHandler_LoginByName_Success(t *testing.T) {
	stub := &stubAccountService{
		loginByNameFn: func(ctx context.Context, name string) (*domain.User, error) {
			if name != "Alice" {
				t.Fatalf("unexpected name: %s", name)
			}
			return &domain.User{Name: "alice", Email: "alice@vibank.agent", Role: domain.RoleAgent}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/login-by-name", `{"name":"Alice"}`)

	if err := handler.LoginByName(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != "agent" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_LoginByName_NotFound(t *testing.T) {
	stub := &stubAccountService{
		loginByNameFn: func(ctx context.Context, name string) (*domain.User, error) {
			return nil, domain.ErrAgentNotFound
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/login-by-name", `{"name":"Nobody"}`)
	_ = handler.LoginByName(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	// The queried name is echoed for operator diagnostics.
	if resp := decodeBody(t, rec); resp["msg"] != "Agent 'Nobody' not found." {
		t.Fatalf("unexpected msg: %v", resp["msg"])
	}
}

func TestAuthHandler_LoginByName_MissingName(t *testing.T) {
	stub := &stubAccountService{
		loginByNameFn: func(ctx context.Context, name string) (*domain.User, error) {
			return nil, domain.ErrMissingAgentName
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/api/auth/login-by-name", `{"name":""}`)
	_ = handler.LoginByName(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["msg"] != "Agent name is required." {
		t.Fatalf("unexpected msg: %v", resp["msg"])
	}
}
