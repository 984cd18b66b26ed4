package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

func TestSessionHandler_Login_Success(t *testing.T) {
	session := state.NewSessionState()
	stub := &stubAuth{
		loginFn: func(ctx context.Context, in ports.LoginInput) domain.Outcome {
			if in.Username != "dr.house" || in.Password != "vicodin" {
				t.Fatalf("unexpected credentials: %+v", in)
			}
			session.Begin()
			session.Authenticated(domain.Session{Role: domain.RoleDoctor, User: &domain.User{Name: "Gregory"}, AccessToken: "tok"})
			return domain.OK()
		},
	}
	h := NewSessionHandler(stub, session)

	c, rec := newContext(http.MethodPost, "/auth/login", `{"username":"dr.house","password":"vicodin"}`, domain.RoleNone)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Redirect != "/doctor/dashboard" {
		t.Fatalf("expected doctor dashboard redirect, got %q", resp.Redirect)
	}
	if !resp.Session.IsAuthenticated || resp.Session.Role != domain.RoleDoctor {
		t.Fatalf("unexpected session: %+v", resp.Session)
	}
}

func TestSessionHandler_Login_Failure(t *testing.T) {
	stub := &stubAuth{
		loginFn: func(context.Context, ports.LoginInput) domain.Outcome {
			return domain.FailedFrom(&domain.ServerError{Status: http.StatusBadRequest, Message: "Invalid credentials"}, "Invalid credentials")
		},
	}
	h := NewSessionHandler(stub, state.NewSessionState())

	c, rec := newContext(http.MethodPost, "/auth/login", `{"username":"a","password":"b"}`, domain.RoleNone)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body errorBody
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != "Invalid credentials" {
		t.Fatalf("expected server message, got %q", body.Error)
	}
}

func TestSessionHandler_Login_BackendUnreachable(t *testing.T) {
	stub := &stubAuth{
		loginFn: func(context.Context, ports.LoginInput) domain.Outcome {
			return domain.FailedFrom(&domain.TransportError{Op: "POST /login/", Err: errors.New("connection refused")}, "Login failed")
		},
	}
	h := NewSessionHandler(stub, state.NewSessionState())

	c, rec := newContext(http.MethodPost, "/auth/login", `{"username":"a","password":"b"}`, domain.RoleNone)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestSessionHandler_Login_MissingFields(t *testing.T) {
	h := NewSessionHandler(&stubAuth{}, state.NewSessionState())

	c, _ := newContext(http.MethodPost, "/auth/login", `{"username":"a"}`, domain.RoleNone)
	err := h.Login(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestSessionHandler_Register_RejectsUnknownRole(t *testing.T) {
	h := NewSessionHandler(&stubAuth{}, state.NewSessionState())

	body := `{"username":"eve","email":"eve@example.com","password":"longenough","password_confirm":"longenough","role":"admin"}`
	c, _ := newContext(http.MethodPost, "/auth/register", body, domain.RoleNone)
	err := h.Register(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestSessionHandler_Register_Failure(t *testing.T) {
	stub := &stubAuth{
		registerFn: func(context.Context, ports.RegisterInput) domain.Outcome {
			msg := "username: A user with that username already exists."
			return domain.FailedFrom(&domain.ServerError{Status: http.StatusBadRequest, Message: msg}, msg)
		},
	}
	h := NewSessionHandler(stub, state.NewSessionState())

	body := `{"username":"eve","email":"eve@example.com","password":"longenough","password_confirm":"longenough","role":"patient"}`
	c, rec := newContext(http.MethodPost, "/auth/register", body, domain.RoleNone)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	stub := &stubAuth{}
	h := NewSessionHandler(stub, state.NewSessionState())

	c, rec := newContext(http.MethodPost, "/auth/logout", "", domain.RoleNone)
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !stub.loggedOut {
		t.Fatal("expected Logout to reach the service")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionHandler_Current_AnonymousOmitsExpiry(t *testing.T) {
	h := NewSessionHandler(&stubAuth{}, state.NewSessionState())

	c, rec := newContext(http.MethodGet, "/session", "", domain.RoleNone)
	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Session map[string]any `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp.Session["expiresAt"]; ok {
		t.Fatalf("anonymous session should not carry expiresAt: %+v", resp.Session)
	}
	if resp.Session["isAuthenticated"] != false {
		t.Fatalf("expected anonymous session, got %+v", resp.Session)
	}
}
