package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

// SessionHandler exposes the auth slice: login, signup, logout.
type SessionHandler struct {
	auth    ports.AuthService
	session *state.SessionState
}

func NewSessionHandler(auth ports.AuthService, session *state.SessionState) *SessionHandler {
	return &SessionHandler{auth: auth, session: session}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	FirstName       string `json:"first_name"`
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	Role            string `json:"role" validate:"required,oneof=patient doctor"`
}

type sessionResponse struct {
	Session state.SessionSnapshot `json:"session"`
	// Redirect is the dashboard a freshly signed-in user is sent to.
	Redirect string `json:"redirect,omitempty"`
}

// Current returns the auth slice.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResponse{Session: h.session.Snapshot()})
}

// Login authenticates against the backend and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Failure      502   {object}  errorBody
// @Router       /auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out := h.auth.Login(c.Request().Context(), ports.LoginInput{Username: req.Username, Password: req.Password})
	if !out.Succeeded() {
		return c.JSON(authFailureStatus(out, http.StatusUnauthorized), errorBody{Error: out.Message})
	}
	return c.JSON(http.StatusOK, h.signedIn())
}

// Register signs up a patient or doctor and opens a session.
//
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Signup details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorBody
// @Failure      502   {object}  errorBody
// @Router       /auth/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:       req.FirstName,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Role:            req.Role,
	})
	if !out.Succeeded() {
		return c.JSON(authFailureStatus(out, http.StatusBadRequest), errorBody{Error: out.Message})
	}
	return c.JSON(http.StatusCreated, h.signedIn())
}

// Logout clears the session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.auth.Logout()
	return c.JSON(http.StatusOK, sessionResponse{Session: h.session.Snapshot(), Redirect: "/login"})
}

// ClearError dismisses the auth error banner.
//
// @Summary      Dismiss auth error
// @Tags         auth
// @Success      204
// @Router       /auth/error [delete]
func (h *SessionHandler) ClearError(c echo.Context) error {
	h.auth.ClearError()
	return c.NoContent(http.StatusNoContent)
}

// authFailureStatus answers rejected credentials with rejected and anything
// the backend did not answer with a 4xx as 502.
func authFailureStatus(out domain.Outcome, rejected int) int {
	if failureStatus(out) == http.StatusBadGateway {
		return http.StatusBadGateway
	}
	return rejected
}

func (h *SessionHandler) signedIn() sessionResponse {
	snap := h.session.Snapshot()
	return sessionResponse{Session: snap, Redirect: snap.Role.DashboardPath()}
}
