package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/domain"
)

// roleKey matches the key the guard middleware stores the session role under.
const roleKey = "role"

// ctxRole returns the role injected by the guard middleware. A missing role
// means the route was registered without a guard.
func ctxRole(c echo.Context) (domain.Role, error) {
	role, ok := c.Get(roleKey).(domain.Role)
	if !ok {
		return domain.RoleNone, echo.NewHTTPError(http.StatusUnauthorized, "missing session role")
	}
	return role, nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}

// bind decodes the request body into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// failureStatus is the gateway status for a failed outcome: the backend's
// own 4xx when it rejected the request, 502 otherwise.
func failureStatus(out domain.Outcome) int {
	if out.Status >= 400 && out.Status < 500 {
		return out.Status
	}
	return http.StatusBadGateway
}

// respond renders the result of a slice operation: the snapshot when it
// succeeded, a 303 to the caller's profile setup view when the backend
// reported a missing profile, and the stored error otherwise.
func respond(c echo.Context, out domain.Outcome, status int, snapshot any) error {
	switch out.Kind {
	case domain.OutcomeOK:
		return c.JSON(status, snapshot)
	case domain.OutcomeNeedsProfileSetup:
		role, _ := c.Get(roleKey).(domain.Role)
		return c.Redirect(http.StatusSeeOther, role.ProfileSetupPath())
	default:
		return c.JSON(failureStatus(out), errorBody{Error: out.Message})
	}
}
