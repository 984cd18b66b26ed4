package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/pkg/metrics"
)

// RoleKey is the context key under which the session role is stored.
const RoleKey = "role"

// SessionSource yields the current session. *state.SessionState satisfies it.
type SessionSource interface {
	Current() domain.Session
}

// Auth rejects action requests made without an authenticated session and
// injects the session role into the context.
func Auth(sessions SessionSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := sessions.Current()
			if !session.IsAuthenticated {
				metrics.GuardDecisionsTotal.WithLabelValues("auth", "unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			c.Set(RoleKey, session.Role)
			return next(c)
		}
	}
}
