package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/navigation"
	"github.com/medibook/appointment-portal/internal/pkg/metrics"
)

// View guards page routes registered from routes. The guard for the matched
// route path is evaluated against the session on every request; a redirect
// decision answers 302 with Location set. A path missing from the table
// fails with domain.ErrUnknownRoute.
func View(routes *navigation.Table, sessions SessionSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := sessions.Current()
			decision, err := routes.Resolve(c.Path(), session)
			if err != nil {
				return err
			}
			guard := string(decision.Guard)
			if !decision.Renders() {
				metrics.GuardDecisionsTotal.WithLabelValues(guard, "redirect").Inc()
				return c.Redirect(http.StatusFound, decision.Redirect)
			}
			metrics.GuardDecisionsTotal.WithLabelValues(guard, "render").Inc()
			c.Set(RoleKey, session.Role)
			return next(c)
		}
	}
}
