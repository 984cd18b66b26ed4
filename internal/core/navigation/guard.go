// Package navigation decides whether a view may render for the current
// session or where the caller must be sent instead.
package navigation

import (
	"slices"

	"github.com/medibook/appointment-portal/internal/core/domain"
)

const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// Decision is the result of evaluating a guard.
type Decision struct {
	// Redirect is empty when the view renders.
	Redirect string
	// Guard is the access level that decided, set when a route was evaluated.
	Guard Access
}

func (d Decision) Renders() bool { return d.Redirect == "" }

var render = Decision{}

func redirect(to string) Decision { return Decision{Redirect: to} }

// Private admits authenticated sessions whose role is in roles. An empty
// roles list admits any authenticated session.
func Private(session domain.Session, roles ...domain.Role) Decision {
	if !session.IsAuthenticated {
		return redirect(LoginPath)
	}
	if len(roles) > 0 && !slices.Contains(roles, session.Role) {
		return redirect(UnauthorizedPath)
	}
	return render
}

// Public admits only unauthenticated sessions; signed-in users are sent to
// their dashboard.
func Public(session domain.Session) Decision {
	if session.IsAuthenticated {
		return redirect(session.Role.DashboardPath())
	}
	return render
}
