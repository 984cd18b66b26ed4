package domain

import "strings"

// Role is the authorization role carried by the Session.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
	RoleNone    Role = ""
)

// ParseRole maps the backend's role string onto a Role. Unknown values map to RoleNone.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RolePatient:
		return RolePatient
	case RoleDoctor:
		return RoleDoctor
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleNone
	}
}

// DashboardPath is where an authenticated user of this role lands.
func (r Role) DashboardPath() string {
	switch r {
	case RoleDoctor:
		return "/doctor/dashboard"
	case RolePatient:
		return "/patient/dashboard"
	case RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/"
	}
}

// ProfileSetupPath is the view a user is sent to when the backend reports a
// missing profile. Roles without a profile flow fall back to the dashboard.
func (r Role) ProfileSetupPath() string {
	switch r {
	case RoleDoctor:
		return "/doctor/profile-setup"
	case RolePatient:
		return "/patient/profile-setup"
	default:
		return r.DashboardPath()
	}
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}
