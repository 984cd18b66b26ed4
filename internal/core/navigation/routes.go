package navigation

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/medibook/appointment-portal/internal/core/domain"
)

//go:embed routes.yaml
var routesYAML []byte

// Access is the guard a route sits behind.
type Access string

const (
	AccessOpen    Access = "open"
	AccessPublic  Access = "public"
	AccessPrivate Access = "private"
)

// Route is one entry of the view table.
type Route struct {
	Path   string        `yaml:"path"`
	Access Access        `yaml:"access"`
	Roles  []domain.Role `yaml:"roles"`
}

// Evaluate runs the route's guard against session.
func (r Route) Evaluate(session domain.Session) Decision {
	var d Decision
	switch r.Access {
	case AccessPublic:
		d = Public(session)
	case AccessPrivate:
		d = Private(session, r.Roles...)
	default:
		d = render
	}
	d.Guard = r.Access
	return d
}

// Table is an immutable lookup of routes by path.
type Table struct {
	routes []Route
	byPath map[string]Route
}

// DefaultTable returns the portal's built-in route table.
func DefaultTable() (*Table, error) {
	return ParseTable(routesYAML)
}

// ParseTable decodes a YAML route table and validates it.
func ParseTable(raw []byte) (*Table, error) {
	var doc struct {
		Routes []Route `yaml:"routes"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse route table: %w", err)
	}

	t := &Table{byPath: make(map[string]Route, len(doc.Routes))}
	for _, r := range doc.Routes {
		r.Path = normalize(r.Path)
		switch r.Access {
		case AccessOpen, AccessPublic, AccessPrivate:
		default:
			return nil, fmt.Errorf("route %s: unknown access %q", r.Path, r.Access)
		}
		for i, role := range r.Roles {
			parsed := domain.ParseRole(string(role))
			if parsed == domain.RoleNone {
				return nil, fmt.Errorf("route %s: %w %q", r.Path, domain.ErrInvalidRole, role)
			}
			r.Roles[i] = parsed
		}
		if _, dup := t.byPath[r.Path]; dup {
			return nil, fmt.Errorf("route %s declared twice", r.Path)
		}
		t.byPath[r.Path] = r
		t.routes = append(t.routes, r)
	}
	return t, nil
}

// Routes returns the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Resolve evaluates the guard for path. Unknown paths return ErrUnknownRoute.
func (t *Table) Resolve(path string, session domain.Session) (Decision, error) {
	r, ok := t.byPath[normalize(path)]
	if !ok {
		return Decision{}, fmt.Errorf("%w: %s", domain.ErrUnknownRoute, path)
	}
	return r.Evaluate(session), nil
}

func normalize(path string) string {
	if path == "" || path == "/" {
		return "/"
	}
	return "/" + strings.Trim(path, "/")
}
