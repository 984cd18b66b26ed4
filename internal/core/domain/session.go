package domain

import "time"

// User is the display identity returned by login and signup.
type User struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Session is the authenticated identity and role of the running client.
// The zero value is the unauthenticated session.
type Session struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	Role            Role      `json:"role"`
	User            *User     `json:"user"`
	AccessToken     string    `json:"-"`
	ExpiresAt       time.Time `json:"expiresAt,omitzero"`
}

// AuthGrant is what the backend hands back on a successful login or signup.
type AuthGrant struct {
	AccessToken string
	Role        string
	Name        string
}
