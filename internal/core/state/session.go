package state

import (
	"sync"

	"github.com/medibook/appointment-portal/internal/core/domain"
)

// SessionSnapshot is the auth slice as rendered to the view layer.
type SessionSnapshot struct {
	domain.Session
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

// SessionState is the auth slice. It is the single source of truth for
// authorization decisions and for the bearer token the HTTP adapter attaches.
type SessionState struct {
	mu       sync.RWMutex
	session  domain.Session
	inflight int
	err      string
}

func NewSessionState() *SessionState {
	return &SessionState{}
}

func (s *SessionState) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.err = ""
}

// Authenticated installs a freshly issued session.
func (s *SessionState) Authenticated(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.IsAuthenticated = true
	s.session = session
	s.settle()
}

// Failed records message and leaves the session unauthenticated.
func (s *SessionState) Failed(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
	s.err = message
	s.settle()
}

// Reset returns the slice to its initial unauthenticated value.
func (s *SessionState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
	s.err = ""
}

func (s *SessionState) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Current returns the session used by route guards.
func (s *SessionState) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Token implements ports.CredentialSource.
func (s *SessionState) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.session.IsAuthenticated {
		return ""
	}
	return s.session.AccessToken
}

func (s *SessionState) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := SessionSnapshot{Session: s.session, IsLoading: s.inflight > 0, Error: s.err}
	if s.session.User != nil {
		u := *s.session.User
		out.User = &u
	}
	return out
}

func (s *SessionState) settle() {
	if s.inflight > 0 {
		s.inflight--
	}
}
