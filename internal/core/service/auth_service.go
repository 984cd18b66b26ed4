package service

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

const (
	loginFallback    = "Login failed"
	registerFallback = "Registration failed"
)

// AuthService drives the auth slice: login, signup, logout.
type AuthService struct {
	api     ports.AuthAPI
	session *state.SessionState
	log     zerolog.Logger
}

func NewAuthService(api ports.AuthAPI, session *state.SessionState, log zerolog.Logger) *AuthService {
	return &AuthService{api: api, session: session, log: log}
}

// Login exchanges credentials for a session. A failure leaves the session
// unauthenticated with the error stored for display; nothing is retried.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) domain.Outcome {
	op := begin(state.SliceAuth, "login")
	s.session.Begin()

	grant, err := s.api.Login(ctx, in)
	if err != nil {
		msg := domain.MessageFor(err, loginFallback)
		s.session.Failed(msg)
		s.log.Warn().Err(err).Str("username", in.Username).Msg("login failed")
		return op.end(domain.FailedFrom(err, msg))
	}

	session := s.sessionFrom(grant)
	s.session.Authenticated(session)
	s.log.Info().Str("username", in.Username).Str("role", session.Role.String()).Msg("logged in")
	return op.end(domain.OK())
}

// Register signs up a patient or doctor and opens a session for them.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) domain.Outcome {
	op := begin(state.SliceAuth, "register")
	s.session.Begin()

	grant, err := s.api.Register(ctx, in)
	if err != nil {
		msg := domain.MessageFor(err, registerFallback)
		s.session.Failed(msg)
		s.log.Warn().Err(err).Str("username", in.Username).Str("role", in.Role).Msg("registration failed")
		return op.end(domain.FailedFrom(err, msg))
	}

	session := s.sessionFrom(grant)
	s.session.Authenticated(session)
	s.log.Info().Str("username", in.Username).Str("role", session.Role.String()).Msg("registered")
	return op.end(domain.OK())
}

// Logout drops the session. The backend is not notified.
func (s *AuthService) Logout() {
	s.session.Reset()
	s.log.Info().Msg("logged out")
}

func (s *AuthService) ClearError() {
	s.session.ClearError()
}

func (s *AuthService) sessionFrom(grant *domain.AuthGrant) domain.Session {
	session := domain.Session{
		Role:        domain.ParseRole(grant.Role),
		User:        &domain.User{Name: grant.Name},
		AccessToken: grant.AccessToken,
	}

	// The token is verified by the backend; the client only reads it.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(grant.AccessToken, claims); err != nil {
		s.log.Debug().Err(err).Msg("access token claims unreadable")
		return session
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}
	if uid, ok := claims["user_id"]; ok && uid != nil {
		session.User.ID = fmt.Sprint(uid)
	}
	return session
}
