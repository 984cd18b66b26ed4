package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/pkg/metrics"
)

const (
	ChatGreeting = "Hello! I'm the hospital AI assistant. How can I help you today?"
	ChatFallback = "Sorry, I'm having trouble connecting to the server."
)

// ChatService relays support-chat turns to the backend and keeps the
// transcript. The server-issued session id is persisted through a
// ChatSessionStore so the conversation survives restarts.
type ChatService struct {
	api      ports.ChatAPI
	sessions ports.ChatSessionStore
	log      zerolog.Logger

	mu         sync.Mutex
	transcript []domain.ChatMessage
}

func NewChatService(api ports.ChatAPI, sessions ports.ChatSessionStore, log zerolog.Logger) *ChatService {
	return &ChatService{
		api:        api,
		sessions:   sessions,
		log:        log,
		transcript: []domain.ChatMessage{greeting()},
	}
}

func greeting() domain.ChatMessage {
	return domain.ChatMessage{Text: ChatGreeting, Sender: domain.SenderBot}
}

// Send appends text as a user turn and the bot's reply after it. Blank input
// is ignored and reported with ok=false. Backend failures never surface as
// errors: the fallback line is appended as the bot's reply instead.
func (s *ChatService) Send(ctx context.Context, text string) (reply domain.ChatMessage, ok bool) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, false
	}
	s.append(domain.ChatMessage{Text: text, Sender: domain.SenderUser})

	sessionID, err := s.sessions.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("chat session id unavailable, starting a new session")
		sessionID = ""
	}

	resp, err := s.api.Chat(ctx, ports.ChatRequest{Query: text, SessionID: sessionID})
	if err != nil {
		s.log.Warn().Err(err).Msg("chat request failed")
		metrics.ChatMessagesTotal.WithLabelValues("fallback").Inc()
		reply = domain.ChatMessage{Text: ChatFallback, Sender: domain.SenderBot}
		s.append(reply)
		return reply, true
	}

	if sessionID == "" && resp.SessionID != "" {
		if err := s.sessions.Save(ctx, resp.SessionID); err != nil {
			s.log.Warn().Err(err).Msg("failed to persist chat session id")
		} else {
			s.log.Debug().Str("session_id", resp.SessionID).Msg("chat session started")
		}
	}

	metrics.ChatMessagesTotal.WithLabelValues("ok").Inc()
	reply = domain.ChatMessage{Text: resp.Response, Sender: domain.SenderBot}
	s.append(reply)
	return reply, true
}

// Transcript returns a copy of the conversation so far.
func (s *ChatService) Transcript() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Reset restarts the conversation and forgets the stored session id.
func (s *ChatService) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.transcript = []domain.ChatMessage{greeting()}
	s.mu.Unlock()
	return s.sessions.Clear(ctx)
}

func (s *ChatService) append(m domain.ChatMessage) {
	s.mu.Lock()
	s.transcript = append(s.transcript, m)
	s.mu.Unlock()
}
