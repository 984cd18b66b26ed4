package ports

import "context"

// ChatSessionStore durably keeps the server-issued chat session identifier.
// Load returns "" with a nil error when nothing has been stored yet.
type ChatSessionStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, sessionID string) error
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}
