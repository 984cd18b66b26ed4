package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/medibook/appointment-portal/internal/core/ports"
)

// ChatSessionStore keeps the chat session id in a single Redis key.
// Key format: portal:chat_session_id:<client_key>
type ChatSessionStore struct {
	client *redis.Client
	key    string
}

var _ ports.ChatSessionStore = (*ChatSessionStore)(nil)

// NewChatSessionStore creates a store scoped to clientKey.
func NewChatSessionStore(client *redis.Client, clientKey string) *ChatSessionStore {
	return &ChatSessionStore{client: client, key: "portal:chat_session_id:" + clientKey}
}

func (s *ChatSessionStore) Load(ctx context.Context) (string, error) {
	id, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load chat session: %w", err)
	}
	return id, nil
}

// Save stores id without expiry; the session lives until Clear.
func (s *ChatSessionStore) Save(ctx context.Context, id string) error {
	if err := s.client.Set(ctx, s.key, id, 0).Err(); err != nil {
		return fmt.Errorf("save chat session: %w", err)
	}
	return nil
}

func (s *ChatSessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear chat session: %w", err)
	}
	return nil
}

func (s *ChatSessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
