// Package localstore persists the chat session id in a small JSON file on
// the local disk. It is the default store when no database is configured.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/medibook/appointment-portal/internal/core/ports"
)

const fileName = "chat_session.json"

// DefaultPath returns <user config dir>/appointment-portal/chat_session.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "appointment-portal", fileName), nil
}

type record struct {
	ChatSessionID string `json:"chat_session_id"`
}

// ChatSessionStore is a file-backed ports.ChatSessionStore.
type ChatSessionStore struct {
	mu   sync.Mutex
	path string
}

var _ ports.ChatSessionStore = (*ChatSessionStore)(nil)

func NewChatSessionStore(path string) *ChatSessionStore {
	return &ChatSessionStore{path: path}
}

func (s *ChatSessionStore) Path() string { return s.path }

// Load returns "" when the file does not exist yet.
func (s *ChatSessionStore) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read chat session: %w", err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return "", fmt.Errorf("decode chat session %s: %w", s.path, err)
	}
	return rec.ChatSessionID, nil
}

// Save replaces the file through a temp file and rename, so a crash never
// leaves a half-written id behind.
func (s *ChatSessionStore) Save(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(record{ChatSessionID: id})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create chat session dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), fileName+".*")
	if err != nil {
		return fmt.Errorf("create chat session temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write chat session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write chat session: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace chat session: %w", err)
	}
	return nil
}

func (s *ChatSessionStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove chat session: %w", err)
	}
	return nil
}

// Ping checks that the store's directory can be created.
func (s *ChatSessionStore) Ping(context.Context) error {
	return os.MkdirAll(filepath.Dir(s.path), 0o700)
}
