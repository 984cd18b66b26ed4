package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a reachable Redis; set REDIS_TEST_ADDR to run them.
func connectForTest(t *testing.T) *ChatSessionStore {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client, err := Connect(context.Background(), Config{Addr: addr, Timeout: 2 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := NewChatSessionStore(client, "test-"+uuid.NewString())
	t.Cleanup(func() { _ = store.Clear(context.Background()) })
	return store
}

func TestConnect_UnreachableAddr(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping")
}

func TestChatSessionStore_RoundTrip(t *testing.T) {
	store := connectForTest(t)
	ctx := context.Background()

	id, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, store.Save(ctx, "abc"))
	id, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	require.NoError(t, store.Clear(ctx))
	id, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestChatSessionStore_KeyIsScopedToClient(t *testing.T) {
	store := NewChatSessionStore(nil, "kiosk-1")
	assert.Equal(t, "portal:chat_session_id:kiosk-1", store.key)
}
