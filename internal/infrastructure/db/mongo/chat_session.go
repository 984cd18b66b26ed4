package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medibook/appointment-portal/internal/core/ports"
)

const chatSessionCollection = "chat_sessions"

// ChatSessionStore keeps one chat session document per client key.
type ChatSessionStore struct {
	coll      *mongo.Collection
	clientKey string
}

var _ ports.ChatSessionStore = (*ChatSessionStore)(nil)

func NewChatSessionStore(db *mongo.Database, clientKey string) *ChatSessionStore {
	return &ChatSessionStore{coll: db.Collection(chatSessionCollection), clientKey: clientKey}
}

type chatSessionDoc struct {
	ClientKey string    `bson:"client_key"`
	SessionID string    `bson:"session_id"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// EnsureIndexes makes client_key unique so upserts cannot race into duplicates.
func (s *ChatSessionStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "client_key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *ChatSessionStore) Load(ctx context.Context) (string, error) {
	var doc chatSessionDoc
	err := s.coll.FindOne(ctx, bson.M{"client_key": s.clientKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load chat session: %w", err)
	}
	return doc.SessionID, nil
}

func (s *ChatSessionStore) Save(ctx context.Context, id string) error {
	filter := bson.M{"client_key": s.clientKey}
	update := bson.M{"$set": bson.M{"session_id": id, "updated_at": time.Now().UTC()}}

	_, err := s.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save chat session: %w", err)
	}
	return nil
}

func (s *ChatSessionStore) Clear(ctx context.Context) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"client_key": s.clientKey}); err != nil {
		return fmt.Errorf("clear chat session: %w", err)
	}
	return nil
}

func (s *ChatSessionStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}
