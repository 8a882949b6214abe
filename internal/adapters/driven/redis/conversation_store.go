package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driven"
	"github.com/redis/go-redis/v9"
)

// Verify interface compliance
var _ driven.ConversationStore = (*ConversationStore)(nil)

const (
	conversationPrefix = "conversation:"

	// DefaultConversationTTL bounds how long a stale conversation
	// context survives before Redis evicts it.
	DefaultConversationTTL = 30 * time.Minute
)

// ConversationStore implements driven.ConversationStore using Redis.
// Each user has a single conversation slot that expires via TTL.
type ConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewConversationStore creates a new Redis-backed ConversationStore.
// A ttl of zero falls back to DefaultConversationTTL.
func NewConversationStore(client *redis.Client, ttl time.Duration) *ConversationStore {
	if ttl <= 0 {
		ttl = DefaultConversationTTL
	}
	return &ConversationStore{client: client, ttl: ttl}
}

// Get retrieves the conversation context for a user
func (s *ConversationStore) Get(ctx context.Context, userID string) (*domain.ConversationContext, error) {
	data, err := s.client.Get(ctx, conversationPrefix+userID).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	var conv domain.ConversationContext
	if err := json.Unmarshal(data, &conv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}

	return &conv, nil
}

// Save stores the conversation context for a user, resetting the TTL
func (s *ConversationStore) Save(ctx context.Context, userID string, conv *domain.ConversationContext) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}

	if err := s.client.Set(ctx, conversationPrefix+userID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	return nil
}

// Delete removes the conversation context for a user
func (s *ConversationStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, conversationPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}
