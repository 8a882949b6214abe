package memory

import (
	"context"
	"sync"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ConversationStore = (*ConversationStore)(nil)

// ConversationStore is an in-memory fallback used when Redis is not
// configured. Slots never expire and are lost on restart.
type ConversationStore struct {
	mu    sync.RWMutex
	slots map[string]*domain.ConversationContext
}

// NewConversationStore creates an in-memory ConversationStore
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		slots: make(map[string]*domain.ConversationContext),
	}
}

// Get retrieves the conversation context for a user
func (s *ConversationStore) Get(_ context.Context, userID string) (*domain.ConversationContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.slots[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	clone := *conv
	return &clone, nil
}

// Save stores the conversation context for a user
func (s *ConversationStore) Save(_ context.Context, userID string, conv *domain.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *conv
	s.slots[userID] = &clone
	return nil
}

// Delete removes the conversation context for a user
func (s *ConversationStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, userID)
	return nil
}
