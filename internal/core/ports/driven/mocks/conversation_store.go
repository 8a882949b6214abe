package mocks

import (
	"context"
	"sync"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// MockConversationStore is a mock implementation of ConversationStore for testing
type MockConversationStore struct {
	mu    sync.RWMutex
	slots map[string]*domain.ConversationContext
}

// NewMockConversationStore creates a new MockConversationStore
func NewMockConversationStore() *MockConversationStore {
	return &MockConversationStore{
		slots: make(map[string]*domain.ConversationContext),
	}
}

func (m *MockConversationStore) Get(ctx context.Context, userID string) (*domain.ConversationContext, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	conv, ok := m.slots[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return conv, nil
}

func (m *MockConversationStore) Save(ctx context.Context, userID string, conv *domain.ConversationContext) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[userID] = conv
	return nil
}

func (m *MockConversationStore) Delete(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, userID)
	return nil
}
