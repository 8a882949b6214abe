package driven

import (
	"context"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// ConversationStore keeps the single per-user follow-up context slot.
// Redis-backed implementations expire slots by TTL; the in-memory
// implementation lives only as long as the process, matching the
// one-slot-per-user contract either way.
type ConversationStore interface {
	// Get returns the user's current context, or domain.ErrNotFound
	Get(ctx context.Context, userID string) (*domain.ConversationContext, error)

	// Save overwrites the user's context slot (last write wins)
	Save(ctx context.Context, userID string, conv *domain.ConversationContext) error

	// Delete clears the user's context slot
	Delete(ctx context.Context, userID string) error
}
