package driving

import (
	"context"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// RetrievalEngine embeds a query and returns the user's nearest chunks
type RetrievalEngine interface {
	// Retrieve returns up to topK ranked chunks for the query within the
	// user's partition, plus the raw context string (chunk texts joined
	// with a blank line in ranking order). Zero matches returns an empty
	// slice and empty string with a nil error.
	Retrieve(ctx context.Context, query, userID string, topK int) ([]*domain.RetrievedChunk, string, error)
}
