package driving

import (
	"context"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// DocumentService lists and deletes a user's documents
type DocumentService interface {
	// List returns all documents owned by the user
	List(ctx context.Context, userID string) ([]*domain.Document, error)

	// Delete removes the listed documents owned by the user, cascading to
	// their chunks. Returns the subset actually deleted plus a per-id
	// error for ids not owned by the caller or not found.
	Delete(ctx context.Context, userID string, documentIDs []string) (*domain.DeleteResult, error)
}
