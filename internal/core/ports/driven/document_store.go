package driven

import (
	"context"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// DocumentStore handles document persistence (PostgreSQL).
// Every read and delete is scoped by the owning user.
type DocumentStore interface {
	// Create persists a new document record
	Create(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID, scoped to its owner.
	// Returns domain.ErrNotFound for missing or foreign documents.
	Get(ctx context.Context, id, userID string) (*domain.Document, error)

	// ListByUser retrieves all documents owned by a user
	ListByUser(ctx context.Context, userID string) ([]*domain.Document, error)

	// Delete removes a document owned by the user; chunks cascade.
	// Returns domain.ErrNotFound for missing or foreign documents.
	Delete(ctx context.Context, id, userID string) error

	// CountByUser returns the document count for a user
	CountByUser(ctx context.Context, userID string) (int, error)
}
