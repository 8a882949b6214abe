package driven

import (
	"context"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// VectorStore persists chunk records with their embeddings and answers
// top-K similarity queries. The store is shared across users but every
// query is scoped to one user's partition; it provides its own
// concurrency control.
type VectorStore interface {
	// Insert appends one chunk record with its embedding
	Insert(ctx context.Context, chunk *domain.Chunk) error

	// Query returns the k records nearest to the embedding within the
	// user's partition, highest similarity first. Equal scores are
	// tie-broken by chunk ordinal. Zero matches is not an error.
	Query(ctx context.Context, embedding []float32, k int, userID string) ([]*domain.RetrievedChunk, error)

	// DeleteByDocument removes all chunks of a document
	DeleteByDocument(ctx context.Context, documentID string) error

	// CountByDocument returns the stored chunk count for a document
	CountByDocument(ctx context.Context, documentID string) (int, error)
}
