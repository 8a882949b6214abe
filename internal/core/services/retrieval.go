package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driven"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driving"
	"github.com/campuslabs/askdoc-core/internal/runtime"
)

// Ensure retrievalEngine implements RetrievalEngine
var _ driving.RetrievalEngine = (*retrievalEngine)(nil)

// retrievalEngine implements the RetrievalEngine interface
type retrievalEngine struct {
	vectorStore driven.VectorStore
	services    *runtime.Services // Dynamic AI services
}

// NewRetrievalEngine creates a new RetrievalEngine.
// The embedding service is accessed dynamically via runtime.Services.
func NewRetrievalEngine(
	vectorStore driven.VectorStore,
	services *runtime.Services,
) driving.RetrievalEngine {
	return &retrievalEngine{
		vectorStore: vectorStore,
		services:    services,
	}
}

// Retrieve embeds the query and returns the user's nearest chunks with
// their raw context string. Zero matches is the "no relevant documents"
// case, not an error.
func (e *retrievalEngine) Retrieve(ctx context.Context, query, userID string, topK int) ([]*domain.RetrievedChunk, string, error) {
	topK = ClampTopK(topK)

	embeddingService := e.services.EmbeddingService()
	if embeddingService == nil {
		return nil, "", fmt.Errorf("%w: no embedding service configured", domain.ErrServiceUnavailable)
	}

	embedding, err := embeddingService.EmbedQuery(ctx, query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, "", fmt.Errorf("%w: embedding query: %v", domain.ErrDownstreamTimeout, err)
		}
		return nil, "", fmt.Errorf("embedding query: %w", err)
	}

	chunks, err := e.vectorStore.Query(ctx, embedding, topK, userID)
	if err != nil {
		return nil, "", fmt.Errorf("vector query: %w", err)
	}
	if len(chunks) == 0 {
		return []*domain.RetrievedChunk{}, "", nil
	}

	texts := make([]string, len(chunks))
	for i, rc := range chunks {
		texts[i] = rc.Chunk.Content
	}

	return chunks, strings.Join(texts, "\n\n"), nil
}

// ClampTopK bounds the retrieval depth: non-positive values fall back to
// the default, oversized values are capped rather than passed through.
func ClampTopK(topK int) int {
	if topK <= 0 {
		return domain.DefaultTopK
	}
	if topK > domain.MaxTopK {
		return domain.MaxTopK
	}
	return topK
}
