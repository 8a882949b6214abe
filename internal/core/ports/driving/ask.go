package driving

import (
	"context"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// AskService answers natural-language questions against a user's documents
type AskService interface {
	// Ask retrieves context for the question, merges any prior
	// conversation context for the user, and produces an answer or a
	// clarification request. A question over zero grounding text yields
	// the fixed no-context answer, never an error.
	Ask(ctx context.Context, userID string, req domain.AskRequest) (*domain.AnswerResult, error)
}
