package driven

import (
	"context"
)

// LLMService provides grounded text generation for answering and clarification
type LLMService interface {
	// Generate produces text for a raw prompt. Implementations return a
	// visible "Error: ..." string body on provider-side failures rather
	// than an error; transport failures surface as errors.
	Generate(ctx context.Context, prompt string) (string, error)

	// Model returns the model name being used
	Model() string

	// Ping verifies the LLM service is available
	Ping(ctx context.Context) error

	// Close releases resources held by the LLM service
	Close() error
}
