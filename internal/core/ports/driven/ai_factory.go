package driven

import (
	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// AIServiceFactory creates AI services from provider settings.
// A single pipeline parameterized by the injected services replaces
// per-provider code paths.
type AIServiceFactory interface {
	// CreateEmbeddingService creates an embedding service, or (nil, nil)
	// when the settings are not configured
	CreateEmbeddingService(settings *domain.EmbeddingSettings) (EmbeddingService, error)

	// CreateLLMService creates an LLM service, or (nil, nil) when the
	// settings are not configured
	CreateLLMService(settings *domain.LLMSettings) (LLMService, error)
}
