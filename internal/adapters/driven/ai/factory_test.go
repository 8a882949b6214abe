package ai

import (
	"errors"
	"testing"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

func TestFactory_CreateEmbeddingService_NilSettings(t *testing.T) {
	factory := NewFactory()

	svc, err := factory.CreateEmbeddingService(nil)
	if err != nil {
		t.Errorf("expected no error for nil settings, got %v", err)
	}
	if svc != nil {
		t.Error("expected nil service for nil settings")
	}
}

func TestFactory_CreateEmbeddingService_NotConfigured(t *testing.T) {
	factory := NewFactory()

	settings := &domain.EmbeddingSettings{
		Provider: "",
		Model:    "",
		APIKey:   "",
	}

	svc, err := factory.CreateEmbeddingService(settings)
	if err != nil {
		t.Errorf("expected no error for unconfigured settings, got %v", err)
	}
	if svc != nil {
		t.Error("expected nil service for unconfigured settings")
	}
}

func TestFactory_CreateEmbeddingService_Gemini(t *testing.T) {
	factory := NewFactory()

	settings := &domain.EmbeddingSettings{
		Provider: domain.AIProviderGemini,
		Model:    "embedding-001",
		APIKey:   "key-test",
	}

	svc, err := factory.CreateEmbeddingService(settings)
	if err != nil {
		t.Errorf("expected no error for Gemini, got %v", err)
	}
	if svc == nil {
		t.Error("expected non-nil service for Gemini")
	}
}

func TestFactory_CreateEmbeddingService_OpenAI(t *testing.T) {
	factory := NewFactory()

	settings := &domain.EmbeddingSettings{
		Provider: domain.AIProviderOpenAI,
		Model:    "text-embedding-3-small",
		APIKey:   "sk-test",
	}

	svc, err := factory.CreateEmbeddingService(settings)
	if err != nil {
		t.Errorf("expected no error for OpenAI, got %v", err)
	}
	if svc == nil {
		t.Error("expected non-nil service for OpenAI")
	}
}

func TestFactory_CreateEmbeddingService_UnknownProvider(t *testing.T) {
	factory := NewFactory()

	settings := &domain.EmbeddingSettings{
		Provider: "cohere",
		Model:    "embed-v3",
		APIKey:   "key-test",
	}

	_, err := factory.CreateEmbeddingService(settings)
	if !errors.Is(err, domain.ErrInvalidProvider) {
		t.Errorf("expected ErrInvalidProvider, got %v", err)
	}
}

func TestFactory_CreateLLMService_NilSettings(t *testing.T) {
	factory := NewFactory()

	svc, err := factory.CreateLLMService(nil)
	if err != nil {
		t.Errorf("expected no error for nil settings, got %v", err)
	}
	if svc != nil {
		t.Error("expected nil service for nil settings")
	}
}

func TestFactory_CreateLLMService_Gemini(t *testing.T) {
	factory := NewFactory()

	settings := &domain.LLMSettings{
		Provider: domain.AIProviderGemini,
		Model:    "gemini-1.5-flash",
		APIKey:   "key-test",
	}

	svc, err := factory.CreateLLMService(settings)
	if err != nil {
		t.Errorf("expected no error for Gemini, got %v", err)
	}
	if svc == nil {
		t.Error("expected non-nil service for Gemini")
	}
}

func TestFactory_CreateLLMService_UnknownProvider(t *testing.T) {
	factory := NewFactory()

	settings := &domain.LLMSettings{
		Provider: "anthropic",
		Model:    "claude-3",
		APIKey:   "key-test",
	}

	_, err := factory.CreateLLMService(settings)
	if !errors.Is(err, domain.ErrInvalidProvider) {
		t.Errorf("expected ErrInvalidProvider, got %v", err)
	}
}
