package domain

import "sync"

// AIProvider identifies a pluggable embedding/LLM backend
type AIProvider string

const (
	AIProviderGemini AIProvider = "gemini"
	AIProviderOpenAI AIProvider = "openai"
)

// EmbeddingSettings configures the embedding provider
type EmbeddingSettings struct {
	Provider AIProvider `json:"provider"`
	APIKey   string     `json:"api_key"`
	Model    string     `json:"model"`
	BaseURL  string     `json:"base_url,omitempty"`
}

// IsConfigured returns true when the settings name a usable provider
func (s *EmbeddingSettings) IsConfigured() bool {
	return s != nil && s.Provider != "" && s.APIKey != ""
}

// LLMSettings configures the LLM provider
type LLMSettings struct {
	Provider AIProvider `json:"provider"`
	APIKey   string     `json:"api_key"`
	Model    string     `json:"model"`
	BaseURL  string     `json:"base_url,omitempty"`
}

// IsConfigured returns true when the settings name a usable provider
func (s *LLMSettings) IsConfigured() bool {
	return s != nil && s.Provider != "" && s.APIKey != ""
}

// RuntimeConfig tracks which services are available at runtime.
// This is determined at startup and can be updated dynamically for AI services.
// Thread-safe for concurrent access.
type RuntimeConfig struct {
	mu sync.RWMutex

	// Static (set at startup, read-only)
	ConversationBackend string // "redis" or "memory"

	// Dynamic capability flags (updated when AI services change)
	embeddingAvailable bool
	llmAvailable       bool
}

// NewRuntimeConfig creates a new RuntimeConfig with initial values
func NewRuntimeConfig(conversationBackend string) *RuntimeConfig {
	return &RuntimeConfig{
		ConversationBackend: conversationBackend,
	}
}

// EmbeddingAvailable returns whether embedding service is available
func (c *RuntimeConfig) EmbeddingAvailable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.embeddingAvailable
}

// LLMAvailable returns whether LLM service is available
func (c *RuntimeConfig) LLMAvailable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.llmAvailable
}

// SetEmbeddingAvailable updates the embedding availability flag
func (c *RuntimeConfig) SetEmbeddingAvailable(available bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.embeddingAvailable = available
}

// SetLLMAvailable updates the LLM availability flag
func (c *RuntimeConfig) SetLLMAvailable(available bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.llmAvailable = available
}

// CanAnswer returns true when both retrieval and generation are possible
func (c *RuntimeConfig) CanAnswer() bool {
	return c.EmbeddingAvailable() && c.LLMAvailable()
}
