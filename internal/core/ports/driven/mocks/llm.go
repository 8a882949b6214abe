package mocks

import (
	"context"
	"errors"
)

// MockLLMService is a mock implementation of LLMService for testing
type MockLLMService struct {
	response string
	err      error
	Prompts  []string // prompts received, in call order
}

// NewMockLLMService creates a new MockLLMService
func NewMockLLMService() *MockLLMService {
	return &MockLLMService{
		response: "mock answer",
	}
}

func (m *MockLLMService) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *MockLLMService) Model() string {
	return "mock-llm-model"
}

func (m *MockLLMService) Ping(ctx context.Context) error {
	return nil
}

func (m *MockLLMService) Close() error {
	return nil
}

// Helper methods for testing

func (m *MockLLMService) SetResponse(response string) {
	m.response = response
}

func (m *MockLLMService) SetError(message string) {
	if message == "" {
		m.err = nil
		return
	}
	m.err = errors.New(message)
}
