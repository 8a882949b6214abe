package mocks

import (
	"context"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// MockDocumentParser is a mock implementation of DocumentParser for testing
type MockDocumentParser struct {
	pages map[string][]domain.Page
	err   error
}

// NewMockDocumentParser creates a new MockDocumentParser
func NewMockDocumentParser() *MockDocumentParser {
	return &MockDocumentParser{
		pages: make(map[string][]domain.Page),
	}
}

func (m *MockDocumentParser) ExtractPages(ctx context.Context, path string) ([]domain.Page, error) {
	if m.err != nil {
		return nil, m.err
	}
	pages, ok := m.pages[path]
	if !ok {
		return nil, domain.ErrParseFailure
	}
	return pages, nil
}

// Helper methods for testing

// SetPages registers the pages returned for a path
func (m *MockDocumentParser) SetPages(path string, pages []domain.Page) {
	m.pages[path] = pages
}

// SetError makes every extraction fail with err
func (m *MockDocumentParser) SetError(err error) {
	m.err = err
}
