package services

import (
	"context"
	"errors"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driven"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driving"
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// documentService implements the DocumentService interface
type documentService struct {
	documentStore driven.DocumentStore
	vectorStore   driven.VectorStore
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	documentStore driven.DocumentStore,
	vectorStore driven.VectorStore,
) driving.DocumentService {
	return &documentService{
		documentStore: documentStore,
		vectorStore:   vectorStore,
	}
}

// List returns all documents owned by the user
func (s *documentService) List(ctx context.Context, userID string) ([]*domain.Document, error) {
	return s.documentStore.ListByUser(ctx, userID)
}

// Delete removes the listed documents owned by the user. Each id is
// handled independently: the result carries the subset actually deleted
// plus a per-id error for ids not owned by the caller or not found.
func (s *documentService) Delete(ctx context.Context, userID string, documentIDs []string) (*domain.DeleteResult, error) {
	result := &domain.DeleteResult{
		Deleted: []string{},
		Errors:  []domain.DocumentDeleteError{},
	}

	for _, id := range documentIDs {
		if _, err := s.documentStore.Get(ctx, id, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				result.Errors = append(result.Errors, domain.DocumentDeleteError{
					DocumentID: id,
					Error:      "not found or not owned by user",
				})
			} else {
				result.Errors = append(result.Errors, domain.DocumentDeleteError{
					DocumentID: id,
					Error:      err.Error(),
				})
			}
			continue
		}

		if err := s.vectorStore.DeleteByDocument(ctx, id); err != nil {
			result.Errors = append(result.Errors, domain.DocumentDeleteError{
				DocumentID: id,
				Error:      err.Error(),
			})
			continue
		}

		if err := s.documentStore.Delete(ctx, id, userID); err != nil {
			result.Errors = append(result.Errors, domain.DocumentDeleteError{
				DocumentID: id,
				Error:      err.Error(),
			})
			continue
		}

		result.Deleted = append(result.Deleted, id)
	}

	return result, nil
}
