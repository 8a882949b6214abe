package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driven"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driving"
	"github.com/campuslabs/askdoc-core/internal/runtime"
)

// Ensure ingestService implements IngestService
var _ driving.IngestService = (*ingestService)(nil)

// ingestService loads a document, chunks it, embeds each chunk and
// persists the chunk records
type ingestService struct {
	parser        driven.DocumentParser
	documentStore driven.DocumentStore
	vectorStore   driven.VectorStore
	chunker       *Chunker
	services      *runtime.Services
	logger        *slog.Logger
}

// NewIngestService creates a new IngestService.
// The embedding service is accessed dynamically via runtime.Services.
func NewIngestService(
	parser driven.DocumentParser,
	documentStore driven.DocumentStore,
	vectorStore driven.VectorStore,
	chunker *Chunker,
	services *runtime.Services,
	logger *slog.Logger,
) driving.IngestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ingestService{
		parser:        parser,
		documentStore: documentStore,
		vectorStore:   vectorStore,
		chunker:       chunker,
		services:      services,
		logger:        logger,
	}
}

// Ingest processes the file at path for the user. Chunks are embedded and
// stored in ordinal order; no chunk is persisted before its embedding
// succeeds. Any failure after the document record is created rolls the
// document back so a half-ingested file is never presented as processed.
func (s *ingestService) Ingest(ctx context.Context, path, filename, userID string) (string, error) {
	pages, err := s.parser.ExtractPages(ctx, path)
	if err != nil {
		return "", err
	}

	pieces := s.chunker.Split(pages)
	if len(pieces) == 0 {
		return "", fmt.Errorf("%w: no extractable text in %s", domain.ErrParseFailure, filename)
	}

	embeddingService := s.services.EmbeddingService()
	if embeddingService == nil {
		return "", fmt.Errorf("%w: no embedding service configured", domain.ErrServiceUnavailable)
	}

	doc := &domain.Document{
		ID:          generateID(),
		UserID:      userID,
		Filename:    filename,
		StoragePath: path,
		CreatedAt:   time.Now(),
	}
	if err := s.documentStore.Create(ctx, doc); err != nil {
		return "", fmt.Errorf("creating document record: %w", err)
	}

	for _, piece := range pieces {
		embeddings, err := embeddingService.Embed(ctx, []string{piece.Content})
		if err != nil || len(embeddings) == 0 {
			s.rollback(ctx, doc)
			if errors.Is(err, context.DeadlineExceeded) {
				return "", fmt.Errorf("%w: embedding chunk %d: %v", domain.ErrDownstreamTimeout, piece.Index, err)
			}
			return "", fmt.Errorf("embedding chunk %d of %s: %w", piece.Index, filename, err)
		}

		chunk := &domain.Chunk{
			ID:         generateID(),
			DocumentID: doc.ID,
			UserID:     userID,
			Content:    piece.Content,
			Embedding:  embeddings[0],
			Source:     filename,
			Page:       piece.Page,
			Index:      piece.Index,
			Metadata:   map[string]string{"source": filename},
			CreatedAt:  time.Now(),
		}
		if err := s.vectorStore.Insert(ctx, chunk); err != nil {
			s.rollback(ctx, doc)
			return "", fmt.Errorf("storing chunk %d of %s: %w", piece.Index, filename, err)
		}
	}

	s.logger.Info("document ingested",
		"document_id", doc.ID, "user_id", userID, "filename", filename, "chunks", len(pieces))

	return doc.ID, nil
}

// rollback deletes the partially created document and any chunks already
// stored for it
func (s *ingestService) rollback(ctx context.Context, doc *domain.Document) {
	if err := s.vectorStore.DeleteByDocument(ctx, doc.ID); err != nil {
		s.logger.Warn("rollback: chunk cleanup failed", "document_id", doc.ID, "error", err)
	}
	if err := s.documentStore.Delete(ctx, doc.ID, doc.UserID); err != nil {
		s.logger.Warn("rollback: document cleanup failed", "document_id", doc.ID, "error", err)
	}
}
