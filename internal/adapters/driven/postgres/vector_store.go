package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.VectorStore = (*VectorStore)(nil)

// VectorStore implements driven.VectorStore using PostgreSQL with the
// pgvector extension. Similarity is cosine, mapped into [0,1].
type VectorStore struct {
	db *DB
}

// NewVectorStore creates a new VectorStore
func NewVectorStore(db *DB) *VectorStore {
	return &VectorStore{db: db}
}

// Insert appends one chunk record with its embedding
func (s *VectorStore) Insert(ctx context.Context, chunk *domain.Chunk) error {
	var metadata []byte
	if chunk.Metadata != nil {
		var err error
		metadata, err = json.Marshal(chunk.Metadata)
		if err != nil {
			return err
		}
	}

	query := `
		INSERT INTO chunks (id, document_id, user_id, content, embedding, source, page, chunk_index, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5::vector, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		chunk.ID,
		chunk.DocumentID,
		chunk.UserID,
		chunk.Content,
		formatVector(chunk.Embedding),
		chunk.Source,
		NullInt(chunk.Page),
		chunk.Index,
		nullBytes(metadata),
		chunk.CreatedAt,
	)
	return err
}

// Query returns the k records nearest to the embedding within the user's
// partition, highest similarity first, ties broken by chunk ordinal
func (s *VectorStore) Query(ctx context.Context, embedding []float32, k int, userID string) ([]*domain.RetrievedChunk, error) {
	query := `
		SELECT id, document_id, user_id, content, source, page, chunk_index, metadata, created_at,
		       GREATEST(0.0, LEAST(1.0, 1.0 - (embedding <=> $1::vector))) AS similarity
		FROM chunks
		WHERE user_id = $2
		ORDER BY embedding <=> $1::vector ASC, chunk_index ASC
		LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, formatVector(embedding), userID, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*domain.RetrievedChunk{}
	for rows.Next() {
		var (
			chunk    domain.Chunk
			page     sql.NullInt64
			metadata []byte
			sim      float64
		)
		err := rows.Scan(
			&chunk.ID,
			&chunk.DocumentID,
			&chunk.UserID,
			&chunk.Content,
			&chunk.Source,
			&page,
			&chunk.Index,
			&metadata,
			&chunk.CreatedAt,
			&sim,
		)
		if err != nil {
			return nil, err
		}
		chunk.Page = IntPtr(page)
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &chunk.Metadata); err != nil {
				return nil, err
			}
		}
		results = append(results, &domain.RetrievedChunk{Chunk: &chunk, Similarity: sim})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// DeleteByDocument removes all chunks of a document
func (s *VectorStore) DeleteByDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM chunks WHERE document_id = $1`, documentID)
	return err
}

// CountByDocument returns the stored chunk count for a document
func (s *VectorStore) CountByDocument(ctx context.Context, documentID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM chunks WHERE document_id = $1`, documentID).Scan(&count)
	return count, err
}

// formatVector renders an embedding as a pgvector literal: [0.1,0.2,...]
func formatVector(embedding []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range embedding {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}

func nullBytes(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}
