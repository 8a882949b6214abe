package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements driven.DocumentStore using PostgreSQL
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Create persists a new document record
func (s *DocumentStore) Create(ctx context.Context, doc *domain.Document) error {
	query := `
		INSERT INTO documents (id, user_id, filename, storage_path, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		doc.ID,
		doc.UserID,
		doc.Filename,
		doc.StoragePath,
		doc.CreatedAt,
	)
	return err
}

// Get retrieves a document by ID, scoped to its owner
func (s *DocumentStore) Get(ctx context.Context, id, userID string) (*domain.Document, error) {
	query := `
		SELECT id, user_id, filename, storage_path, created_at
		FROM documents
		WHERE id = $1 AND user_id = $2
	`

	var doc domain.Document
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Filename,
		&doc.StoragePath,
		&doc.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// ListByUser retrieves all documents owned by a user
func (s *DocumentStore) ListByUser(ctx context.Context, userID string) ([]*domain.Document, error) {
	query := `
		SELECT id, user_id, filename, storage_path, created_at
		FROM documents
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []*domain.Document{}
	for rows.Next() {
		var doc domain.Document
		err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.Filename,
			&doc.StoragePath,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

// Delete removes a document owned by the user; chunks cascade via FK
func (s *DocumentStore) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM documents WHERE id = $1 AND user_id = $2`
	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// CountByUser returns the document count for a user
func (s *DocumentStore) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
