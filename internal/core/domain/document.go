package domain

import "time"

// Document represents an uploaded file owned by a single user
type Document struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}

// Chunk is the atomic unit of embedding and retrieval.
// Chunks are immutable once created and are destroyed only by
// cascading document deletion.
type Chunk struct {
	ID         string            `json:"id"`
	DocumentID string            `json:"document_id"`
	UserID     string            `json:"user_id"`
	Content    string            `json:"content"`
	Embedding  []float32         `json:"embedding,omitempty"`
	Source     string            `json:"source"` // originating filename
	Page       *int              `json:"page,omitempty"`
	Index      int               `json:"index"` // ordinal within document, contiguous from 0
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// RetrievedChunk is a chunk annotated with a similarity score in [0,1].
// Produced fresh per query, never persisted.
type RetrievedChunk struct {
	Chunk      *Chunk  `json:"chunk"`
	Similarity float64 `json:"similarity"`
}

// Page holds the extracted text of one PDF page
type Page struct {
	Number int    `json:"number"` // 1-based page number
	Text   string `json:"text"`
}

// DocumentDeleteError reports why a single document could not be deleted
type DocumentDeleteError struct {
	DocumentID string `json:"document_id"`
	Error      string `json:"error"`
}

// DeleteResult is the outcome of a batch document deletion
type DeleteResult struct {
	Deleted []string              `json:"deleted"`
	Errors  []DocumentDeleteError `json:"errors"`
}
