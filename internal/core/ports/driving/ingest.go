package driving

import (
	"context"
)

// IngestService loads, chunks, embeds and stores an uploaded document
type IngestService interface {
	// Ingest processes the file at path for the user and returns the new
	// document ID. On parse, embedding or storage failure the partially
	// created document is rolled back and the error surfaced.
	Ingest(ctx context.Context, path, filename, userID string) (string, error)
}
