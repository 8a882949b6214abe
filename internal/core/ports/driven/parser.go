package driven

import (
	"context"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// DocumentParser extracts ordered page texts from an uploaded file.
// Corrupt or non-PDF content yields domain.ErrParseFailure.
type DocumentParser interface {
	// ExtractPages returns the page texts of the file in page order
	ExtractPages(ctx context.Context, path string) ([]domain.Page, error)
}
