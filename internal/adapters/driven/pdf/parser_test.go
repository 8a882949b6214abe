package pdf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

func TestParser_ExtractPages_MissingFile(t *testing.T) {
	parser := NewParser()

	_, err := parser.ExtractPages(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}

func TestParser_ExtractPages_NotAPDF(t *testing.T) {
	parser := NewParser()

	path := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not a pdf"), 0644))

	_, err := parser.ExtractPages(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}

func TestParser_ExtractPages_CancelledContext(t *testing.T) {
	parser := NewParser()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parser.ExtractPages(ctx, "ignored.pdf")
	assert.ErrorIs(t, err, context.Canceled)
}
