package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentParser = (*Parser)(nil)

// Parser implements driven.DocumentParser using pdfcpu.
// pdfcpu has no direct text extraction API, so content streams are
// extracted to a temp directory and read back per page.
type Parser struct {
	conf *model.Configuration
}

// NewParser creates a pdfcpu-backed DocumentParser
func NewParser() *Parser {
	return &Parser{conf: model.NewDefaultConfiguration()}
}

// ExtractPages extracts the text of each page of the PDF at path.
// A file pdfcpu cannot open yields domain.ErrParseFailure.
func (p *Parser) ExtractPages(ctx context.Context, path string) ([]domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdfCtx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}
	pageCount := pdfCtx.PageCount

	outDir, err := os.MkdirTemp("", "askdoc-pdf-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create extraction dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	if err := api.ExtractContentFile(path, outDir, nil, p.conf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}

	pageTexts := make(map[int]string)
	entries, _ := os.ReadDir(outDir)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, entry.Name()))
		if err != nil {
			continue
		}

		var pageNum int
		if _, err := fmt.Sscanf(entry.Name(), "page_%d", &pageNum); err == nil {
			pageTexts[pageNum] = string(content)
			continue
		}
		if _, err := fmt.Sscanf(entry.Name(), "Content_page_%d", &pageNum); err == nil {
			pageTexts[pageNum] = string(content)
		}
	}

	pages := make([]domain.Page, 0, pageCount)
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		pages = append(pages, domain.Page{
			Number: pageNum,
			Text:   strings.TrimSpace(pageTexts[pageNum]),
		})
	}

	return pages, nil
}
