package services

import (
	"strings"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// Default chunking parameters, in characters
const (
	DefaultChunkSize    = 200
	DefaultChunkOverlap = 50
)

// ChunkPiece is one window of document text before embedding
type ChunkPiece struct {
	Content string
	Page    *int // page of the piece's first character, when known
	Index   int  // ordinal within the document, contiguous from 0
}

// Chunker splits extracted page texts into overlapping fixed-size
// character windows. Splitting is deterministic: identical input and
// parameters always yield identical boundaries.
type Chunker struct {
	size    int
	overlap int
}

// NewChunker creates a chunker; overlap must be smaller than size
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if overlap < 0 || overlap >= size {
		return nil, domain.ErrInvalidInput
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// Split chunks the ordered page texts. A chunk may span a page boundary;
// it is tagged with the page of its first character. An empty document
// yields zero chunks.
func (c *Chunker) Split(pages []domain.Page) []ChunkPiece {
	// Concatenate non-empty pages, tracking the page each rune came from.
	var text []rune
	type pageStart struct {
		offset int
		number int
	}
	var starts []pageStart

	for _, p := range pages {
		body := strings.TrimSpace(p.Text)
		if body == "" {
			continue
		}
		if len(text) > 0 {
			text = append(text, '\n')
		}
		starts = append(starts, pageStart{offset: len(text), number: p.Number})
		text = append(text, []rune(body)...)
	}

	if len(text) == 0 {
		return nil
	}

	pageOf := func(offset int) *int {
		page := starts[0].number
		for _, s := range starts {
			if s.offset > offset {
				break
			}
			page = s.number
		}
		return &page
	}

	step := c.size - c.overlap
	var pieces []ChunkPiece
	for start := 0; start < len(text); start += step {
		end := start + c.size
		if end > len(text) {
			end = len(text)
		}
		pieces = append(pieces, ChunkPiece{
			Content: string(text[start:end]),
			Page:    pageOf(start),
			Index:   len(pieces),
		})
		if end == len(text) {
			break
		}
	}

	return pieces
}
