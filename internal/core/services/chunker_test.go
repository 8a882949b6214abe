package services

import (
	"strings"
	"testing"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

func TestNewChunker_Validation(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		overlap int
		wantErr bool
	}{
		{"valid", 200, 50, false},
		{"zero overlap", 100, 0, false},
		{"zero size", 0, 0, true},
		{"negative size", -1, 0, true},
		{"negative overlap", 100, -1, true},
		{"overlap equals size", 100, 100, true},
		{"overlap exceeds size", 100, 150, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewChunker(tc.size, tc.overlap)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for size=%d overlap=%d", tc.size, tc.overlap)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestChunker_Split_EmptyDocument(t *testing.T) {
	chunker, _ := NewChunker(200, 50)

	if pieces := chunker.Split(nil); len(pieces) != 0 {
		t.Errorf("expected no pieces for nil pages, got %d", len(pieces))
	}

	pages := []domain.Page{
		{Number: 1, Text: ""},
		{Number: 2, Text: "   \n  "},
	}
	if pieces := chunker.Split(pages); len(pieces) != 0 {
		t.Errorf("expected no pieces for whitespace-only pages, got %d", len(pieces))
	}
}

func TestChunker_Split_SingleChunk(t *testing.T) {
	chunker, _ := NewChunker(200, 50)

	pieces := chunker.Split([]domain.Page{{Number: 1, Text: "short text"}})
	if len(pieces) != 1 {
		t.Fatalf("expected 1 piece, got %d", len(pieces))
	}
	if pieces[0].Content != "short text" {
		t.Errorf("unexpected content: %q", pieces[0].Content)
	}
	if pieces[0].Index != 0 {
		t.Errorf("expected index 0, got %d", pieces[0].Index)
	}
	if pieces[0].Page == nil || *pieces[0].Page != 1 {
		t.Errorf("expected page 1, got %v", pieces[0].Page)
	}
}

func TestChunker_Split_Overlap(t *testing.T) {
	chunker, _ := NewChunker(10, 4)

	text := "abcdefghijklmnopqrstuvwxyz"
	pieces := chunker.Split([]domain.Page{{Number: 1, Text: text}})

	// step is 6: windows start at 0, 6, 12, 18; the last clips at the end
	if len(pieces) != 4 {
		t.Fatalf("expected 4 pieces, got %d", len(pieces))
	}
	if pieces[0].Content != "abcdefghij" {
		t.Errorf("unexpected first piece: %q", pieces[0].Content)
	}
	if pieces[1].Content != "ghijklmnop" {
		t.Errorf("unexpected second piece: %q", pieces[1].Content)
	}
	if pieces[3].Content != "stuvwxyz" {
		t.Errorf("unexpected final piece: %q", pieces[3].Content)
	}

	// Consecutive windows share the overlap region
	if !strings.HasPrefix(pieces[1].Content, pieces[0].Content[6:]) {
		t.Errorf("pieces do not overlap: %q then %q", pieces[0].Content, pieces[1].Content)
	}
}

func TestChunker_Split_ContiguousOrdinals(t *testing.T) {
	chunker, _ := NewChunker(20, 5)

	pieces := chunker.Split([]domain.Page{
		{Number: 1, Text: strings.Repeat("alpha beta gamma ", 10)},
	})
	if len(pieces) < 2 {
		t.Fatalf("expected multiple pieces, got %d", len(pieces))
	}
	for i, p := range pieces {
		if p.Index != i {
			t.Errorf("piece %d has index %d", i, p.Index)
		}
	}
}

func TestChunker_Split_Deterministic(t *testing.T) {
	chunker, _ := NewChunker(30, 10)
	pages := []domain.Page{
		{Number: 1, Text: "The library opens at nine in the morning."},
		{Number: 2, Text: "It closes at five in the evening."},
	}

	first := chunker.Split(pages)
	second := chunker.Split(pages)

	if len(first) != len(second) {
		t.Fatalf("runs disagree on count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Content != second[i].Content {
			t.Errorf("piece %d differs between runs", i)
		}
	}
}

func TestChunker_Split_PageTagging(t *testing.T) {
	chunker, _ := NewChunker(15, 0)

	pieces := chunker.Split([]domain.Page{
		{Number: 1, Text: "first page body"},
		{Number: 3, Text: "third page body"},
	})
	if len(pieces) < 2 {
		t.Fatalf("expected at least 2 pieces, got %d", len(pieces))
	}

	if pieces[0].Page == nil || *pieces[0].Page != 1 {
		t.Errorf("expected first piece tagged page 1, got %v", pieces[0].Page)
	}
	last := pieces[len(pieces)-1]
	if last.Page == nil || *last.Page != 3 {
		t.Errorf("expected last piece tagged page 3, got %v", last.Page)
	}
}

func TestChunker_Split_SkipsEmptyPages(t *testing.T) {
	chunker, _ := NewChunker(200, 50)

	pieces := chunker.Split([]domain.Page{
		{Number: 1, Text: ""},
		{Number: 2, Text: "only real content"},
		{Number: 3, Text: "  "},
	})
	if len(pieces) != 1 {
		t.Fatalf("expected 1 piece, got %d", len(pieces))
	}
	if pieces[0].Page == nil || *pieces[0].Page != 2 {
		t.Errorf("expected page 2, got %v", pieces[0].Page)
	}
}
