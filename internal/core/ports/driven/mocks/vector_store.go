package mocks

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// MockVectorStore is an in-memory VectorStore using brute-force cosine
// similarity, scoped by owning user like the real store
type MockVectorStore struct {
	mu       sync.RWMutex
	chunks   []*domain.Chunk
	failNext bool
}

// NewMockVectorStore creates a new MockVectorStore
func NewMockVectorStore() *MockVectorStore {
	return &MockVectorStore{}
}

func (m *MockVectorStore) Insert(ctx context.Context, chunk *domain.Chunk) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false
		return errors.New("insert failed")
	}
	m.chunks = append(m.chunks, chunk)
	return nil
}

func (m *MockVectorStore) Query(ctx context.Context, embedding []float32, k int, userID string) ([]*domain.RetrievedChunk, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []*domain.RetrievedChunk
	for _, c := range m.chunks {
		if c.UserID != userID {
			continue
		}
		results = append(results, &domain.RetrievedChunk{
			Chunk:      c,
			Similarity: cosine(embedding, c.Embedding),
		})
	}

	// Highest similarity first, ties broken by chunk ordinal
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].Chunk.Index < results[j].Chunk.Index
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

func (m *MockVectorStore) DeleteByDocument(ctx context.Context, documentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.chunks[:0]
	for _, c := range m.chunks {
		if c.DocumentID != documentID {
			kept = append(kept, c)
		}
	}
	m.chunks = kept
	return nil
}

func (m *MockVectorStore) CountByDocument(ctx context.Context, documentID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, c := range m.chunks {
		if c.DocumentID == documentID {
			count++
		}
	}
	return count, nil
}

// Helper methods for testing

// SetFailNext makes the next Insert fail
func (m *MockVectorStore) SetFailNext(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = fail
}

// Chunks returns a snapshot of all stored chunks
func (m *MockVectorStore) Chunks() []*domain.Chunk {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Chunk, len(m.chunks))
	copy(out, m.chunks)
	return out
}

// cosine computes cosine similarity clamped to [0,1]
func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
