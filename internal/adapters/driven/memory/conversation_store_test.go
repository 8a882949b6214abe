package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

func TestConversationStore_SaveAndGet(t *testing.T) {
	store := NewConversationStore()
	ctx := context.Background()

	conv := &domain.ConversationContext{
		Question:   "what is chunking?",
		RawContext: "Chunking splits text into windows.",
	}

	if err := store.Save(ctx, "user-1", conv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	retrieved, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retrieved.Question != conv.Question {
		t.Errorf("expected question %q, got %q", conv.Question, retrieved.Question)
	}

	// Mutating the retrieved copy must not affect the stored slot
	retrieved.Question = "mutated"
	again, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Question != conv.Question {
		t.Errorf("stored slot was mutated through returned copy")
	}
}

func TestConversationStore_Get_NotFound(t *testing.T) {
	store := NewConversationStore()

	_, err := store.Get(context.Background(), "missing")
	if err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestConversationStore_Delete(t *testing.T) {
	store := NewConversationStore()
	ctx := context.Background()

	if err := store.Save(ctx, "user-1", &domain.ConversationContext{Question: "q"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "user-1"); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting a missing slot is a no-op
	if err := store.Delete(ctx, "user-2"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestConversationStore_ConcurrentWrites(t *testing.T) {
	store := NewConversationStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, "user-1", &domain.ConversationContext{Question: "q"})
			_, _ = store.Get(ctx, "user-1")
		}()
	}
	wg.Wait()

	if _, err := store.Get(ctx, "user-1"); err != nil {
		t.Fatalf("unexpected error after concurrent writes: %v", err)
	}
}
